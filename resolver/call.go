package resolver

import (
	"github.com/gulc-lang/gulc/ast"
	"github.com/gulc-lang/gulc/sema"
)

// resolveArguments resolves a call's argument list, splitting each
// LabeledArgument into its label plus resolved value so overload scoring
// can match labels positionally against candidate parameters.
func (r *resolver) resolveArguments(exprs []ast.Expr) ([]sema.Expression, []string) {
	args := make([]sema.Expression, len(exprs))
	labels := make([]string, len(exprs))
	for i, a := range exprs {
		if la, ok := a.(*ast.LabeledArgument); ok {
			labels[i] = la.Label.Value
			args[i] = r.resolveExpr(la.Value)
			continue
		}
		args[i] = r.resolveExpr(a)
	}
	return args, labels
}

func (r *resolver) resolveFunctionCall(n *ast.FunctionCall) sema.Expression {
	args, labels := r.resolveArguments(n.Arguments)

	if id, ok := n.Target.(*ast.IdentifierExpr); ok {
		matches := r.find(id.Name.Value)
		var funcs []*sema.Function
		var structType sema.Type
		for _, m := range matches {
			switch t := m.(type) {
			case *sema.Function:
				funcs = append(funcs, t)
			case *sema.Struct:
				structType = t
			case *sema.TemplateStructInst:
				structType = t
			}
		}
		if structType != nil {
			return r.resolveConstructorCall(structType, args, labels, n)
		}
		if len(funcs) > 0 {
			fn, converted := r.resolveFunctionOverload(funcs, args, labels, n)
			if fn == nil {
				return nil
			}
			return &sema.FunctionCall{AST: n, Target: fn, Arguments: converted}
		}
		r.errorf(n, "%q is not callable", id.Name.Value)
		return nil
	}

	r.errorf(n, "call target must name a function or struct constructor")
	return nil
}

func (r *resolver) resolveConstructorCall(structType sema.Type, args []sema.Expression, labels []string, at ast.Node) sema.Expression {
	var candidates []*sema.Constructor
	switch t := structType.(type) {
	case *sema.Struct:
		candidates = t.Constructors
	case *sema.TemplateStructInst:
		// Constructor instantiation is not copied by P6 yet (template.go
		// only substitutes Fields/Methods/Base/Traits); fall back to the
		// original template's constructor signatures, unsubstituted, which
		// is exact whenever no constructor parameter mentions a template
		// parameter directly.
		candidates = t.Original.Constructors
	}

	if len(candidates) == 0 && len(args) == 0 {
		return &sema.ConstructorCall{AST: at.(ast.Expr), Constructor: &sema.Constructor{Kind: sema.ConstructorNormal}, Arguments: nil}
	}

	ctor, converted := r.resolveConstructorOverload(candidates, args, labels, at)
	if ctor == nil {
		return nil
	}
	return &sema.ConstructorCall{AST: at.(ast.Expr), Constructor: ctor, Arguments: converted}
}

func (r *resolver) resolveMemberAccessCall(n *ast.MemberAccessCall) sema.Expression {
	target := r.resolveExpr(n.Target)
	if target == nil {
		return nil
	}
	candidates := collectMethodCandidates(target.ExpressionType(), n.Member.Value)
	if len(candidates) == 0 {
		r.errorf(n, "%s has no method %q", describeType(target.ExpressionType()), n.Member.Value)
		return nil
	}
	args, labels := r.resolveArguments(n.Arguments)
	fn, converted := r.resolveFunctionOverload(candidates, args, labels, n)
	if fn == nil {
		return nil
	}
	return &sema.MemberAccessCall{AST: n, Target: target, Member: fn, Arguments: converted}
}

// collectMethodCandidates gathers every method named name visible on t,
// walking a struct's base chain and a trait's inherited methods, since
// Owner.Member returns nil for an overloaded (ambiguous) name rather than
// the whole candidate set (sema/node.go's members.Member).
func collectMethodCandidates(t sema.Type, name string) []*sema.Function {
	var out []*sema.Function
	for cur := t; cur != nil; {
		switch n := stripQualifierOnly(cur).(type) {
		case *sema.Struct:
			for _, m := range n.Methods {
				if m.Name() == name {
					out = append(out, m)
				}
			}
			cur = n.Base
		case *sema.TemplateStructInst:
			for _, m := range n.Methods {
				if m.Name() == name {
					out = append(out, m)
				}
			}
			cur = n.Base
		case *sema.Trait:
			for _, m := range n.Methods {
				if m.Name() == name {
					out = append(out, m)
				}
			}
			return out
		case *sema.TemplateTraitInst:
			for _, m := range n.Methods {
				if m.Name() == name {
					out = append(out, m)
				}
			}
			return out
		default:
			return out
		}
	}
	return out
}

func (r *resolver) resolveSubscriptCall(n *ast.SubscriptCall) sema.Expression {
	target := r.resolveExpr(n.Target)
	if target == nil {
		return nil
	}
	args, labels := r.resolveArguments(n.Arguments)

	var candidates []*sema.SubscriptOperator
	switch s := stripQualifierOnly(target.ExpressionType()).(type) {
	case *sema.Struct:
		candidates = s.SubscriptOperators
	}
	if len(candidates) == 0 {
		r.errorf(n, "%s has no operator[]", describeType(target.ExpressionType()))
		return nil
	}

	var best *sema.SubscriptOperator
	var bestArgs []sema.Expression
	bestRank := ConversionRank(1 << 30)
	tie := false
	for _, c := range candidates {
		rank, converted, ok := r.scoreCandidate(candidateSignature{params: c.Parameters}, args, labels)
		if !ok {
			continue
		}
		if rank < bestRank {
			best, bestArgs, bestRank, tie = c, converted, rank, false
		} else if rank == bestRank {
			tie = true
		}
	}
	if best == nil {
		r.fatalf(n, "no matching operator[] overload")
		return nil
	}
	if tie {
		r.fatalf(n, "ambiguous operator[] call")
		return nil
	}
	return &sema.SubscriptCall{AST: n, Target: target, Subscript: best, Arguments: bestArgs}
}
