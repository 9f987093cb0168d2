package resolver

import (
	"github.com/gulc-lang/gulc/ast"
	"github.com/gulc-lang/gulc/sema"
)

// runBasicTypes is P2: it walks every shell P1 created and resolves the
// ast.Type nodes reachable from it (field types, parameter types, return
// types, enum underlying types, alias targets, template-parameter
// constraint types) into sema.Type, by looking each name up against the
// scope the declaration sits in. `Self` resolves to the struct/trait/enum
// currently being walked (spec §4.2). A name that matches nothing in scope
// is a fatal diagnostic; a nested name whose container has no such member
// yet becomes a sema.Dependent, left for P6 to re-resolve once a concrete
// template substitution is available.
func (r *resolver) runBasicTypes(root *sema.Namespace) {
	r.scope.AddNamed(builtinScope()...)
	r.resolveNamespace(root)
}

// builtinScope returns the always-visible builtin type symbols, added
// once to the global scope before anything else resolves.
func builtinScope() []sema.NamedNode {
	names := []struct {
		name string
		kind sema.BuiltinKind
	}{
		{"void", sema.Void}, {"i8", sema.I8}, {"i16", sema.I16}, {"i32", sema.I32}, {"i64", sema.I64},
		{"u8", sema.U8}, {"u16", sema.U16}, {"u32", sema.U32}, {"u64", sema.U64},
		{"f16", sema.F16}, {"f32", sema.F32}, {"f64", sema.F64},
		{"char", sema.Char}, {"bool", sema.Bool},
	}
	out := make([]sema.NamedNode, len(names))
	for i, n := range names {
		out[i] = &sema.Builtin{Named: sema.Named(n.name), Kind: n.kind}
	}
	return out
}

func (r *resolver) resolveNamespace(ns *sema.Namespace) {
	r.with(nil, func() {
		r.addMembers(ns)
		ns.VisitMembers(func(o sema.Owned) {
			r.resolveDeclTypes(o)
		})
	})
}

func (r *resolver) resolveDeclTypes(o sema.Owned) {
	switch n := o.(type) {
	case *sema.Namespace:
		r.resolveNamespace(n)
	case *sema.Struct:
		r.with(n, func() {
			r.addMembers(n)
			for _, tp := range n.TemplateParameters {
				r.resolveTemplateParamType(tp)
			}
			for _, f := range n.Fields {
				f.Type = r.resolveASTType(f.AST.(*ast.Variable).Type)
			}
			for _, c := range n.Constructors {
				astC := c.AST.(*ast.Constructor)
				r.resolveParameterTypes(astC.Parameters, &c.Parameters)
				r.checkLabels(astC.Body)
			}
			if n.Destructor != nil {
				r.checkLabels(n.Destructor.AST.(*ast.Destructor).Body)
			}
			for _, m := range n.Methods {
				r.resolveFunctionTypes(m)
			}
			for _, op := range n.Operators {
				astOp := op.AST.(*ast.Operator)
				r.resolveParameterTypes(astOp.Parameters, &op.Parameters)
				op.ReturnType = r.resolveASTType(astOp.ReturnType)
				r.checkLabels(astOp.Body)
			}
			for _, op := range n.CastOperators {
				astOp := op.AST.(*ast.CastOperator)
				op.TargetType = r.resolveASTType(astOp.TargetType)
				r.checkLabels(astOp.Body)
			}
			for _, op := range n.CallOperators {
				astOp := op.AST.(*ast.CallOperator)
				r.resolveParameterTypes(astOp.Parameters, &op.Parameters)
				op.ReturnType = r.resolveASTType(astOp.ReturnType)
				r.checkLabels(astOp.Body)
			}
			for _, op := range n.SubscriptOperators {
				astOp := op.AST.(*ast.SubscriptOperator)
				r.resolveParameterTypes(astOp.Parameters, &op.Parameters)
				op.ValueType = r.resolveASTType(astOp.ValueType)
				r.checkLabels(astOp.Get)
				r.checkLabels(astOp.Set)
			}
			for _, p := range n.Properties {
				astP := p.AST.(*ast.Property)
				p.Type = r.resolveASTType(astP.Type)
				r.checkLabels(astP.Get)
				r.checkLabels(astP.Set)
			}
		})
	case *sema.Trait:
		r.with(n, func() {
			r.addMembers(n)
			for _, tp := range n.TemplateParameters {
				r.resolveTemplateParamType(tp)
			}
			for _, m := range n.Methods {
				r.resolveFunctionTypes(m)
			}
			for _, p := range n.Properties {
				p.Type = r.resolveASTType(p.AST.(*ast.Property).Type)
			}
		})
	case *sema.Enum:
		astEnum := n.AST.(*ast.Enum)
		if astEnum.UnderlyingType != nil {
			n.Underlying = r.resolveASTType(astEnum.UnderlyingType)
		} else {
			n.Underlying = r.get(nil, "i32").(sema.Type)
		}
	case *sema.Function:
		r.resolveFunctionTypes(n)
	case *sema.Variable:
		astVar := n.AST.(*ast.Variable)
		if astVar.Type != nil {
			n.Type = r.resolveASTType(astVar.Type)
		}
	case *sema.Alias:
		n.Underlying = r.resolveASTType(n.AST.Underlying)
	case *sema.TypeSuffix:
		n.Type = r.resolveASTType(n.AST.Type)
	case *sema.Extension:
		r.with(nil, func() {
			n.ExtendedType = r.resolveASTType(n.AST.ExtendedType)
			r.with(n.ExtendedType, func() {
				for _, m := range n.Methods {
					r.resolveFunctionTypes(m)
				}
				for _, p := range n.Properties {
					p.Type = r.resolveASTType(p.AST.(*ast.Property).Type)
				}
			})
		})
	}
}

func (r *resolver) resolveFunctionTypes(fn *sema.Function) {
	astFn := fn.AST.(*ast.Function)
	r.with(nil, func() {
		for _, tp := range fn.TemplateParameters {
			r.resolveTemplateParamType(tp)
		}
		r.resolveParameterTypes(astFn.Parameters, &fn.Parameters)
		if astFn.ReturnType != nil {
			fn.ReturnType = r.resolveASTType(astFn.ReturnType)
		} else {
			fn.ReturnType = &sema.Builtin{Named: sema.Named("void"), Kind: sema.Void}
		}
	})
}

func (r *resolver) resolveParameterTypes(astParams []*ast.Parameter, into *[]*sema.Parameter) {
	for _, p := range astParams {
		sp := &sema.Parameter{AST: p}
		sp.Named = sema.Named(p.Name.Value)
		if p.Label != nil {
			sp.Label = p.Label.Value
		}
		sp.Type = r.resolveASTType(p.Type)
		*into = append(*into, sp)
		r.addNamed(sp)
	}
}

func (r *resolver) resolveTemplateParamType(tp *sema.TemplateParameter) {
	if tp.AST.IsConst && tp.AST.ConstType != nil {
		tp.ConstType = r.resolveASTType(tp.AST.ConstType)
	}
	if tp.AST.DefaultType != nil {
		tp.DefaultType = r.resolveASTType(tp.AST.DefaultType)
	}
	r.addNamed(&sema.TemplateTypenameRef{Named: sema.Named(tp.Name()), Parameter: tp})
}

// resolveASTType is the single entry point every pass uses to turn an
// ast.Type into a sema.Type; kept here (rather than split per-variant
// across callers) so P2's "what does this name refer to" logic lives in
// one place, matching GULC's BasicTypeResolver.cpp structure.
func (r *resolver) resolveASTType(t ast.Type) sema.Type {
	if t == nil {
		return nil
	}
	switch n := t.(type) {
	case *ast.Qualified:
		return &sema.Qualified{AST: n, Qualifier: n.Qualifier, Underlying: r.resolveASTType(n.Underlying)}
	case *ast.BuiltinRef:
		if found, ok := r.get(n, n.Name).(sema.Type); ok {
			return found
		}
		r.errorf(n, "unknown builtin type %q", n.Name)
		return nil
	case *ast.PointerRef:
		return &sema.Pointer{AST: n, To: r.resolveASTType(n.To)}
	case *ast.ReferenceRef:
		return &sema.Reference{AST: n, To: r.resolveASTType(n.To)}
	case *ast.RValueReferenceRef:
		return &sema.RValueReference{AST: n, To: r.resolveASTType(n.To)}
	case *ast.FunctionPointerRef:
		params := make([]sema.FunctionPointerParam, len(n.Parameters))
		for i, p := range n.Parameters {
			label := ""
			if p.Label != nil {
				label = p.Label.Value
			}
			params[i] = sema.FunctionPointerParam{Label: label, Type: r.resolveASTType(p.Type)}
		}
		return &sema.FunctionPointer{AST: n, Parameters: params, Return: r.resolveASTType(n.Return)}
	case *ast.DimensionRef:
		return &sema.Dimension{AST: n, Element: r.resolveASTType(n.Element)}
	case *ast.FlatArrayRef:
		return &sema.FlatArray{AST: n, Element: r.resolveASTType(n.Element)}
	case *ast.SelfRef:
		if r.scope.selfType() == nil {
			r.errorf(n, "Self used outside a struct, trait, or enum body")
			return nil
		}
		return &sema.Self{Resolved: r.scope.selfType()}
	case *ast.ImaginaryRef:
		return &sema.Imaginary{AST: n, Of: r.resolveASTType(n.Of)}
	case *ast.VTableRef:
		return &sema.VTable{Of: r.resolveASTType(n.Of)}
	case *ast.LabeledRef:
		return &sema.Labeled{AST: n, Label: n.Label.Value, Underlying: r.resolveASTType(n.Underlying)}
	case *ast.Unresolved:
		return r.resolveUnresolved(n)
	case *ast.UnresolvedNested:
		container := r.resolveASTType(n.Container)
		if container == nil {
			return nil
		}
		if m := container.Member(n.Name.Value); m != nil {
			if t, ok := m.(sema.Type); ok {
				return &sema.Nested{Container: container, Resolved: t}
			}
		}
		return &sema.Dependent{AST: n, Container: container, Selector: n.Name.Value}
	default:
		r.icef(t, "unhandled ast.Type kind %T", t)
		return nil
	}
}

func (r *resolver) resolveUnresolved(n *ast.Unresolved) sema.Type {
	name := n.Name.Value
	found := r.get(n, name)
	if found == nil {
		return nil
	}
	if tt, ok := found.(*sema.TemplateTypenameRef); ok {
		if len(n.Arguments) > 0 {
			r.errorf(n, "template type parameter %q takes no arguments", name)
		}
		return tt
	}
	t, ok := found.(sema.Type)
	if !ok {
		r.fatalf(n, "%q does not name a type", name)
		return nil
	}
	if len(n.Arguments) == 0 {
		return t
	}
	// A templated reference with arguments is resolved structurally by
	// P6, which needs the un-instantiated template plus the resolved
	// argument list; P2 just resolves the arguments themselves and packs
	// them alongside the template for P6 to consume (see template.go).
	return r.packTemplateReference(t, n)
}

func (r *resolver) packTemplateReference(t sema.Type, n *ast.Unresolved) sema.Type {
	args := make([]sema.TemplateArgument, len(n.Arguments))
	for i, a := range n.Arguments {
		if a.Type != nil {
			args[i] = sema.TemplateArgument{Type: r.resolveASTType(a.Type)}
		} else {
			args[i] = sema.TemplateArgument{Const: r.resolveConstExprArg(a.Const)}
		}
	}
	return r.instantiate(t, args, n)
}

func (s *scope) selfType() sema.Type {
	for c := s; c != nil; c = c.outer {
		if c.self != nil {
			return c.self
		}
	}
	return nil
}
