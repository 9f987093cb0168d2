package resolver

import (
	"fmt"

	"github.com/gulc-lang/gulc/ast"
	"github.com/gulc-lang/gulc/sema"
)

// instKey identifies one memoized instantiation: the template declaration
// plus a string encoding of its argument list, so the same reference
// written twice (e.g. `List<i32>` appearing in two fields) shares one
// sema.TemplateStructInst (spec §4.6's idempotence invariant).
type instKey struct {
	tmpl interface{} // a sema.Type (struct/trait template) or *sema.Function (function template)
	args string
}

// pendingBody is one instantiated method/function body P6 could not
// resolve yet (P7 hasn't started), queued for runExprResolver to drain.
// Rather than copying a resolved body that does not exist at P6 time, it
// re-resolves the ORIGINAL template's ast.Compound in a scope where the
// template's parameter names are bound directly to the concrete
// substituted values — the same scope-based resolution every other pass
// already performs, not a second interpreter.
type pendingBody struct {
	astBody       *ast.Compound
	target        **sema.Compound
	self          sema.Type
	function      *sema.Function
	params        []*sema.Parameter
	returnType    sema.Type
	typeBindings  map[string]sema.Type
	constBindings map[string]sema.Expression
}

// runTemplateCopy is P6. Every templated reference is actually instantiated
// eagerly, at the moment P2/P4 resolve the ast.Unresolved node that names
// it (resolver.packTemplateReference calls instantiate directly, mirroring
// how GULC's TemplateCopyUtil is invoked from wherever a templated
// reference is resolved rather than from one central tree walk). P6's own
// pass exists to catch anything left over: a sema.Dependent produced
// before the template parameter it depended on had a concrete
// substitution — now that every instantiation up to this point exists, a
// second pass over the same Dependent nodes can resolve them for good.
func (r *resolver) runTemplateCopy(root *sema.Namespace) {
	root.VisitMembers(func(o sema.Owned) { r.resolveLeftoverDependents(o) })
}

func (r *resolver) resolveLeftoverDependents(o sema.Owned) {
	switch n := o.(type) {
	case *sema.Namespace:
		n.VisitMembers(func(c sema.Owned) { r.resolveLeftoverDependents(c) })
	case *sema.Struct:
		for _, f := range n.Fields {
			f.Type = r.finalizeDependent(f.Type)
		}
	case *sema.Variable:
		n.Type = r.finalizeDependent(n.Type)
	case *sema.Function:
		n.ReturnType = r.finalizeDependent(n.ReturnType)
		for _, p := range n.Parameters {
			p.Type = r.finalizeDependent(p.Type)
		}
	}
}

func (r *resolver) finalizeDependent(t sema.Type) sema.Type {
	d, ok := t.(*sema.Dependent)
	if !ok || d.Container == nil {
		return t
	}
	m := d.Container.Member(d.Selector)
	if m == nil {
		r.fatalf(d, "%q has no member %q", describeType(d.Container), d.Selector)
		return t
	}
	if mt, ok := m.(sema.Type); ok {
		return mt
	}
	return t
}

// instantiate produces the concrete Type that results from applying args
// to the template tmpl, memoized by instKey so repeated references to the
// same instantiation share one node.
func (r *resolver) instantiate(tmpl sema.Type, args []sema.TemplateArgument, at ast.Node) sema.Type {
	tt, ok := tmpl.(sema.TemplatedType)
	if !ok {
		r.errorf(at, "%s is not a template", describeType(tmpl))
		return tmpl
	}
	params := tt.TemplateParams()
	if len(args) != len(params) {
		r.errorf(at, "%s takes %d template argument(s), got %d", describeType(tmpl), len(params), len(args))
		return tmpl
	}

	key := instKey{tmpl: tmpl, args: argsKey(args)}
	if cached, ok := r.instCache[key]; ok {
		return cached
	}
	if r.templateStack.contains(tmpl) {
		r.fatalf(at, "circular template instantiation: %s", r.templateStack.String())
	}
	r.templateStack.push(tmpl)
	defer r.templateStack.pop()

	subst := make(map[*sema.TemplateParameter]sema.TemplateArgument, len(params))
	for i, p := range params {
		subst[p] = args[i]
	}

	switch n := tmpl.(type) {
	case *sema.Struct:
		inst := &sema.TemplateStructInst{Original: n, Arguments: args}
		inst.Named = n.Named
		r.instCache[key] = inst
		inst.Base = substType(n.Base, subst)
		for _, tr := range n.Traits {
			inst.Traits = append(inst.Traits, substType(tr, subst))
		}
		for _, f := range n.Fields {
			nf := &sema.Variable{AST: f.AST, Named: f.Named, Type: substType(f.Type, subst)}
			sema.Add(inst, nf)
			inst.Fields = append(inst.Fields, nf)
		}
		for _, m := range n.Methods {
			inst.Methods = append(inst.Methods, r.substFunctionSignature(m, subst, inst, inst))
		}
		return inst

	case *sema.Trait:
		inst := &sema.TemplateTraitInst{Original: n, Arguments: args}
		inst.Named = n.Named
		r.instCache[key] = inst
		for _, i2 := range n.Inherits {
			inst.Inherits = append(inst.Inherits, substType(i2, subst))
		}
		for _, m := range n.Methods {
			inst.Methods = append(inst.Methods, r.substFunctionSignature(m, subst, inst, nil))
		}
		return inst

	default:
		r.errorf(at, "%s cannot be used as a template type", describeType(tmpl))
		return tmpl
	}
}

// instantiateFunction mirrors instantiate for a function template
// referenced at a call site with explicit template arguments (P7).
func (r *resolver) instantiateFunction(fn *sema.Function, args []sema.TemplateArgument, at ast.Node) *sema.TemplateFunctionInst {
	params := fn.TemplateParams()
	if len(args) != len(params) {
		r.errorf(at, "%q takes %d template argument(s), got %d", fn.Name(), len(params), len(args))
		return nil
	}
	key := instKey{tmpl: fn, args: argsKey(args)}
	if cached, ok := r.funcInstCache[key]; ok {
		return cached
	}

	subst := make(map[*sema.TemplateParameter]sema.TemplateArgument, len(params))
	for i, p := range params {
		subst[p] = args[i]
	}

	inst := &sema.TemplateFunctionInst{Original: fn, Arguments: args}
	inst.Named = fn.Named
	r.funcInstCache[key] = inst
	for _, p := range fn.Parameters {
		inst.Parameters = append(inst.Parameters, &sema.Parameter{AST: p.AST, Named: p.Named, Label: p.Label, Type: substType(p.Type, subst)})
	}
	inst.ReturnType = substType(fn.ReturnType, subst)

	astFn := fn.AST.(*ast.Function)
	if astFn.Body != nil {
		typeBindings, constBindings := bindingsOf(subst)
		r.pendingBodies = append(r.pendingBodies, pendingBody{
			astBody:       astFn.Body,
			target:        &inst.Body,
			function:      fn,
			params:        inst.Parameters,
			returnType:    inst.ReturnType,
			typeBindings:  typeBindings,
			constBindings: constBindings,
		})
	}
	return inst
}

// substFunctionSignature copies fn's parameter/return types under subst,
// queuing its body (if any) to be resolved by P7 against the original
// ast.Compound with the template's parameter names bound to the concrete
// substitution (not its own, not-yet-resolved sema body).
func (r *resolver) substFunctionSignature(fn *sema.Function, subst map[*sema.TemplateParameter]sema.TemplateArgument, owner sema.Owner, self sema.Type) *sema.Function {
	nf := &sema.Function{}
	nf.AST, nf.Visibility, nf.Modifiers = fn.AST, fn.Visibility, fn.Modifiers
	nf.Named = fn.Named
	for _, p := range fn.Parameters {
		nf.Parameters = append(nf.Parameters, &sema.Parameter{AST: p.AST, Named: p.Named, Label: p.Label, Type: substType(p.Type, subst)})
	}
	nf.ReturnType = substType(fn.ReturnType, subst)
	if owner != nil {
		sema.Add(owner, nf)
	}

	astFn := fn.AST.(*ast.Function)
	if astFn.Body != nil {
		typeBindings, constBindings := bindingsOf(subst)
		r.pendingBodies = append(r.pendingBodies, pendingBody{
			astBody:       astFn.Body,
			target:        &nf.Body,
			self:          self,
			function:      nf,
			params:        nf.Parameters,
			returnType:    nf.ReturnType,
			typeBindings:  typeBindings,
			constBindings: constBindings,
		})
	}
	return nf
}

func bindingsOf(subst map[*sema.TemplateParameter]sema.TemplateArgument) (map[string]sema.Type, map[string]sema.Expression) {
	types := map[string]sema.Type{}
	consts := map[string]sema.Expression{}
	for p, arg := range subst {
		if p.IsConst {
			consts[p.Name()] = arg.Const
		} else {
			types[p.Name()] = arg.Type
		}
	}
	return types, consts
}

// substType recursively copies a sema.Type, replacing any
// TemplateTypenameRef matching a bound parameter with its substituted
// Type. Everything else not reachable through a template-parameter
// reference is returned unchanged (spec §4.6: "every other declared type
// pointer is a weak reference, not cloned").
func substType(t sema.Type, subst map[*sema.TemplateParameter]sema.TemplateArgument) sema.Type {
	if t == nil {
		return nil
	}
	switch n := t.(type) {
	case *sema.TemplateTypenameRef:
		if arg, ok := subst[n.Parameter]; ok && arg.Type != nil {
			return arg.Type
		}
		return n
	case *sema.Pointer:
		return &sema.Pointer{AST: n.AST, To: substType(n.To, subst)}
	case *sema.Reference:
		return &sema.Reference{AST: n.AST, To: substType(n.To, subst)}
	case *sema.RValueReference:
		return &sema.RValueReference{AST: n.AST, To: substType(n.To, subst)}
	case *sema.FunctionPointer:
		params := make([]sema.FunctionPointerParam, len(n.Parameters))
		for i, p := range n.Parameters {
			params[i] = sema.FunctionPointerParam{Label: p.Label, Type: substType(p.Type, subst)}
		}
		return &sema.FunctionPointer{AST: n.AST, Parameters: params, Return: substType(n.Return, subst)}
	case *sema.Dimension:
		sizes := make([]sema.Expression, len(n.Sizes))
		for i, s := range n.Sizes {
			sizes[i] = substExpr(s, subst)
		}
		return &sema.Dimension{AST: n.AST, Element: substType(n.Element, subst), Sizes: sizes}
	case *sema.FlatArray:
		return &sema.FlatArray{AST: n.AST, Element: substType(n.Element, subst), Length: substExpr(n.Length, subst)}
	case *sema.Qualified:
		return &sema.Qualified{AST: n.AST, Qualifier: n.Qualifier, Underlying: substType(n.Underlying, subst)}
	case *sema.Imaginary:
		return &sema.Imaginary{AST: n.AST, Of: substType(n.Of, subst)}
	case *sema.Labeled:
		return &sema.Labeled{AST: n.AST, Label: n.Label, Underlying: substType(n.Underlying, subst)}
	case *sema.Dependent:
		container := substType(n.Container, subst)
		if container != nil {
			if m := container.Member(n.Selector); m != nil {
				if mt, ok := m.(sema.Type); ok {
					return mt
				}
			}
		}
		return &sema.Dependent{AST: n.AST, Container: container, Selector: n.Selector}
	case *sema.Nested:
		return &sema.Nested{Container: substType(n.Container, subst), Resolved: substType(n.Resolved, subst)}
	default:
		// Builtin, Struct, Trait, Enum, Alias, Self, VTable,
		// TemplateStructInst/TemplateTraitInst: unchanged weak references.
		return t
	}
}

// substExpr mirrors substType for the const side of a template parameter
// list: only a TemplateConstRef naming a bound parameter is replaced.
func substExpr(e sema.Expression, subst map[*sema.TemplateParameter]sema.TemplateArgument) sema.Expression {
	if e == nil {
		return nil
	}
	if n, ok := e.(*sema.TemplateConstRef); ok {
		if arg, ok := subst[n.Parameter]; ok && arg.Const != nil {
			return arg.Const
		}
	}
	return e
}

// resolveConstExprArg resolves a template const-argument or array-size
// expression. Keeps GULC's processExprTypeOrConst limitation, widened only
// to literals (DESIGN.md Open Question decision #1): an integer or bool
// literal, or a bare identifier resolving to a visible const (template
// const parameter, enum constant, or bound template const), is supported;
// anything requiring general expression evaluation is a fatal "const
// expressions coming soon" diagnostic rather than being silently accepted
// or miscompiled.
func (r *resolver) resolveConstExprArg(e ast.Expr) sema.Expression {
	if e == nil {
		return nil
	}
	switch n := e.(type) {
	case *ast.IntegerLiteral:
		return &sema.IntegerLiteral{AST: n, Value: n.Value, Type: &sema.Builtin{Named: sema.Named("i32"), Kind: sema.I32}}
	case *ast.BoolLiteral:
		return &sema.BoolLiteral{AST: n, Value: n.Value, Type: &sema.Builtin{Named: sema.Named("bool"), Kind: sema.Bool}}
	case *ast.IdentifierExpr:
		found := r.get(n, n.Name.Value)
		switch t := found.(type) {
		case *sema.TemplateParameter:
			return &sema.TemplateConstRef{AST: n, Parameter: t}
		case *sema.EnumConst:
			return &sema.EnumConstRef{AST: n, Target: t}
		case *sema.ConstBinding:
			return t.Value
		default:
			r.fatalf(n, "const expressions coming soon: %q does not name a constant", n.Name.Value)
			return nil
		}
	default:
		r.fatalf(e, "const expressions coming soon: only literal and identifier const arguments are supported")
		return nil
	}
}

// argsKey serializes a template argument list into a string stable enough
// to use as a map key: structurally identical argument lists (not
// necessarily the same Go pointers) produce the same key.
func argsKey(args []sema.TemplateArgument) string {
	out := ""
	for i, a := range args {
		if i > 0 {
			out += ","
		}
		if a.Type != nil {
			out += "T:" + typeKey(a.Type)
		} else {
			out += "C:" + constKey(a.Const)
		}
	}
	return out
}

func typeKey(t sema.Type) string {
	if t == nil {
		return "<nil>"
	}
	switch n := t.(type) {
	case *sema.Builtin:
		return fmt.Sprintf("builtin(%d)", n.Kind)
	case *sema.Pointer:
		return "ptr(" + typeKey(n.To) + ")"
	case *sema.Reference:
		return "ref(" + typeKey(n.To) + ")"
	case *sema.RValueReference:
		return "rref(" + typeKey(n.To) + ")"
	case *sema.Qualified:
		return fmt.Sprintf("qual(%d,%s)", n.Qualifier, typeKey(n.Underlying))
	case *sema.TemplateStructInst:
		out := "inst(" + fmt.Sprintf("%p", n.Original)
		for _, a := range n.Arguments {
			out += "," + argsKey([]sema.TemplateArgument{a})
		}
		return out + ")"
	default:
		return fmt.Sprintf("%p", t)
	}
}

func constKey(e sema.Expression) string {
	switch n := e.(type) {
	case *sema.IntegerLiteral:
		return fmt.Sprintf("int(%d)", n.Value)
	case *sema.BoolLiteral:
		return fmt.Sprintf("bool(%v)", n.Value)
	case *sema.EnumConstRef:
		return fmt.Sprintf("enumconst(%p)", n.Target)
	default:
		return fmt.Sprintf("%p", e)
	}
}
