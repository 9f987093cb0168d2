package resolver

import (
	"github.com/gulc-lang/gulc/ast"
	"github.com/gulc-lang/gulc/sema"
)

// runConstResolver is P5: it finds every type used in a const position — a
// `const`-qualified Variable's declared type, a `const` template
// parameter's declared type — and validates it is const-permissible (spec
// §4.5), reporting a fatal diagnostic otherwise. Named after GULC's
// ConstTypeResolver.cpp; the permissibility recursion itself lives in
// constinherit.go so P5.5's inheritance rule can share it.
func (r *resolver) runConstResolver(root *sema.Namespace) {
	root.VisitMembers(func(o sema.Owned) {
		r.checkConstPositionsOf(o)
	})
}

func (r *resolver) checkConstPositionsOf(o sema.Owned) {
	switch n := o.(type) {
	case *sema.Namespace:
		n.VisitMembers(func(c sema.Owned) { r.checkConstPositionsOf(c) })
	case *sema.Struct:
		r.checkConstVariable(n.Named, n.Fields)
		n.VisitMembers(func(c sema.Owned) { r.checkConstPositionsOf(c) })
	case *sema.Trait:
		n.VisitMembers(func(c sema.Owned) { r.checkConstPositionsOf(c) })
	case *sema.Variable:
		r.checkConstVariable(n.Named, []*sema.Variable{n})
	case *sema.Function:
		r.checkConstParameters(n.Parameters)
		for _, tp := range n.TemplateParameters {
			r.checkConstTemplateParam(tp)
		}
	}
}

func (r *resolver) checkConstVariable(_ sema.Named, vars []*sema.Variable) {
	for _, v := range vars {
		if q, ok := v.Type.(*sema.Qualified); ok && q.Qualifier == ast.QualConst && !r.isConstPermissible(q.Underlying, nil) {
			r.fatalf(v, "type %s is not permitted in a const position", describeType(q.Underlying))
		}
	}
}

func (r *resolver) checkConstParameters(params []*sema.Parameter) {
	for _, p := range params {
		if q, ok := p.Type.(*sema.Qualified); ok && q.Qualifier == ast.QualConst && !r.isConstPermissible(q.Underlying, nil) {
			r.fatalf(p, "type %s is not permitted in a const position", describeType(q.Underlying))
		}
	}
}

func (r *resolver) checkConstTemplateParam(tp *sema.TemplateParameter) {
	if !tp.IsConst || tp.ConstType == nil {
		return
	}
	if !r.isConstPermissible(tp.ConstType, nil) {
		r.fatalf(tp, "const template parameter %q has a non-const-permissible type %s", tp.Name(), describeType(tp.ConstType))
	}
}

func describeType(t sema.Type) string {
	if t == nil {
		return "<unknown>"
	}
	if n, ok := t.(sema.NamedNode); ok {
		return n.Name()
	}
	return "<type>"
}
