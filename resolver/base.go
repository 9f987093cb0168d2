package resolver

import (
	"github.com/gulc-lang/gulc/ast"
	"github.com/gulc-lang/gulc/sema"
)

// runBaseResolver is P4: it resolves each Struct/Trait's `Inherits` list
// into its sema Base (at most one struct ancestor) and Traits (any number
// of implemented traits), now that P3 has ruled out a cycle. Mirrors GULC's
// BaseResolver.cpp, including its re-entry guard (baseWasResolved) so a
// base already resolved via one reference is not re-walked when another
// declaration reaches it a second time in the same pass.
func (r *resolver) runBaseResolver(root *sema.Namespace) {
	root.VisitMembers(func(o sema.Owned) {
		r.resolveBaseOf(o)
	})
}

func (r *resolver) resolveBaseOf(o sema.Owned) {
	switch n := o.(type) {
	case *sema.Namespace:
		n.VisitMembers(func(c sema.Owned) { r.resolveBaseOf(c) })
	case *sema.Struct:
		r.resolveStructBase(n)
	case *sema.Trait:
		r.resolveTraitBase(n)
	}
}

func (r *resolver) resolveStructBase(n *sema.Struct) {
	if n.BaseWasResolved() {
		return
	}
	astStruct := n.AST.(*ast.Struct)
	r.with(n, func() {
		r.addMembers(n)
		for _, tp := range n.TemplateParameters {
			r.addNamed(&sema.TemplateTypenameRef{Named: sema.Named(tp.Name()), Parameter: tp})
		}
		for _, it := range astStruct.Inherits {
			t := r.resolveASTType(it)
			if t == nil {
				continue
			}
			switch underlyingDecl(t).(type) {
			case *sema.Struct, *sema.TemplateStructInst:
				if n.Base != nil {
					r.fatalf(it, "struct %q already has a base struct; at most one is permitted", n.Name())
					continue
				}
				n.Base = t
				if s, ok := underlyingDecl(t).(*sema.Struct); ok {
					r.resolveStructBase(s)
				}
			default:
				n.Traits = append(n.Traits, t)
			}
		}
	})
	n.SetBaseWasResolved()
}

func (r *resolver) resolveTraitBase(n *sema.Trait) {
	astTrait := n.AST.(*ast.Trait)
	r.with(n, func() {
		r.addMembers(n)
		for _, tp := range n.TemplateParameters {
			r.addNamed(&sema.TemplateTypenameRef{Named: sema.Named(tp.Name()), Parameter: tp})
		}
		for _, it := range astTrait.Inherits {
			t := r.resolveASTType(it)
			if t == nil {
				continue
			}
			if _, ok := underlyingDecl(t).(*sema.Struct); ok {
				r.fatalf(it, "trait %q cannot inherit a struct", n.Name())
				continue
			}
			n.Inherits = append(n.Inherits, t)
		}
	})
}

// underlyingDecl strips Qualified/Alias wrappers to the nominal declaration
// an Inherits entry resolved to, the same way circular.go's underlyingNamed
// does for cycle detection.
func underlyingDecl(t sema.Type) sema.Type {
	for {
		switch n := t.(type) {
		case *sema.Qualified:
			t = n.Underlying
		case *sema.Alias:
			t = n.Underlying
		default:
			return t
		}
	}
}
