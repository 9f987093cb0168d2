package resolver

import (
	"github.com/gulc-lang/gulc/ast"
	"github.com/gulc-lang/gulc/sema"
)

// runCircularCheck is P3: for every Struct/Trait it resolves its own
// `Inherits` list's *names* (not yet its sema Base/Traits fields, which P4
// fills in afterward) and walks the resulting chain looking for a cycle —
// A inherits B inherits A — reported fatally since nothing downstream can
// make sense of a struct that is its own ancestor. Deliberately runs before
// P4 so base resolution itself never has to guard against infinite
// recursion; it repeats P4's name lookup narrowly (just enough to find the
// nominal declaration each Inherits entry names), matching GULC's
// CircularReferenceChecker.cpp, which performs the same kind of lightweight
// pre-pass ahead of its own BaseResolver.
func (r *resolver) runCircularCheck(root *sema.Namespace) {
	root.VisitMembers(func(o sema.Owned) {
		r.circularCheckDecl(o)
	})
}

func (r *resolver) circularCheckDecl(o sema.Owned) {
	switch n := o.(type) {
	case *sema.Namespace:
		n.VisitMembers(func(c sema.Owned) { r.circularCheckDecl(c) })
	case *sema.Struct:
		r.baseStack = r.baseStack[:0]
		r.baseStack.push(n)
		for _, bn := range r.inheritsNames(n, n.AST.(*ast.Struct).Inherits) {
			r.walkInheritChain(n, bn)
		}
	case *sema.Trait:
		r.baseStack = r.baseStack[:0]
		r.baseStack.push(n)
		for _, bn := range r.inheritsNames(n, n.AST.(*ast.Trait).Inherits) {
			r.walkInheritChain(n, bn)
		}
	}
}

// inheritsNames resolves each entry of an Inherits list just far enough to
// find the nominal sema.NamedNode it names (a Struct or Trait shell already
// built by P1); entries this pass cannot pin to a single name (an
// unresolved identifier, a templated base whose arguments matter) are
// skipped here and left for P4 to diagnose properly.
func (r *resolver) inheritsNames(self sema.Type, inherits []ast.Type) []sema.NamedNode {
	var out []sema.NamedNode
	r.with(self, func() {
		for _, it := range inherits {
			if n := inheritNameOf(it, r); n != nil {
				out = append(out, n)
			}
		}
	})
	return out
}

func inheritNameOf(t ast.Type, r *resolver) sema.NamedNode {
	name := ""
	switch n := t.(type) {
	case *ast.Unresolved:
		name = n.Name.Value
	case *ast.Qualified:
		return inheritNameOf(n.Underlying, r)
	default:
		return nil
	}
	found := r.get(t, name)
	switch n := found.(type) {
	case *sema.Struct:
		return n
	case *sema.Trait:
		return n
	default:
		return nil
	}
}

// walkInheritChain descends from base's own Inherits list (base's AST, the
// same narrow name lookup inheritsNames performs), failing as soon as it
// would revisit start or anything already on baseStack.
func (r *resolver) walkInheritChain(start sema.NamedNode, base sema.NamedNode) {
	if base == start || r.baseStack.contains(base) {
		r.fatalf(start, "circular inheritance: %s -> %s", r.baseStack.String(), describe(base))
		return
	}
	r.baseStack.push(base)
	defer r.baseStack.pop()

	var inherits []ast.Type
	var self sema.Type
	switch n := base.(type) {
	case *sema.Struct:
		inherits = n.AST.(*ast.Struct).Inherits
		self = n
	case *sema.Trait:
		inherits = n.AST.(*ast.Trait).Inherits
		self = n
	default:
		return
	}
	for _, bn := range r.inheritsNames(self, inherits) {
		r.walkInheritChain(start, bn)
	}
}
