package resolver

import "github.com/gulc-lang/gulc/sema"

// isConstPermissible implements spec §4.5's recursive definition plus the
// supplemented ConstInheriter rule (SPEC_FULL.md §3): a type is
// const-permissible iff it is a built-in scalar or bool, a pointer/
// reference to a const-permissible type, or a struct/enum every one of
// whose members is const-permissible — and, per ConstInheriter, a struct
// member does not need its own explicit `const` qualifier to satisfy that
// last rule, since being reached from an outer const position already
// implies it transitively (GULC's ConstInheriter.cpp folds this into the
// same walk rather than running as a genuinely separate pass, so it is
// folded here too). seen guards against a struct containing itself
// (already fatal by P3, but const-checking can run on a template body
// before P6 substitutes a recursive-looking placeholder, so the guard
// costs nothing and avoids infinite recursion in that edge case).
func (r *resolver) isConstPermissible(t sema.Type, seen map[sema.Type]bool) bool {
	if t == nil {
		return true
	}
	if seen == nil {
		seen = map[sema.Type]bool{}
	}
	if seen[t] {
		return true
	}
	seen[t] = true

	switch n := t.(type) {
	case *sema.Builtin:
		return true
	case *sema.Qualified:
		return r.isConstPermissible(n.Underlying, seen)
	case *sema.Alias:
		return r.isConstPermissible(n.Underlying, seen)
	case *sema.Pointer:
		return r.isConstPermissible(n.To, seen)
	case *sema.Reference:
		return r.isConstPermissible(n.To, seen)
	case *sema.RValueReference:
		return r.isConstPermissible(n.To, seen)
	case *sema.Dimension:
		return r.isConstPermissible(n.Element, seen)
	case *sema.FlatArray:
		return r.isConstPermissible(n.Element, seen)
	case *sema.Imaginary:
		return r.isConstPermissible(n.Of, seen)
	case *sema.Enum:
		return true
	case *sema.Struct:
		for _, f := range n.Fields {
			if !r.isConstPermissible(f.Type, seen) {
				return false
			}
		}
		if n.Base != nil && !r.isConstPermissible(n.Base, seen) {
			return false
		}
		return true
	case *sema.TemplateStructInst:
		for _, f := range n.Fields {
			if !r.isConstPermissible(f.Type, seen) {
				return false
			}
		}
		return true
	default:
		// function pointers, trait references, and unresolved/dependent
		// template-typename references are all rejected (spec §4.5).
		return false
	}
}
