package resolver

import (
	"github.com/gulc-lang/gulc/ast"
	"github.com/gulc-lang/gulc/sema"
)

// runPrototyper is P1: it walks every file's declarations (merging every
// namespace fragment that shares a dotted path into the same
// sema.Namespace, per spec §4.1) and creates one empty sema shell per
// declaration — a Struct/Trait/Enum/Function/etc with its Name and AST
// back-pointer set, added to its container's symbol table, but with every
// field that depends on resolving another type (bases, field types,
// parameter types, bodies) left zero. Later passes fill those in; P1's
// only job is making every name in the unit visible to every other name,
// regardless of declaration order (spec §4.1's "order independence"
// invariant).
func (r *resolver) runPrototyper(files []*ast.File, root *sema.Namespace) {
	for _, f := range files {
		ast.Visit(f, func(n ast.Node) { ast.StampFile(n, f.Path) })
		r.prototypeDecls(f.Declarations, root)
	}
}

func (r *resolver) prototypeDecls(decls []ast.Decl, into *sema.Namespace) {
	for _, d := range decls {
		switch n := d.(type) {
		case *ast.Namespace:
			ns := r.namespaceFor(into, n.Path)
			r.prototypeDecls(n.Declarations, ns)
		case *ast.Import:
			// resolved lazily by lookup (spec §4.2 step 4); nothing to
			// prototype.
		case *ast.AttributeDecl:
			if r.knownAttributes == nil {
				r.knownAttributes = map[string]*ast.AttributeDecl{}
			}
			r.knownAttributes[n.Name.Value] = n
		default:
			if owned := r.prototypeOne(d); owned != nil {
				sema.Add(into, owned)
			}
		}
	}
}

// namespaceFor returns the sema.Namespace for path, creating and nesting
// any namespace fragment not yet seen, and reusing one that was (the
// merge step spec §4.1 requires).
func (r *resolver) namespaceFor(root *sema.Namespace, path *ast.NamespacePath) *sema.Namespace {
	cur := root
	for _, part := range path.Parts {
		existing := cur.Member(part.Value)
		if ns, ok := existing.(*sema.Namespace); ok {
			cur = ns
			continue
		}
		if existing != nil {
			r.errorf(part, "namespace %q collides with an existing declaration", part.Value)
			continue
		}
		next := &sema.Namespace{Named: sema.Named(part.Value)}
		sema.Add(cur, next)
		cur = next
	}
	return cur
}

// prototypeOne creates the shell sema node for a single non-namespace
// declaration, recursing into struct/trait member lists so nested types
// are visible too (spec §3's ownership tree is built top-down here; the
// members' own internals are filled in by P2 onward).
func (r *resolver) prototypeOne(d ast.Decl) sema.Owned {
	switch n := d.(type) {
	case *ast.Struct:
		s := &sema.Struct{}
		s.AST, s.Visibility, s.Modifiers = n, n.Visibility, n.Modifiers
		s.Named = sema.Named(n.Name.Value)
		for _, tp := range n.TemplateParameters {
			s.TemplateParameters = append(s.TemplateParameters, r.prototypeTemplateParam(tp))
		}
		for _, m := range n.Members {
			if owned := r.prototypeOne(m); owned != nil {
				sema.Add(s, owned)
				r.classifyStructMember(s, owned)
			}
		}
		return s
	case *ast.Trait:
		t := &sema.Trait{}
		t.AST, t.Visibility, t.Modifiers = n, n.Visibility, n.Modifiers
		t.Named = sema.Named(n.Name.Value)
		for _, tp := range n.TemplateParameters {
			t.TemplateParameters = append(t.TemplateParameters, r.prototypeTemplateParam(tp))
		}
		for _, m := range n.Members {
			if owned := r.prototypeOne(m); owned != nil {
				sema.Add(t, owned)
				if fn, ok := owned.(*sema.Function); ok {
					t.Methods = append(t.Methods, fn)
				}
				if p, ok := owned.(*sema.Property); ok {
					t.Properties = append(t.Properties, p)
				}
			}
		}
		return t
	case *ast.Enum:
		e := &sema.Enum{}
		e.AST, e.Visibility, e.Modifiers = n, n.Visibility, n.Modifiers
		e.Named = sema.Named(n.Name.Value)
		for _, c := range n.Constants {
			ec := &sema.EnumConst{AST: c}
			ec.Named = sema.Named(c.Name.Value)
			sema.Add(e, ec)
			e.Constants = append(e.Constants, ec)
		}
		return e
	case *ast.Function:
		fn := &sema.Function{}
		fn.AST, fn.Visibility, fn.Modifiers = n, n.Visibility, n.Modifiers
		fn.Named = sema.Named(n.Name.Value)
		for _, tp := range n.TemplateParameters {
			fn.TemplateParameters = append(fn.TemplateParameters, r.prototypeTemplateParam(tp))
		}
		return fn
	case *ast.Constructor:
		c := &sema.Constructor{}
		c.AST, c.Visibility, c.Modifiers = n, n.Visibility, n.Modifiers
		c.Kind = sema.ConstructorKind(n.Kind)
		return c
	case *ast.Destructor:
		dt := &sema.Destructor{}
		dt.AST, dt.Visibility, dt.Modifiers = n, n.Visibility, n.Modifiers
		return dt
	case *ast.Operator:
		op := &sema.Operator{}
		op.AST, op.Visibility, op.Modifiers = n, n.Visibility, n.Modifiers
		op.Kind = n.Kind
		return op
	case *ast.CastOperator:
		op := &sema.CastOperator{}
		op.AST, op.Visibility, op.Modifiers = n, n.Visibility, n.Modifiers
		op.Explicit = n.Explicit
		return op
	case *ast.CallOperator:
		op := &sema.CallOperator{}
		op.AST, op.Visibility, op.Modifiers = n, n.Visibility, n.Modifiers
		return op
	case *ast.SubscriptOperator:
		op := &sema.SubscriptOperator{}
		op.AST, op.Visibility, op.Modifiers = n, n.Visibility, n.Modifiers
		if n.SetValueName != nil {
			op.SetValueName = n.SetValueName.Value
		}
		return op
	case *ast.Property:
		p := &sema.Property{}
		p.AST, p.Visibility, p.Modifiers = n, n.Visibility, n.Modifiers
		p.Named = sema.Named(n.Name.Value)
		if n.SetValueName != nil {
			p.SetValueName = n.SetValueName.Value
		}
		return p
	case *ast.Extension:
		e := &sema.Extension{}
		e.AST, e.Visibility, e.Modifiers = n, n.Visibility, n.Modifiers
		e.Named = sema.Named(n.Name.Value)
		for _, m := range n.Members {
			if owned := r.prototypeOne(m); owned != nil {
				sema.Add(e, owned)
				if fn, ok := owned.(*sema.Function); ok {
					e.Methods = append(e.Methods, fn)
				}
				if p, ok := owned.(*sema.Property); ok {
					e.Properties = append(e.Properties, p)
				}
			}
		}
		return e
	case *ast.TypeAlias:
		a := &sema.Alias{}
		a.AST = n
		a.Named = sema.Named(n.Name.Value)
		return a
	case *ast.TypeSuffix:
		ts := &sema.TypeSuffix{}
		ts.AST, ts.Visibility, ts.Modifiers = n, n.Visibility, n.Modifiers
		ts.Suffix = n.Suffix
		return ts
	case *ast.Variable:
		v := &sema.Variable{}
		v.AST, v.Visibility, v.Modifiers = n, n.Visibility, n.Modifiers
		v.Named = sema.Named(n.Name.Value)
		return v
	default:
		r.icef(d, "unhandled declaration kind %T in prototyper", d)
		return nil
	}
}

func (r *resolver) prototypeTemplateParam(tp *ast.TemplateParameter) *sema.TemplateParameter {
	p := &sema.TemplateParameter{AST: tp, IsConst: tp.IsConst}
	p.Named = sema.Named(tp.Name.Value)
	return p
}

// classifyStructMember files owned into the Struct's typed slices
// (Fields/Constructors/Destructor/Methods/Operators/Properties) on top of
// adding it to the generic symbol table, so later passes can iterate a
// struct's fields without a type switch over every member every time.
func (r *resolver) classifyStructMember(s *sema.Struct, owned sema.Owned) {
	switch m := owned.(type) {
	case *sema.Variable:
		s.Fields = append(s.Fields, m)
	case *sema.Constructor:
		s.Constructors = append(s.Constructors, m)
	case *sema.Destructor:
		s.Destructor = m
	case *sema.Function:
		s.Methods = append(s.Methods, m)
	case *sema.Operator:
		s.Operators = append(s.Operators, m)
	case *sema.CastOperator:
		s.CastOperators = append(s.CastOperators, m)
	case *sema.CallOperator:
		s.CallOperators = append(s.CallOperators, m)
	case *sema.SubscriptOperator:
		s.SubscriptOperators = append(s.SubscriptOperators, m)
	case *sema.Property:
		s.Properties = append(s.Properties, m)
	}
}
