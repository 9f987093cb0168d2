package sema

import "github.com/gulc-lang/gulc/ast"

// Node represents any node in the resolved semantic graph. Unlike the ast
// package's Node, a sema.Node is built by the resolver and may be mutated
// in place by later passes (P4 filling in a base's resolved Type, P7
// filling in an expression's valueType) rather than replaced wholesale.
type Node interface {
	isNode()
}

// NamedNode is any sema.Node that carries a name, the unit of name lookup
// spec §4.2 describes.
type NamedNode interface {
	Node
	Name() string
}

// Owned is a node with a unique name and a single owner, e.g. a Function
// owned by the Struct or Namespace it was declared in.
type Owned interface {
	NamedNode
	Owner() Owner
	setOwner(Owner)
}

// Owner is a node with named members, e.g. a Struct or Namespace.
type Owner interface {
	NamedNode
	Member(string) Owned
	VisitMembers(func(Owned))
	addMember(Owned)
}

// ASTBacked is implemented by every sema node that points back at the
// ast.Node it was resolved from, used for diagnostic source positions.
type ASTBacked interface {
	ASTNode() ast.Node
}

// Add connects an Owned node to its Owner, the one way members enter an
// Owner's symbol table (mirrors spec §3's "every declaration's container
// pointer is assigned exactly once, at the point the declaration enters
// the resolved graph" invariant).
func Add(p Owner, c Owned) {
	p.addMember(c)
	c.setOwner(p)
}

// Named implements the Name half of NamedNode; embed it in any node whose
// name never changes after construction.
type Named string

func (n Named) Name() string { return string(n) }

type owned struct {
	owner Owner
}

func (o *owned) Owner() Owner         { return o.owner }
func (o *owned) setOwner(owner Owner) { o.owner = owner }

type members Symbols

func (m *members) Member(name string) Owned {
	n, err := (*Symbols)(m).Find(name)
	if err != nil {
		return nil
	}
	o, _ := n.(Owned)
	return o
}

func (m *members) addMember(child Owned) {
	(*Symbols)(m).AddNamed(child)
}

func (m *members) VisitMembers(visitor func(Owned)) {
	(*Symbols)(m).sort()
	for _, e := range (*Symbols)(m).entries {
		visitor(e.node.(Owned))
	}
}

// noAddMembers is embedded by leaf owners (e.g. Enum) that never accept
// members added after construction.
type noAddMembers struct{}

func (noAddMembers) addMember(Owned) { panic("sema: node accepts no members") }

type noMembers struct{ noAddMembers }

func (noMembers) Member(string) Owned      { return nil }
func (noMembers) VisitMembers(func(Owned)) {}
