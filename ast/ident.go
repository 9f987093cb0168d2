package ast

// Identifier is a bare name reference, e.g. the `x` in `x.y` or a parameter
// name. Grounded on gapil/ast/identifier.go's single-field shape.
type Identifier struct {
	node
	Value string
}

func (*Identifier) isNode() {}

// NamespacePath is a dotted sequence of identifiers, e.g. `a.b.c`, as used
// by Unresolved types and Import declarations.
type NamespacePath struct {
	node
	Parts []*Identifier
}

func (*NamespacePath) isNode() {}
