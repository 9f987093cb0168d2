package ast

// Attribute is the `@name(arguments)` construct attached to a declaration.
// Grounded on gapil/ast/api.go's Annotation node, generalized with a
// Declaration variant since the language also allows attributes to be
// declared (spec §3 lists Attribute among the Declaration variants).
type Attribute struct {
	node
	Name      *Identifier
	Arguments []Expr
}

func (*Attribute) isNode() {}
func (*Attribute) isAttr() {}

// Attributes is the set of Attribute nodes applied to another AST node.
type Attributes []*Attribute

// Find returns the first attribute with the given name, or nil.
func (a Attributes) Find(name string) *Attribute {
	for _, at := range a {
		if at.Name != nil && at.Name.Value == name {
			return at
		}
	}
	return nil
}

// AttributeDecl is a declaration of a new attribute kind (`attribute Foo`).
type AttributeDecl struct {
	node
	Visibility Visibility
	Attributes Attributes
	Name       *Identifier
	Parameters []*Parameter
}

func (*AttributeDecl) isNode() {}
func (*AttributeDecl) isDecl() {}
