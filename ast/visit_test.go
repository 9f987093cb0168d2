package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestVisitDescendsIntoNestedStatements checks that Visit walks into a
// Compound's statements, and recurses through an If into its Then branch,
// rather than stopping at the top-level node.
func TestVisitDescendsIntoNestedStatements(t *testing.T) {
	labeled := &Labeled{Label: &Identifier{Value: "done"}, Statement: &Break{}}
	body := &Compound{Statements: []Stmt{
		&If{Condition: &BoolLiteral{Value: true}, Then: &Compound{Statements: []Stmt{labeled}}},
	}}

	var labels []string
	Visit(body, func(n Node) {
		if l, ok := n.(*Labeled); ok {
			labels = append(labels, l.Label.Value)
		}
	})

	assert.Equal(t, []string{"done"}, labels)
}

// TestVisitNilIsNoop checks that Visit on a nil Node is a no-op rather than
// panicking, since several callers pass an optional sub-tree that may be
// absent (e.g. an If with no Else).
func TestVisitNilIsNoop(t *testing.T) {
	var calls int
	Visit(nil, func(Node) { calls++ })

	assert.Equal(t, 0, calls)
}

// TestVisitLeafNodeCallsOnlyItself checks that an Identifier, a leaf in the
// switch, is visited once with no further recursion.
func TestVisitLeafNodeCallsOnlyItself(t *testing.T) {
	id := &Identifier{Value: "x"}

	var seen []Node
	Visit(id, func(n Node) { seen = append(seen, n) })

	assert.Equal(t, []Node{id}, seen)
}
