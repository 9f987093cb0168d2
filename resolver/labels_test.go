package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulc-lang/gulc/ast"
)

// TestCheckLabelsGotoUnknownLabel checks that a goto naming a label absent
// from the body is rejected.
func TestCheckLabelsGotoUnknownLabel(t *testing.T) {
	body := &ast.Compound{Statements: []ast.Stmt{&ast.Goto{Label: ident("nope")}}}

	r := newResolver(Options{})
	var recovered interface{}
	func() {
		defer func() { recovered = recover() }()
		r.checkLabels(body)
	}()

	require.NotNil(t, recovered, "expected checkLabels to abort on an undefined goto label")
	require.True(t, r.diags.HasErrors())
	assert.Contains(t, r.diags.Entries()[0].Message, "undefined label")
}

// TestCheckLabelsGotoKnownLabel checks that a goto naming a label defined
// anywhere in the body (even after the goto, or nested) is accepted.
func TestCheckLabelsGotoKnownLabel(t *testing.T) {
	body := &ast.Compound{Statements: []ast.Stmt{
		&ast.Goto{Label: ident("done")},
		&ast.Labeled{Label: ident("done"), Statement: &ast.ExprStmt{}},
	}}

	r := newResolver(Options{})
	r.checkLabels(body)

	assert.Empty(t, r.diags.Entries())
}

// TestCheckLabelsBreakOutsideLoop checks that an unlabeled break with no
// enclosing loop or switch is rejected.
func TestCheckLabelsBreakOutsideLoop(t *testing.T) {
	body := &ast.Compound{Statements: []ast.Stmt{&ast.Break{}}}

	r := newResolver(Options{})
	r.checkLabels(body)

	require.NotEmpty(t, r.diags.Entries())
	assert.Contains(t, r.diags.Entries()[0].Message, "break outside")
}

// TestCheckLabelsBreakInsideWhile checks that an unlabeled break nested
// inside a while loop is accepted.
func TestCheckLabelsBreakInsideWhile(t *testing.T) {
	loop := &ast.While{Body: &ast.Compound{Statements: []ast.Stmt{&ast.Break{}}}}
	body := &ast.Compound{Statements: []ast.Stmt{loop}}

	r := newResolver(Options{})
	r.checkLabels(body)

	assert.Empty(t, r.diags.Entries())
}

// TestCheckLabelsFallthroughOutsideCase checks that a bare fallthrough not
// directly inside a switch case body is rejected.
func TestCheckLabelsFallthroughOutsideCase(t *testing.T) {
	body := &ast.Compound{Statements: []ast.Stmt{&ast.Fallthrough{}}}

	r := newResolver(Options{})
	r.checkLabels(body)

	require.NotEmpty(t, r.diags.Entries())
	assert.Contains(t, r.diags.Entries()[0].Message, "fallthrough outside")
}

// TestCheckLabelsFallthroughInsideCase checks that a fallthrough directly
// inside a case body is accepted.
func TestCheckLabelsFallthroughInsideCase(t *testing.T) {
	sw := &ast.Switch{Cases: []*ast.Case{
		{Body: &ast.Compound{Statements: []ast.Stmt{&ast.Fallthrough{}}}},
	}}
	body := &ast.Compound{Statements: []ast.Stmt{sw}}

	r := newResolver(Options{})
	r.checkLabels(body)

	assert.Empty(t, r.diags.Entries())
}

// TestCheckLabelsContinueOutsideLoop checks that an unlabeled continue with
// no enclosing loop is rejected.
func TestCheckLabelsContinueOutsideLoop(t *testing.T) {
	body := &ast.Compound{Statements: []ast.Stmt{&ast.Continue{}}}

	r := newResolver(Options{})
	r.checkLabels(body)

	require.NotEmpty(t, r.diags.Entries())
	assert.Contains(t, r.diags.Entries()[0].Message, "continue outside")
}

// TestCheckLabelsNilBodyIsNoop checks that a nil body (e.g. an abstract
// method with no implementation) is simply skipped.
func TestCheckLabelsNilBodyIsNoop(t *testing.T) {
	r := newResolver(Options{})
	r.checkLabels(nil)

	assert.Empty(t, r.diags.Entries())
}
