package diag

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulc-lang/gulc/ast"
)

// TestListWarnfAccumulatesWithoutPanicking checks that a run of Warnf calls
// simply accumulates entries and never aborts.
func TestListWarnfAccumulatesWithoutPanicking(t *testing.T) {
	var l List
	l.Warnf(nil, "first %s", "warning")
	l.Warnf(nil, "second warning")

	require.Len(t, l.Entries(), 2)
	assert.Equal(t, "first warning", l.Entries()[0].Message)
	assert.False(t, l.HasErrors())
}

// TestListFatalfPanicsWithAbort checks that Fatalf records the diagnostic
// then panics with the sentinel Abort error, recoverable by the caller.
func TestListFatalfPanicsWithAbort(t *testing.T) {
	var l List
	var recovered interface{}
	func() {
		defer func() { recovered = recover() }()
		l.Fatalf(nil, "boom")
	}()

	require.NotNil(t, recovered)
	err, ok := recovered.(error)
	require.True(t, ok)
	assert.ErrorIs(t, err, Abort)

	require.Len(t, l.Entries(), 1)
	assert.True(t, l.HasErrors())
	assert.Equal(t, "boom", l.Entries()[0].Message)
}

// TestListAddAbortsAtLimit checks that accumulating Limit warnings aborts
// on the one that reaches the cap, bounding pathological input.
func TestListAddAbortsAtLimit(t *testing.T) {
	original := Limit
	Limit = 3
	defer func() { Limit = original }()

	var l List
	var recovered interface{}
	func() {
		defer func() { recovered = recover() }()
		for i := 0; i < 5; i++ {
			l.Warnf(nil, "warning %d", i)
		}
	}()

	require.NotNil(t, recovered)
	assert.Len(t, l.Entries(), 3)
}

// TestDiagnosticFormatWithoutPosition checks that a diagnostic with no
// attributed source position formats as "severity: message".
func TestDiagnosticFormatWithoutPosition(t *testing.T) {
	d := Diagnostic{Severity: Warning, Message: "oops"}

	assert.Equal(t, "warning: oops", fmt.Sprintf("%v", d))
}

// TestDiagnosticFormatWithPosition checks that a diagnostic carrying a
// source range formats as spec §7's "severity[file, {line,col to
// line,col}]: message".
func TestDiagnosticFormatWithPosition(t *testing.T) {
	d := Diagnostic{
		Severity: Fatal,
		HasAt:    true,
		File:     "box.gulc",
		At:       ast.Range{Start: ast.Position{Line: 3, Column: 7}, End: ast.Position{Line: 3, Column: 12}},
		Message:  "bad",
	}

	assert.Equal(t, "error[box.gulc, {3,7 to 3,12}]: bad", fmt.Sprintf("%v", d))
}
