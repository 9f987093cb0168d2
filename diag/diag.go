// Package diag implements the diagnostic model every resolver pass reports
// through: a bounded list of non-fatal Warnings plus a single fatal Abort
// that unwinds the whole resolve in one panic/recover, mirroring
// gapil/core/text/parse's Error/ErrorList/AbortParse triad (see
// _examples/google-gapid/core/text/parse/error.go).
package diag

import (
	"fmt"
	"runtime"

	"github.com/gulc-lang/gulc/ast"

	"github.com/pkg/errors"
)

// Severity classifies a Diagnostic.
type Severity int

const (
	Warning Severity = iota
	Fatal
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Fatal:
		return "error"
	default:
		return "unknown"
	}
}

// Limit is the maximum number of diagnostics a List accumulates before
// Add panics with Abort, bounding how much work a pathological input can
// force (spec §7, "a pass does not produce unbounded diagnostics").
var Limit = 100

// Abort is panicked when a List hits Limit, or when a pass hits a
// condition it cannot recover from (an internal-error check, a P6
// instantiation cycle). resolver.Resolve recovers it exactly once, at the
// top level, turning it back into a normal error return (spec §7's
// "fatal-at-pass-granularity" rule).
var Abort = errors.New("diag: abort")

// Diagnostic is one reported error or warning.
type Diagnostic struct {
	Severity Severity
	File     string
	At       ast.Range
	HasAt    bool
	Message  string
	Stack    []byte
}

func (d Diagnostic) Error() string { return d.Message }

// Format renders spec §7's documented user-visible shape,
// "severity[file, {line,col to line,col}]: message", or just "severity:
// message" when no source position is available (e.g. a whole-unit error
// raised before any file was attributed).
func (d Diagnostic) Format(f fmt.State, c rune) {
	if !d.HasAt {
		fmt.Fprintf(f, "%s: %s", d.Severity, d.Message)
		return
	}
	fmt.Fprintf(f, "%s[%s, {%d,%d to %d,%d}]: %s", d.Severity, d.File,
		d.At.Start.Line, d.At.Start.Column, d.At.End.Line, d.At.End.Column, d.Message)
}

// List accumulates diagnostics for one Resolve call.
type List struct {
	entries []Diagnostic
}

// Add appends a diagnostic. sev == Fatal panics with Abort immediately
// after recording it, so the caller's diagnostic list still contains the
// message the recovered top level reports.
func (l *List) Add(sev Severity, at ast.Node, message string, args ...interface{}) {
	d := Diagnostic{Severity: sev}
	if at != nil {
		d.At = at.Pos()
		d.HasAt = true
		d.File = ast.FileOf(at)
	}
	if len(args) > 0 {
		d.Message = fmt.Sprintf(message, args...)
	} else {
		d.Message = message
	}
	var stack [1 << 14]byte
	n := runtime.Stack(stack[:], false)
	d.Stack = append([]byte(nil), stack[:n]...)

	l.entries = append(l.entries, d)
	if sev == Fatal {
		panic(errors.WithStack(Abort))
	}
	if len(l.entries) >= Limit {
		panic(errors.WithStack(Abort))
	}
}

// Warnf appends a non-fatal diagnostic.
func (l *List) Warnf(at ast.Node, message string, args ...interface{}) {
	l.Add(Warning, at, message, args...)
}

// Fatalf appends a fatal diagnostic and never returns.
func (l *List) Fatalf(at ast.Node, message string, args ...interface{}) {
	l.Add(Fatal, at, message, args...)
}

// Entries returns every diagnostic recorded so far, in report order.
func (l *List) Entries() []Diagnostic { return l.entries }

// HasErrors reports whether any Fatal-severity diagnostic was recorded.
// In practice this is always true after a Fatalf, since Fatalf panics,
// but it lets a caller holding a partially-filled List (e.g. from a
// recovered Abort) distinguish "no problems" from "aborted before
// recording anything."
func (l *List) HasErrors() bool {
	for _, d := range l.entries {
		if d.Severity == Fatal {
			return true
		}
	}
	return false
}

func (l List) Error() string {
	if len(l.entries) == 0 {
		return ""
	}
	return fmt.Sprintf("%d diagnostics, first was: %v", len(l.entries), l.entries[0])
}
