package resolver

import "github.com/gulc-lang/gulc/ast"

// checkLabels is P2's label/goto/break/continue validation (spec §4.2): it
// collects every `label:` target reachable inside body, then verifies every
// `goto label` names one of them, every unlabeled `break` sits inside a
// loop or switch and every unlabeled `continue` inside a loop, every
// labeled `break`/`continue` names a label defined somewhere in body
// (whether that Labeled statement encloses it is not checked), and
// `fallthrough` only appears directly inside a Case body. Mirrors GULC BasicTypeResolver.cpp's "first reference
// position map, back-patched once the label itself is found" bookkeeping,
// collapsed here into a straightforward two-pass walk since this package
// does not need to report the label itself until after the whole body is
// known.
func (r *resolver) checkLabels(body *ast.Compound) {
	if body == nil {
		return
	}
	labels := map[string]bool{}
	ast.Visit(body, func(n ast.Node) {
		if l, ok := n.(*ast.Labeled); ok {
			labels[l.Label.Value] = true
		}
	})

	var walk func(n ast.Node, loopDepth, switchDepth int, inCase bool)
	walk = func(n ast.Node, loopDepth, switchDepth int, inCase bool) {
		switch t := n.(type) {
		case *ast.Goto:
			if !labels[t.Label.Value] {
				r.fatalf(t, "goto references undefined label %q", t.Label.Value)
			}
		case *ast.Break:
			if t.Label != nil {
				if !labels[t.Label.Value] {
					r.errorf(t, "break references undefined label %q", t.Label.Value)
				}
			} else if loopDepth == 0 && switchDepth == 0 {
				r.errorf(t, "break outside a loop or switch")
			}
		case *ast.Continue:
			if t.Label != nil {
				if !labels[t.Label.Value] {
					r.errorf(t, "continue references undefined label %q", t.Label.Value)
				}
			} else if loopDepth == 0 {
				r.errorf(t, "continue outside a loop")
			}
		case *ast.Fallthrough:
			if !inCase {
				r.errorf(t, "fallthrough outside a switch case")
			}
		case *ast.While:
			walk(t.Body, loopDepth+1, switchDepth, false)
			return
		case *ast.DoWhile:
			walk(t.Body, loopDepth+1, switchDepth, false)
			return
		case *ast.For:
			walk(t.Body, loopDepth+1, switchDepth, false)
			return
		case *ast.Switch:
			for _, c := range t.Cases {
				walk(c.Body, loopDepth, switchDepth+1, true)
			}
			return
		case *ast.Labeled:
			walk(t.Statement, loopDepth, switchDepth, inCase)
			return
		case *ast.If:
			walk(t.Then, loopDepth, switchDepth, false)
			if t.Else != nil {
				walk(t.Else, loopDepth, switchDepth, false)
			}
			return
		case *ast.Compound:
			for _, s := range t.Statements {
				walk(s, loopDepth, switchDepth, inCase)
			}
			return
		case *ast.Do:
			walk(t.Body, loopDepth, switchDepth, false)
			return
		case *ast.DoCatch:
			walk(t.Body, loopDepth, switchDepth, false)
			for _, c := range t.Catches {
				walk(c.Body, loopDepth, switchDepth, false)
			}
			return
		}
	}
	walk(body, 0, 0, false)
}
