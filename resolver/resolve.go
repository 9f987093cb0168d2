package resolver

import (
	"github.com/gulc-lang/gulc/ast"
	"github.com/gulc-lang/gulc/diag"
	"github.com/gulc-lang/gulc/sema"

	"github.com/pkg/errors"
)

// Resolve runs the full P1-P8 pipeline over files and returns the
// resolved sema.Unit plus every diagnostic recorded. A fatal diagnostic
// in any pass aborts the remaining passes (spec §7's fatal-at-pass-
// granularity rule); the function itself never panics out to the caller
// even then, since it recovers diag.Abort at this single top level, the
// same shape gapil/resolver.Resolve uses around parse.AbortParse (see
// _examples/google-gapid/gapil/resolver/resolve.go).
func Resolve(files []*ast.File, opts Options) (unit *sema.Unit, diags diag.List) {
	r := newResolver(opts)

	defer func() {
		if rec := recover(); rec != nil {
			if errors.Is(asError(rec), diag.Abort) {
				diags = r.diags
				unit = r.unit
				return
			}
			panic(rec)
		}
	}()

	root := &sema.Namespace{Named: sema.Named("")}
	r.unit = &sema.Unit{Root: root, Files: files}
	r.scope.AddNamed(root)

	r.runPrototyper(files, root) // P1
	if r.opts.stopAfter(PassNamespacePrototyper) {
		return r.unit, r.diags
	}
	r.runBasicTypes(root) // P2
	if r.opts.stopAfter(PassBasicTypeResolver) {
		return r.unit, r.diags
	}
	r.runCircularCheck(root) // P3
	if r.opts.stopAfter(PassCircularReferenceCheck) {
		return r.unit, r.diags
	}
	r.runBaseResolver(root) // P4
	if r.opts.stopAfter(PassBaseResolver) {
		return r.unit, r.diags
	}
	r.runConstResolver(root) // P5 (+ P5.5 ConstInheriter)
	if r.opts.stopAfter(PassConstTypeResolver) {
		return r.unit, r.diags
	}
	r.runTemplateCopy(root) // P6
	if r.opts.stopAfter(PassTemplateCopy) {
		return r.unit, r.diags
	}
	r.runExprResolver(root) // P7
	if r.opts.stopAfter(PassExpressionTypeResolver) {
		return r.unit, r.diags
	}
	r.runMangler(root) // P8

	return r.unit, r.diags
}

func asError(rec interface{}) error {
	if err, ok := rec.(error); ok {
		return err
	}
	return errors.Errorf("%v", rec)
}
