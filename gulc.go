// Package gulc is the root entry point collaborators call into: it wraps
// resolver.Resolve with the options the CLI driver (cmd/gulc) and any
// future embedder need, and declares the CodeGenerator boundary spec.md
// §6 describes as a collaborator rather than a core component.
package gulc

import (
	"github.com/gulc-lang/gulc/ast"
	"github.com/gulc-lang/gulc/diag"
	"github.com/gulc-lang/gulc/resolver"
	"github.com/gulc-lang/gulc/sema"
)

// Pass re-exports resolver.Pass so a caller configuring Options never
// needs to import the resolver package directly.
type Pass = resolver.Pass

const (
	PassNamespacePrototyper    = resolver.PassNamespacePrototyper
	PassBasicTypeResolver      = resolver.PassBasicTypeResolver
	PassCircularReferenceCheck = resolver.PassCircularReferenceCheck
	PassBaseResolver           = resolver.PassBaseResolver
	PassConstTypeResolver      = resolver.PassConstTypeResolver
	PassTemplateCopy           = resolver.PassTemplateCopy
	PassExpressionTypeResolver = resolver.PassExpressionTypeResolver
	PassNameMangler            = resolver.PassNameMangler
)

// Options generalizes resolver.Options to the full pipeline (§1.3):
// StopAfterPass stops the pipeline early, WarningsAsErrors makes Run return
// an error when any warning was recorded (the warnings keep their Warning
// severity and do not stop the pipeline), and Target records the triple the CLI
// passes through unchanged to a CodeGenerator collaborator. The core
// itself never reads flags or environment variables; only cmd/gulc does.
type Options struct {
	StopAfterPass       Pass
	WarningsAsErrors    bool
	WarnUnusedAttribute bool
	Target              string
}

func (o Options) resolverOptions() resolver.Options {
	return resolver.Options{
		WarnUnusedAttribute: o.WarnUnusedAttribute,
		StopAfter:           o.StopAfterPass,
	}
}

// Result bundles the resolved unit with the diagnostics accumulated
// running it, the shape both cmd/gulc subcommands report back to a user.
type Result struct {
	Unit  *sema.Unit
	Diags diag.List
}

// Run drives the eight-pass pipeline over files and returns a Result.
// When opts.WarningsAsErrors is set and any warning was recorded, the
// returned error reports the diagnostic list even though no individual
// pass raised a Fatal severity diagnostic.
func Run(files []*ast.File, opts Options) (*Result, error) {
	unit, diags := resolver.Resolve(files, opts.resolverOptions())
	result := &Result{Unit: unit, Diags: diags}
	if diags.HasErrors() {
		return result, diags
	}
	if opts.WarningsAsErrors && len(diags.Entries()) > 0 {
		return result, diags
	}
	return result, nil
}

// CodeGenerator is the back-end boundary spec.md §6 describes as a
// collaborator: given a fully resolved Unit (every declaration carries a
// MangledName, every expression a resolved type; template instantiations
// are mangled too but are not members of any namespace), it
// produces whatever object format the back end targets. The core
// declares this interface but never implements or constructs one — a
// concrete generator lives outside this repository.
type CodeGenerator interface {
	Generate(unit *sema.Unit, target string) error
}
