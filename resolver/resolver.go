// Package resolver implements the eight-pass semantic resolver (P1-P8):
// it takes parsed ast.File trees and produces a resolved sema.Unit,
// reporting diagnostics through a diag.List. Adapted from
// gapil/resolver's resolver struct and scope-stack idiom (see
// _examples/google-gapid/gapil/resolver/resolver.go), generalized from
// gapil's single-API resolve to this language's eight named passes.
package resolver

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gulc-lang/gulc/ast"
	"github.com/gulc-lang/gulc/diag"
	"github.com/gulc-lang/gulc/sema"
)

// Pass names one of the eight fixed passes Resolve runs, in pipeline
// order; StopAfter names the last one to run (SPEC_FULL.md §1.3).
type Pass string

const (
	PassNamespacePrototyper    Pass = "prototype"
	PassBasicTypeResolver      Pass = "basictype"
	PassCircularReferenceCheck Pass = "circular"
	PassBaseResolver           Pass = "base"
	PassConstTypeResolver      Pass = "consttype"
	PassTemplateCopy           Pass = "template"
	PassExpressionTypeResolver Pass = "expr"
	PassNameMangler            Pass = "mangle"
)

// passOrder is the fixed P1-P8 sequence Resolve drives.
var passOrder = []Pass{
	PassNamespacePrototyper, PassBasicTypeResolver, PassCircularReferenceCheck,
	PassBaseResolver, PassConstTypeResolver, PassTemplateCopy,
	PassExpressionTypeResolver, PassNameMangler,
}

// Options customizes a Resolve call.
type Options struct {
	// WarnUnusedAttribute reports a warning for an @attribute the P1
	// prototyper did not recognize on any declaration it prototyped,
	// rather than silently ignoring it (SPEC_FULL.md §3 supplemented
	// feature: attribute validation warnings).
	WarnUnusedAttribute bool

	// StopAfter, when non-empty, ends the pipeline once the named pass
	// completes rather than running all eight (SPEC_FULL.md §1.3's
	// StopAfterPass, useful for `cmd/gulc check` diagnosing a single
	// stage in isolation).
	StopAfter Pass
}

// stopAfter reports whether p is the pass opts.StopAfter names.
func (o Options) stopAfter(p Pass) bool {
	return o.StopAfter != "" && o.StopAfter == p
}

type resolver struct {
	diags   diag.List
	opts    Options
	scope   *scope
	global  *scope
	unit    *sema.Unit
	nextTmp uint64

	// baseStack and templateStack detect P3/P6 recursion the same way
	// gapil/resolver's aliasStack/defStack do (resolver.go's `stack`).
	baseStack     stack
	templateStack stack

	// knownAttributes is populated by P1 from every AttributeDecl seen;
	// P7 consults it to decide whether an unrecognized @name is a typo
	// (supplemented feature, Options.WarnUnusedAttribute).
	knownAttributes map[string]*ast.AttributeDecl

	// instCache memoizes P6 template instantiations by template identity
	// plus argument list, so two references to the same Foo<i32> share one
	// sema.TemplateStructInst rather than producing a duplicate copy each
	// time the name is written (spec §4.6's "instantiation is idempotent
	// per argument list" invariant).
	instCache map[instKey]sema.Type

	// funcInstCache mirrors instCache for function-template instantiations,
	// kept separate since a TemplateFunctionInst is not itself a sema.Type
	// (a callable function value has no type-position identity).
	funcInstCache map[instKey]*sema.TemplateFunctionInst

	// pendingBodies queues every instantiated method or function-template
	// body P6 could not resolve yet (P7 hasn't run), resolved against the
	// original template's ast.Compound once P7 starts (template.go).
	pendingBodies []pendingBody

	// overloadCache memoizes P7's scored overload-resolution result per
	// (candidate set, argument signature), since the same call shape often
	// recurs across an instantiation's many copies (SPEC_FULL.md §3's
	// "overload-set caching" supplemented feature).
	overloadCache map[string]*sema.Function

	// localStack is the active stack of block scopes' declared locals
	// (innermost last), consulted by statement.go to build a Return/Goto's
	// PreReturnDeferred/PreGotoDeferred destructor-call list.
	localStack [][]*sema.Variable

	// breakStack/continueStack are the active loop/switch statements a
	// bare `break`/`continue` targets (innermost last); labelTargets maps
	// a label name to the *sema.LabeledStmt a labeled break/continue/goto
	// targets, both populated by statement.go while walking a body.
	breakStack    []sema.Statement
	continueStack []sema.Statement
	labelTargets  map[string]*sema.LabeledStmt
}

// scope is one nested lexical scope: a symbol table plus a parent link,
// mirroring gapil/resolver's scope type.
type scope struct {
	sema.Symbols
	outer      *scope
	self       sema.Type // the enclosing struct/trait, for `self`/Self resolution
	function   *sema.Function
	returnType sema.Type // the enclosing callable's declared return type, for `return` checking
}

func newResolver(opts Options) *resolver {
	g := &scope{}
	return &resolver{
		opts:          opts,
		scope:         g,
		global:        g,
		instCache:     map[instKey]sema.Type{},
		funcInstCache: map[instKey]*sema.TemplateFunctionInst{},
		overloadCache: map[string]*sema.Function{},
		labelTargets:  map[string]*sema.LabeledStmt{},
	}
}

// with runs action inside a freshly pushed child scope, restoring the
// original scope before returning (gapil/resolver.resolver.with).
func (r *resolver) with(self sema.Type, action func()) {
	original := r.scope
	r.scope = &scope{outer: r.scope, self: self, function: r.scope.function}
	if self == nil {
		r.scope.self = original.self
	}
	defer func() { r.scope = original }()
	action()
}

// withFunction is like with but also sets the function enclosing the new
// scope, used so `return` and contract resolution can find it.
func (r *resolver) withFunction(fn *sema.Function, action func()) {
	original := r.scope
	r.scope = &scope{outer: r.scope, self: original.self, function: fn}
	defer func() { r.scope = original }()
	action()
}

// withReturn runs action inside a scope that records the declared return
// type of the callable being resolved, so a nested `return expr` can be
// checked/converted against it even for constructors, destructors, and
// operator bodies that have no *sema.Function of their own.
func (r *resolver) withReturn(t sema.Type, action func()) {
	original := r.scope
	r.scope = &scope{outer: r.scope, self: original.self, function: original.function, returnType: t}
	defer func() { r.scope = original }()
	action()
}

func (s *scope) returnTypeOf() sema.Type {
	for c := s; c != nil; c = c.outer {
		if c.returnType != nil {
			return c.returnType
		}
	}
	return nil
}

func (r *resolver) addNamed(n sema.NamedNode) { r.scope.AddNamed(n) }
func (r *resolver) add(name string, n sema.Node) { r.scope.Add(name, n) }

func (r *resolver) addMembers(owner sema.Owner) {
	owner.VisitMembers(func(m sema.Owned) { r.scope.AddNamed(m) })
}

// find searches the scope stack outward for every binding matching name,
// same shape as gapil/resolver.resolver.find.
func (r *resolver) find(name string) []sema.Node {
	var result []sema.Node
	for s := r.scope; s != nil; s = s.outer {
		result = append(result, s.FindAll(name)...)
	}
	return result
}

// get resolves name to exactly one node, reporting "unknown identifier"
// or "ambiguous identifier" otherwise (gapil/resolver.resolver.get).
func (r *resolver) get(at ast.Node, name string) sema.Node {
	matches := r.find(name)
	switch len(matches) {
	case 0:
		r.fatalf(at, "unknown identifier %q", name)
		return nil
	case 1:
		return matches[0]
	default:
		r.ambiguous(at, name, matches)
		return nil
	}
}

func (r *resolver) ambiguous(at ast.Node, name string, matches []sema.Node) {
	parts := make([]string, len(matches))
	for i, m := range matches {
		parts[i] = describe(m)
	}
	r.fatalf(at, "ambiguous identifier %q: could be %s", name, strings.Join(parts, ", "))
}

func describe(n sema.Node) string {
	if nn, ok := n.(sema.NamedNode); ok {
		return fmt.Sprintf("%T %q", n, nn.Name())
	}
	return fmt.Sprintf("%T", n)
}

func (r *resolver) errorf(at interface{}, message string, args ...interface{}) {
	r.diags.Warnf(astOf(at), message, args...)
}

func (r *resolver) fatalf(at interface{}, message string, args ...interface{}) {
	r.diags.Fatalf(astOf(at), message, args...)
}

// icef reports an internal-consistency-error: a condition that should be
// unreachable if every earlier pass did its job, not a user-facing
// mistake in the source (gapil/resolver.resolver.icef).
func (r *resolver) icef(at interface{}, message string, args ...interface{}) {
	r.fatalf(at, "internal error: "+message, args...)
}

// astOf extracts an ast.Node to attach a diagnostic to from an arbitrary
// value: the value itself if it already is one, or its "AST" field if it
// is a struct/pointer-to-struct carrying one (gapil/resolver.resolver.errorf
// does the same reflection-based fallback so callers can pass either a raw
// ast.Node or any sema node with an AST back-pointer).
func astOf(at interface{}) ast.Node {
	if at == nil {
		return nil
	}
	if n, ok := at.(ast.Node); ok {
		return n
	}
	v := reflect.ValueOf(at)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	f := v.FieldByName("AST")
	if !f.IsValid() || !f.CanInterface() {
		return nil
	}
	n, _ := f.Interface().(ast.Node)
	return n
}

// stack is a simple recursion-detector, used by P3 (circular struct
// bases) and P6 (circular template instantiation), mirroring
// gapil/resolver.resolver's stack type.
type stack []interface{}

func (s *stack) push(o interface{}) { *s = append(*s, o) }
func (s *stack) pop()               { *s = (*s)[:len(*s)-1] }

func (s stack) contains(o interface{}) bool {
	for _, e := range s {
		if e == o {
			return true
		}
	}
	return false
}

func (s stack) String() string {
	parts := make([]string, len(s))
	for i, o := range s {
		if n, ok := o.(sema.NamedNode); ok {
			parts[i] = n.Name()
		} else {
			parts[i] = fmt.Sprintf("%v", o)
		}
	}
	return strings.Join(parts, " -> ")
}

func (r *resolver) uid() uint64 {
	id := r.nextTmp
	r.nextTmp++
	return id
}
