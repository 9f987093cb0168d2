package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulc-lang/gulc/sema"
)

func intParam(kind sema.BuiltinKind) *sema.Parameter {
	return &sema.Parameter{Type: builtin(kind)}
}

// TestResolveFunctionOverloadPicksExactMatch checks that, given a choice
// between an exact i32 overload and a widening i32->i64 overload, an i32
// argument resolves to the exact match (spec §4.7's conversion-rank
// tie-break).
func TestResolveFunctionOverloadPicksExactMatch(t *testing.T) {
	exact := &sema.Function{Named: sema.Named("f"), Parameters: []*sema.Parameter{intParam(sema.I32)}}
	widening := &sema.Function{Named: sema.Named("f"), Parameters: []*sema.Parameter{intParam(sema.I64)}}

	arg := &sema.IntegerLiteral{Value: 5, Type: builtin(sema.I32)}

	r := newResolver(Options{})
	best, converted := r.resolveFunctionOverload(
		[]*sema.Function{widening, exact},
		[]sema.Expression{arg},
		[]string{""},
		nil,
	)

	require.Empty(t, r.diags.Entries())
	require.NotNil(t, best)
	assert.Same(t, exact, best)
	require.Len(t, converted, 1)
	assert.Same(t, arg, converted[0])
}

// TestResolveFunctionOverloadNoMatch checks that no viable candidate
// reports a fatal diagnostic rather than returning a nil best silently.
func TestResolveFunctionOverloadNoMatch(t *testing.T) {
	candidate := &sema.Function{Named: sema.Named("f"), Parameters: []*sema.Parameter{intParam(sema.I32), intParam(sema.I32)}}
	arg := &sema.IntegerLiteral{Value: 1, Type: builtin(sema.I32)}

	r := newResolver(Options{})

	var recovered interface{}
	var best *sema.Function
	func() {
		defer func() { recovered = recover() }()
		best, _ = r.resolveFunctionOverload([]*sema.Function{candidate}, []sema.Expression{arg}, []string{""}, nil)
	}()

	require.NotNil(t, recovered)
	assert.Nil(t, best)
	require.True(t, r.diags.HasErrors())
	assert.Contains(t, r.diags.Entries()[0].Message, "no matching overload")
}

// TestResolveFunctionOverloadAmbiguous checks that two equally-ranked
// candidates report an ambiguous-call diagnostic.
func TestResolveFunctionOverloadAmbiguous(t *testing.T) {
	a := &sema.Function{Named: sema.Named("f"), Parameters: []*sema.Parameter{intParam(sema.I32)}}
	b := &sema.Function{Named: sema.Named("f"), Parameters: []*sema.Parameter{intParam(sema.I32)}}
	arg := &sema.IntegerLiteral{Value: 1, Type: builtin(sema.I32)}

	r := newResolver(Options{})

	var recovered interface{}
	func() {
		defer func() { recovered = recover() }()
		r.resolveFunctionOverload([]*sema.Function{a, b}, []sema.Expression{arg}, []string{""}, nil)
	}()

	require.NotNil(t, recovered)
	require.True(t, r.diags.HasErrors())
	assert.Contains(t, r.diags.Entries()[0].Message, "ambiguous call")
}
