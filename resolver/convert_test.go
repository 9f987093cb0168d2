package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulc-lang/gulc/ast"
	"github.com/gulc-lang/gulc/sema"
)

// TestConvertExactMatchIsNoop checks that converting a value to its own
// type returns the value unchanged at ConvExact.
func TestConvertExactMatchIsNoop(t *testing.T) {
	r := newResolver(Options{})
	lit := &sema.IntegerLiteral{Type: builtin(sema.I32), Value: 1}

	got, rank, ok := r.convert(lit, builtin(sema.I32))

	require.True(t, ok)
	assert.Equal(t, ConvExact, rank)
	assert.Same(t, lit, got)
}

// TestConvertWideningWrapsInImplicitCast checks that i32 -> i64 widens
// through an ImplicitCast at ConvWidening.
func TestConvertWideningWrapsInImplicitCast(t *testing.T) {
	r := newResolver(Options{})
	lit := &sema.IntegerLiteral{Type: builtin(sema.I32), Value: 1}

	got, rank, ok := r.convert(lit, builtin(sema.I64))

	require.True(t, ok)
	assert.Equal(t, ConvWidening, rank)
	cast, ok := got.(*sema.ImplicitCast)
	require.True(t, ok)
	assert.Equal(t, sema.I64, cast.Type.(*sema.Builtin).Kind)
}

// TestConvertNarrowingIsRejected checks that i64 -> i32 (narrowing) has no
// implicit conversion.
func TestConvertNarrowingIsRejected(t *testing.T) {
	r := newResolver(Options{})
	lit := &sema.IntegerLiteral{Type: builtin(sema.I64), Value: 1}

	_, _, ok := r.convert(lit, builtin(sema.I32))

	assert.False(t, ok)
}

// TestConvertCrossFamilyIsRejected checks that an integer cannot implicitly
// convert to a float type (different builtin families).
func TestConvertCrossFamilyIsRejected(t *testing.T) {
	r := newResolver(Options{})
	lit := &sema.IntegerLiteral{Type: builtin(sema.I32), Value: 1}

	_, _, ok := r.convert(lit, builtin(sema.F32))

	assert.False(t, ok)
}

// TestConvertQualifierAdjustIgnoresConstDifference checks that an
// unqualified i32 value converts to a const i32 target at ConvQualifierAdjust, without
// retyping the underlying representation.
func TestConvertQualifierAdjustIgnoresConstDifference(t *testing.T) {
	r := newResolver(Options{})
	lit := &sema.IntegerLiteral{Type: builtin(sema.I32), Value: 1}

	target := &sema.Qualified{Qualifier: ast.QualConst, Underlying: builtin(sema.I32)}
	_, rank, ok := r.convert(lit, target)

	require.True(t, ok)
	assert.Equal(t, ConvQualifierAdjust, rank)
}

// TestConvertBaseStructUpcast checks that a Derived value converts
// implicitly to its Base struct type.
func TestConvertBaseStructUpcast(t *testing.T) {
	base := &sema.Struct{Named: sema.Named("Base")}
	derived := &sema.Struct{Named: sema.Named("Derived"), Base: base}

	r := newResolver(Options{})
	probe := &probeExpr{t: derived, lvalue: true}

	_, rank, ok := r.convert(probe, base)

	require.True(t, ok)
	assert.Equal(t, ConvBaseStruct, rank)
}

// TestCanConvertMatchesConvert checks that canConvert's probe-based rank
// agrees with a real convert() call for the same from/to pair.
func TestCanConvertMatchesConvert(t *testing.T) {
	r := newResolver(Options{})
	lit := &sema.IntegerLiteral{Type: builtin(sema.I32), Value: 1}

	_, wantRank, wantOK := r.convert(lit, builtin(sema.I64))
	gotRank, gotOK := r.canConvert(builtin(sema.I32), builtin(sema.I64))

	assert.Equal(t, wantOK, gotOK)
	assert.Equal(t, wantRank, gotRank)
}
