package resolver

import (
	"github.com/gulc-lang/gulc/ast"
	"github.com/gulc-lang/gulc/sema"
)

// ConversionRank orders the implicit conversions spec §4.7 allows from best
// (exact type match) to worst (a user-defined trait conversion through a
// v-table), mirroring GULC's ExprTypeResolver conversion ladder. Overload
// resolution (overload.go) picks the candidate whose worst per-argument
// rank is best; a conversion this package cannot express at all is reported
// by convert returning ok == false rather than some out-of-band rank.
type ConversionRank int

const (
	ConvExact ConversionRank = iota
	ConvQualifierAdjust
	ConvWidening
	ConvLValueToRValue
	ConvRValueToInRef
	ConvImplicitDeref
	ConvBaseStruct
	ConvTraitConversion
)

// builtinRank orders the scalar kinds along their widening chain; two
// builtins only widen within the same family (int to int, float to float).
var builtinRank = map[sema.BuiltinKind]int{
	sema.I8: 0, sema.I16: 1, sema.I32: 2, sema.I64: 3,
	sema.U8: 0, sema.U16: 1, sema.U32: 2, sema.U64: 3,
	sema.F16: 0, sema.F32: 1, sema.F64: 2,
}

func builtinFamily(k sema.BuiltinKind) int {
	switch {
	case k >= sema.I8 && k <= sema.I64:
		return 1
	case k >= sema.U8 && k <= sema.U64:
		return 2
	case k >= sema.F16 && k <= sema.F64:
		return 3
	case k == sema.Char:
		return 4
	case k == sema.Bool:
		return 5
	default:
		return 0
	}
}

// convert wraps value (of static type from) in whatever implicit-conversion
// nodes are needed to use it where a value of type to is expected, returning
// the rank of the conversion applied, or ok == false if no such conversion
// exists (spec §4.7).
func (r *resolver) convert(value sema.Expression, to sema.Type) (sema.Expression, ConversionRank, bool) {
	from := value.ExpressionType()
	if typesIdentical(from, to) {
		return value, ConvExact, true
	}

	// A difference that only adds or drops a qualifier (unqualified <->
	// mut/immut/const) on an identical underlying type never changes
	// representation. Two different explicit qualifiers (e.g. mut vs const)
	// are not adjusted here.
	fq, fu := stripQualifier(from)
	tq, tu := stripQualifier(to)
	if typesIdentical(fu, tu) && (fq == ast.QualUnassigned || tq == ast.QualUnassigned || fq == tq) {
		return &sema.ImplicitCast{Value: value, Type: to}, ConvQualifierAdjust, true
	}

	if fb, ok := underlyingBuiltin(fu); ok {
		if tb, ok := underlyingBuiltin(tu); ok {
			if builtinFamily(fb.Kind) == builtinFamily(tb.Kind) && builtinRank[fb.Kind] <= builtinRank[tb.Kind] {
				return &sema.ImplicitCast{Value: value, Type: to}, ConvWidening, true
			}
		}
	}

	if tr, ok := tu.(*sema.Reference); ok {
		if isLValue(value) {
			if typesIdentical(stripQualifierOnly(fu), stripQualifierOnly(tr.To)) {
				return value, ConvLValueToRValue, true
			}
		} else if typesIdentical(fu, tr.To) {
			return &sema.RValueToInRef{Value: value, Type: to}, ConvRValueToInRef, true
		}
	}
	if fr, ok := fu.(*sema.Reference); ok {
		if typesIdentical(fr.To, tu) {
			return &sema.LValueToRValue{Value: value, Type: to}, ConvLValueToRValue, true
		}
	}

	if fp, ok := fu.(*sema.Pointer); ok {
		if typesIdentical(fp.To, tu) {
			return &sema.ImplicitDeref{Value: value, Type: to}, ConvImplicitDeref, true
		}
	}

	if base, ok := fu.(*sema.Struct); ok {
		for cur := base.Base; cur != nil; {
			if typesIdentical(cur, tu) {
				return &sema.ImplicitCast{Value: value, Type: to}, ConvBaseStruct, true
			}
			s, ok := cur.(*sema.Struct)
			if !ok {
				break
			}
			cur = s.Base
		}
		for _, tr := range base.Traits {
			if typesIdentical(tr, tu) {
				return &sema.ImplicitCast{Value: value, Type: to}, ConvTraitConversion, true
			}
		}
	}
	if inst, ok := fu.(*sema.TemplateStructInst); ok {
		if typesIdentical(inst.Base, tu) {
			return &sema.ImplicitCast{Value: value, Type: to}, ConvBaseStruct, true
		}
		for _, tr := range inst.Traits {
			if typesIdentical(tr, tu) {
				return &sema.ImplicitCast{Value: value, Type: to}, ConvTraitConversion, true
			}
		}
	}

	return value, 0, false
}

// canConvert reports whether a value of type from can convert to type to,
// and at what rank, without materializing the wrapping expression nodes;
// used by overload resolution to score a candidate before committing to it.
func (r *resolver) canConvert(from, to sema.Type) (ConversionRank, bool) {
	probe := &probeExpr{t: from, lvalue: true}
	_, rank, ok := r.convert(probe, to)
	return rank, ok
}

// probeExpr is a throwaway Expression used only to drive convert's type
// logic during overload scoring, never attached to the resolved tree.
type probeExpr struct {
	t      sema.Type
	lvalue bool
}

func (*probeExpr) isNode()                    {}
func (*probeExpr) isExpression()              {}
func (p *probeExpr) ExpressionType() sema.Type { return p.t }

func isLValue(e sema.Expression) bool {
	switch e.(type) {
	case *sema.LocalVariableRef, *sema.ParameterRef, *sema.VariableRef,
		*sema.MemberVariableRef, *sema.SubscriptCall, *sema.CurrentSelf:
		return true
	case *probeExpr:
		return e.(*probeExpr).lvalue
	default:
		return false
	}
}

func underlyingBuiltin(t sema.Type) (*sema.Builtin, bool) {
	b, ok := t.(*sema.Builtin)
	return b, ok
}

// stripQualifier returns the ast.Qualifier and the underlying type beneath
// any Qualified wrapper, or ast.QualUnassigned and t itself if t isn't
// qualified at all.
func stripQualifier(t sema.Type) (ast.Qualifier, sema.Type) {
	if q, ok := t.(*sema.Qualified); ok {
		return q.Qualifier, q.Underlying
	}
	return ast.QualUnassigned, t
}

func stripQualifierOnly(t sema.Type) sema.Type {
	_, u := stripQualifier(t)
	return u
}

// typesIdentical compares two resolved types structurally for the purposes
// overload resolution and conversion need: same named declaration, or
// structurally equal composite shape.
func typesIdentical(a, b sema.Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a == b {
		return true
	}
	switch an := a.(type) {
	case *sema.Builtin:
		bn, ok := b.(*sema.Builtin)
		return ok && an.Kind == bn.Kind
	case *sema.Pointer:
		bn, ok := b.(*sema.Pointer)
		return ok && typesIdentical(an.To, bn.To)
	case *sema.Reference:
		bn, ok := b.(*sema.Reference)
		return ok && typesIdentical(an.To, bn.To)
	case *sema.RValueReference:
		bn, ok := b.(*sema.RValueReference)
		return ok && typesIdentical(an.To, bn.To)
	case *sema.Qualified:
		bn, ok := b.(*sema.Qualified)
		return ok && an.Qualifier == bn.Qualifier && typesIdentical(an.Underlying, bn.Underlying)
	case *sema.Imaginary:
		bn, ok := b.(*sema.Imaginary)
		return ok && typesIdentical(an.Of, bn.Of)
	case *sema.Alias:
		return typesIdentical(an.Underlying, b)
	case *sema.Self:
		return typesIdentical(an.Resolved, b)
	default:
		if bAlias, ok := b.(*sema.Alias); ok {
			return typesIdentical(a, bAlias.Underlying)
		}
		if bSelf, ok := b.(*sema.Self); ok {
			return typesIdentical(a, bSelf.Resolved)
		}
		return false
	}
}
