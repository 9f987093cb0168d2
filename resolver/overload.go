package resolver

import (
	"fmt"

	"github.com/gulc-lang/gulc/ast"
	"github.com/gulc-lang/gulc/sema"
)

// candidateSignature is the piece of a Function/Constructor overload-set
// member that scoring needs, extracted so resolveFunctionOverload and
// resolveConstructorOverload do not have to special-case each declaration kind
// (spec §4.7 applies identical rules to all of them).
type candidateSignature struct {
	params []*sema.Parameter
}

// scoreCandidate reports whether args can all convert to sig's parameters
// (matching labels positionally, spec §4.7's "labels are part of the
// signature" rule) and, if so, the worst per-argument conversion rank,
// which is the score used to break ties between multiple viable overloads.
func (r *resolver) scoreCandidate(sig candidateSignature, args []sema.Expression, labels []string) (ConversionRank, []sema.Expression, bool) {
	if len(args) != len(sig.params) {
		return 0, nil, false
	}
	worst := ConvExact
	converted := make([]sema.Expression, len(args))
	for i, p := range sig.params {
		if labels[i] != "" && labels[i] != p.Label {
			return 0, nil, false
		}
		c, rank, ok := r.convert(r.loadValue(args[i]), p.Type)
		if !ok {
			return 0, nil, false
		}
		if rank > worst {
			worst = rank
		}
		converted[i] = c
	}
	return worst, converted, true
}

// resolveFunctionOverload picks the best match among candidates for a call
// with args/labels, memoized by a cache key built from the candidate set's
// identity and the argument signature (SPEC_FULL.md's overload-set caching
// supplement). Reports a fatal diagnostic on no match or an ambiguous tie.
func (r *resolver) resolveFunctionOverload(candidates []*sema.Function, args []sema.Expression, labels []string, at ast.Node) (*sema.Function, []sema.Expression) {
	key := overloadCacheKey("func", candidates, args)
	if cached, ok := r.overloadCache[key]; ok {
		sig := candidateSignature{params: cached.Parameters}
		if _, converted, ok := r.scoreCandidate(sig, args, labels); ok {
			return cached, converted
		}
	}

	var best *sema.Function
	var bestArgs []sema.Expression
	bestRank := ConversionRank(1 << 30)
	tie := false
	for _, c := range candidates {
		rank, converted, ok := r.scoreCandidate(candidateSignature{params: c.Parameters}, args, labels)
		if !ok {
			continue
		}
		switch {
		case rank < bestRank:
			best, bestArgs, bestRank, tie = c, converted, rank, false
		case rank == bestRank:
			tie = true
		}
	}
	if best == nil {
		r.fatalf(at, "no matching overload among %d candidate(s)", len(candidates))
		return nil, nil
	}
	if tie {
		r.fatalf(at, "ambiguous call: more than one overload matches equally well")
		return nil, nil
	}
	r.overloadCache[key] = best
	return best, bestArgs
}

func (r *resolver) resolveConstructorOverload(candidates []*sema.Constructor, args []sema.Expression, labels []string, at ast.Node) (*sema.Constructor, []sema.Expression) {
	var best *sema.Constructor
	var bestArgs []sema.Expression
	bestRank := ConversionRank(1 << 30)
	tie := false
	for _, c := range candidates {
		rank, converted, ok := r.scoreCandidate(candidateSignature{params: c.Parameters}, args, labels)
		if !ok {
			continue
		}
		switch {
		case rank < bestRank:
			best, bestArgs, bestRank, tie = c, converted, rank, false
		case rank == bestRank:
			tie = true
		}
	}
	if best == nil {
		r.fatalf(at, "no matching constructor among %d candidate(s)", len(candidates))
		return nil, nil
	}
	if tie {
		r.fatalf(at, "ambiguous constructor call: more than one overload matches equally well")
		return nil, nil
	}
	return best, bestArgs
}

func overloadCacheKey(prefix string, candidates []*sema.Function, args []sema.Expression) string {
	key := prefix
	for _, c := range candidates {
		key += fmt.Sprintf("|%p", c)
	}
	key += ";"
	for _, a := range args {
		if a == nil {
			key += "nil,"
			continue
		}
		key += typeKey(a.ExpressionType()) + ","
	}
	return key
}
