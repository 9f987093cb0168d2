package main

import (
	"fmt"

	"github.com/gulc-lang/gulc/mangle"
)

// mangleDemoLines builds the `namespace geo { struct Vec { x i32; func
// length() i32; copy-ctor; destructor } }` example directly against the
// mangle package's Entity tree (the same shape resolver/mangle_test.go
// exercises through the resolver) and returns one "label: symbol" line
// per member.
func mangleDemoLines() []string {
	geo := &mangle.Namespace{Name: "geo"}
	vec := &mangle.Class{Name: "Vec", Parent: geo}

	x := &mangle.Function{Parent: vec, Name: "x", IsData: true}
	length := &mangle.Function{Parent: vec, Name: "length", Return: mangle.I32}
	ctor := &mangle.Function{
		Parent:       vec,
		Name:         "Vec",
		OperatorName: "C2",
		Parameters:   []mangle.Type{mangle.Reference{To: mangle.Qualified{Qualifier: mangle.Immut, Underlying: vec}}},
	}
	dtor := &mangle.Function{Parent: vec, OperatorName: "D2"}

	return []string{
		fmt.Sprintf("geo::Vec: %s", mangle.Mangle(vec)),
		fmt.Sprintf("geo::Vec::x: %s", mangle.Mangle(x)),
		fmt.Sprintf("geo::Vec::length: %s", mangle.Mangle(length)),
		fmt.Sprintf("geo::Vec copy-ctor: %s", mangle.Mangle(ctor)),
		fmt.Sprintf("geo::Vec dtor: %s", mangle.Mangle(dtor)),
		fmt.Sprintf("_ZTV (vtable): %s", mangle.VTableSymbol(vec)),
	}
}
