package mangle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gulc-lang/gulc/mangle"
)

func TestMangleBasic(t *testing.T) {
	// namespace food { namespace fruit {
	//   struct Apple {
	//     func yummy(i32, *char) i32
	//     func eat(*void) bool
	//     func calories() i32
	//     func looksLike(*Apple) bool
	//     func sameAs<T>(T) bool            (T: i32)
	//   }
	//   struct Smoothie<F> { func slurp(F) void }  (F: Apple)
	// }}
	food := &mangle.Namespace{Name: "food"}
	fruit := &mangle.Namespace{Name: "fruit", Parent: food}
	apple := &mangle.Class{Name: "Apple", Parent: fruit}
	smoothie := &mangle.Class{Name: "Smoothie", Parent: fruit, TemplateArgs: []mangle.Type{apple}}

	yummy := &mangle.Function{
		Name:       "yummy",
		Return:     mangle.I32,
		Parameters: []mangle.Type{mangle.I32, mangle.Pointer{To: mangle.Char}},
		Parent:     apple,
	}
	eat := &mangle.Function{
		Name:       "eat",
		Return:     mangle.Bool,
		Parameters: []mangle.Type{mangle.Pointer{To: mangle.Void}},
		Parent:     apple,
	}
	calories := &mangle.Function{
		Name:   "calories",
		Return: mangle.I32,
		Parent: apple,
	}
	looksLike := &mangle.Function{
		Name:       "looksLike",
		Return:     mangle.Bool,
		Parameters: []mangle.Type{mangle.Pointer{To: apple}},
		Parent:     apple,
	}
	sameAs := &mangle.Function{
		Name:         "sameAs",
		Return:       mangle.Bool,
		Parameters:   []mangle.Type{mangle.TemplateParameter(0)},
		TemplateArgs: []mangle.Type{mangle.I32},
		Parent:       apple,
	}
	slurp := &mangle.Function{
		Name:       "slurp",
		Return:     mangle.Void,
		Parameters: []mangle.Type{apple},
		Parent:     smoothie,
	}

	tests := []struct {
		name     string
		sym      mangle.Entity
		expected string
	}{
		{"namespace.class", apple, "_ZN4food5fruit5AppleE"},
		{"method", yummy, "_ZN4food5fruit5Apple5yummyEiPc"},
		{"pointer-to-void", eat, "_ZN4food5fruit5Apple3eatEPv"},
		{"no-args", calories, "_ZN4food5fruit5Apple8caloriesEv"},
		{"self-substitution", looksLike, "_ZN4food5fruit5Apple9looksLikeEPS1_"},
		{"template-method", sameAs, "_ZN4food5fruit5Apple6sameAsIiEEbT_"},
		{"templated-class-method", slurp, "_ZN4food5fruit8SmoothieINS0_5AppleEE5slurpES2_"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mangle.Mangle(tt.sym))
		})
	}
}

func TestMangleQualifiersAndReferences(t *testing.T) {
	box := &mangle.Class{Name: "Box"}

	copyCtor := &mangle.Function{
		Name:         "Box",
		OperatorName: "C2",
		Parent:       box,
		Parameters:   []mangle.Type{mangle.Reference{To: mangle.Qualified{Qualifier: mangle.Immut, Underlying: box}}},
	}
	moveCtor := &mangle.Function{
		Name:         "Box",
		OperatorName: "C2",
		Parent:       box,
		Parameters:   []mangle.Type{mangle.RValueReference{To: box}},
	}
	dtor := &mangle.Function{OperatorName: "D2", Parent: box}

	tests := []struct {
		name     string
		sym      mangle.Entity
		expected string
	}{
		{"copy-ctor", copyCtor, "_ZN3BoxC2ERKS_"},
		{"move-ctor", moveCtor, "_ZN3BoxC2EOS_"},
		{"destructor", dtor, "_ZN3BoxD2Ev"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mangle.Mangle(tt.sym))
		})
	}
}

func TestMangleOperators(t *testing.T) {
	vec := &mangle.Class{Name: "Vec"}
	add := &mangle.Function{
		OperatorName: "pl",
		Parent:       vec,
		Return:       vec,
		Parameters:   []mangle.Type{vec},
	}
	assert.Equal(t, "_ZN3VecplES_", mangle.Mangle(add))
}

func TestMangleArgumentLabel(t *testing.T) {
	// func at(index i32) i32, called as `at(index: 3)`; the `index` label
	// gets a vendor U-slot ahead of the parameter's type.
	fn := &mangle.Function{
		Name:        "at",
		Return:      mangle.I32,
		Parameters:  []mangle.Type{mangle.I32},
		ParamLabels: []string{"index"},
	}
	assert.Equal(t, "_Z2atU5indexi", mangle.Mangle(fn))
}

// TestMangleGlobalTemplateInstantiation matches the worked example in
// spec §8: `struct Box<T>` instantiated as `Box<i32>` at global scope (no
// enclosing namespace) still mangles its template arguments.
func TestMangleGlobalTemplateInstantiation(t *testing.T) {
	box := &mangle.Class{Name: "Box", TemplateArgs: []mangle.Type{mangle.I32}}
	assert.Equal(t, "_ZN3BoxIiEE", mangle.Mangle(box))
}

func TestVTableSymbol(t *testing.T) {
	shape := &mangle.Class{Name: "Shape"}
	assert.Equal(t, "_ZTV5Shape", mangle.VTableSymbol(shape))
}
