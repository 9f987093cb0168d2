// Package mangle's itanium.go implements a subset of the symbol mangling
// scheme defined by the Itanium C++ ABI, extended with this language's
// vendor conventions (argument-label `U` slots, `v23pow` for `^^`).
//
// See: https://itanium-cxx-abi.github.io/cxx-abi/abi.html#mangling
package mangle

import (
	"bytes"
	"fmt"
	"strconv"
)

// Mangle returns e's Itanium-compatible mangled name, prefixed `_Z`.
func Mangle(e Entity) string {
	m := &mangler{subs: map[Entity]int{}}
	m.WriteString("_Z")
	m.encoding(e)
	return m.String()
}

// VTableSymbol returns the `_ZTV`-prefixed v-table symbol for t.
func VTableSymbol(t Type) string {
	m := &mangler{subs: map[Entity]int{}}
	m.WriteString("_ZTV")
	m.ty(t)
	return m.String()
}

type mangler struct {
	bytes.Buffer
	subs map[Entity]int
}

func (m *mangler) encoding(v Entity) {
	if _, ok := v.(Named); !ok {
		unhandled("encoding", v)
	}
	m.name(v)
	if f, ok := v.(*Function); ok && !f.IsData {
		m.bareFunctionType(f)
	}
}

func (m *mangler) name(v Entity) {
	s, ok := v.(Scoped)
	if !ok {
		unhandled("name", v)
		return
	}
	scope := s.Scope()
	switch {
	// A templated entity always mangles its <template-args> inside an
	// N...E <nested-name>, even at global scope (spec §4.8's
	// Box<i32> -> _ZN3BoxIiEE worked example), unlike a plain unscoped
	// name which drops the N...E wrapper entirely.
	case scope == nil && !isTemplated(v):
		m.unscoped(v)
	default:
		m.nested(v)
	}
}

func (m *mangler) bareFunctionType(f *Function) {
	if isTemplated(f) {
		m.ty(f.Return)
	}
	if len(f.Parameters) > 0 {
		for i, p := range f.Parameters {
			m.argumentLabel(f.ParamLabels, i)
			m.ty(p)
		}
	} else {
		m.ty(Void)
	}
}

// argumentLabel emits the vendor `U<length><label>` slot in front of a
// parameter's type when the parameter carries a source-level label
// (spec §4.8: "matches the Itanium U-vendor-qualifier slot so standard
// demanglers still parse it").
func (m *mangler) argumentLabel(labels []string, i int) {
	if i >= len(labels) || labels[i] == "" {
		return
	}
	m.WriteRune('U')
	m.writeSourceName(labels[i])
}

func (m *mangler) nested(v Entity) {
	m.WriteRune('N')
	defer m.WriteRune('E')

	m.cvQualifiers(v)

	if isTemplated(v) {
		m.templatePrefix(v)
		m.templateArgs(v)
	} else {
		if scope := parentScope(v); scope != nil {
			m.prefix(scope)
		}
		m.unqualified(v)
	}
}

func (m *mangler) unscoped(v Entity) {
	m.unqualified(v)
}

func (m *mangler) unqualified(v Entity) {
	if f, ok := v.(*Function); ok && f.OperatorName != "" {
		m.WriteString(f.OperatorName)
		return
	}
	m.source(v)
}

func parentScope(v Entity) Scope {
	if s, ok := v.(Scoped); ok {
		return s.Scope()
	}
	return nil
}

func (m *mangler) templatePrefix(v Entity) {
	m.substitution(v, func() {
		if scope := parentScope(v); scope != nil {
			m.prefix(scope)
		}
		m.unqualified(v)
	})
}

func (m *mangler) templateArgs(v Entity) {
	m.WriteRune('I')
	for _, t := range v.(Templated).TemplateArguments() {
		if va, ok := t.(ValueArg); ok {
			m.WriteRune('L')
			m.ty(va.Type)
			m.WriteString(strconv.FormatInt(va.Value, 10))
			m.WriteRune('E')
			continue
		}
		m.ty(t)
	}
	m.WriteRune('E')
}

func (m *mangler) prefix(v Entity) {
	if isTemplated(v) {
		m.templatePrefix(v)
		m.templateArgs(v)
		return
	}
	m.substitution(v, func() {
		switch v.(type) {
		case *Class, *Namespace, *Function:
			if scope := parentScope(v); scope != nil {
				m.prefix(scope)
			}
			m.unqualified(v)
		default:
			unhandled("prefix", v)
		}
	})
}

func (m *mangler) ty(t Type) {
	switch t := t.(type) {
	case Builtin:
		m.builtin(t)
	case *Class:
		m.substitution(t, func() { m.name(t) })
	case Pointer:
		m.substitution(t, func() {
			m.WriteRune('P')
			m.ty(t.To)
		})
	case Reference:
		m.substitution(t, func() {
			m.WriteRune('R')
			m.ty(t.To)
		})
	case RValueReference:
		m.substitution(t, func() {
			m.WriteRune('O')
			m.ty(t.To)
		})
	case Qualified:
		if t.Qualifier == Immut {
			m.substitution(t, func() {
				m.WriteRune('K')
				m.ty(t.Underlying)
			})
			return
		}
		m.ty(t.Underlying)
	case TemplateParameter:
		m.substitution(t, func() {
			m.WriteRune('T')
			if t == 0 {
				m.WriteRune('_')
			} else {
				m.WriteString(fmt.Sprintf("%d_", t-1))
			}
		})
	default:
		unhandled("type", t)
	}
}

func (m *mangler) cvQualifiers(v Entity) {
	if f, ok := v.(*Function); ok && f.Const {
		m.WriteRune('K')
	}
}

func (m *mangler) builtin(t Builtin) {
	switch t {
	case Void:
		m.WriteRune('v')
	case Bool:
		m.WriteRune('b')
	case Char:
		m.WriteRune('c')
	case I8:
		m.WriteRune('a')
	case U8:
		m.WriteRune('h')
	case I16:
		m.WriteRune('s')
	case U16:
		m.WriteRune('t')
	case I32:
		m.WriteRune('i')
	case U32:
		m.WriteRune('j')
	case I64:
		m.WriteRune('x')
	case U64:
		m.WriteRune('y')
	case F16:
		m.WriteString("Dh")
	case F32:
		m.WriteRune('f')
	case F64:
		m.WriteRune('d')
	case Ellipsis:
		m.WriteRune('z')
	default:
		unhandled("builtin", t)
	}
}

func (m *mangler) source(v Entity) {
	n, ok := v.(Named)
	if !ok {
		unhandled("source", v)
		return
	}
	m.writeSourceName(n.GetName())
}

func (m *mangler) writeSourceName(name string) {
	m.WriteString(strconv.Itoa(len(name)))
	m.WriteString(name)
}

func isTemplated(v Entity) bool {
	t, ok := v.(Templated)
	return ok && len(t.TemplateArguments()) > 0
}

// substitution applies the Itanium compression scheme: the first
// occurrence of a repeated entity is spelled out via f and recorded;
// every later occurrence is replaced by its S-number.
func (m *mangler) substitution(v Entity, f func()) {
	if s, ok := m.subs[v]; ok {
		if s == 0 {
			m.WriteString("S_")
		} else {
			m.WriteString(fmt.Sprintf("S%s_", base36(s-1)))
		}
		return
	}
	f()
	m.subs[v] = len(m.subs)
}

// base36 renders n using Itanium's substitution-sequence alphabet
// (0-9A-Z), which only matters once a mangled name accumulates more than
// eleven distinct substitutions (S_, then S0_ through S9_, then SA_).
func base36(n int) string {
	if n < 10 {
		return strconv.Itoa(n)
	}
	return string(rune('A' + n - 10))
}

func unhandled(kind string, val interface{}) {
	panic(fmt.Errorf("mangle: unhandled %s: %T(%+v)", kind, val, val))
}
