package sema

import (
	"fmt"
	"sort"
)

// Symbols is a sorted-slice multimap from name to Node, the building block
// behind every scope in the resolved graph. Find reports an ambiguous
// match as an error rather than picking one arbitrarily, the direct
// mechanism behind spec §4.2's "more than one visible declaration shares
// the name" diagnostic; FindAll returns every match for call sites (P7
// overload resolution) that need the whole overload set rather than a
// single unique answer.
type Symbols struct {
	sorted  bool
	entries byName
}

// AddNamed inserts a NamedNode under its own Name().
func (s *Symbols) AddNamed(entry NamedNode) {
	s.entries = append(s.entries, namedEntry{name: entry.Name(), node: entry})
	s.sorted = false
}

// Add inserts entry under an explicit name, used when a node is visible
// under a name other than its own (e.g. a constructor registered under its
// enclosing struct's name).
func (s *Symbols) Add(name string, entry Node) {
	s.entries = append(s.entries, namedEntry{name: name, node: entry})
	s.sorted = false
}

// Visit calls visitor once per entry in sorted name order.
func (s *Symbols) Visit(visitor func(string, Node)) {
	s.sort()
	for _, e := range s.entries {
		visitor(e.name, e.node)
	}
}

// Find returns the unique entry for name, nil if there is none, or a
// non-nil error if more than one entry shares the name.
func (s *Symbols) Find(name string) (Node, error) {
	i := s.find(name)
	if i >= len(s.entries) || s.entries[i].name != name {
		return nil, nil
	}
	match := s.entries[i].node
	if i+1 < len(s.entries) && s.entries[i+1].name == name {
		return match, fmt.Errorf("ambiguous match for %q", name)
	}
	return match, nil
}

// FindAll returns every entry sharing name, in insertion order (stable
// sort preserves declaration order among same-named overloads).
func (s *Symbols) FindAll(name string) []Node {
	i := s.find(name)
	result := []Node{}
	for ; i < len(s.entries) && s.entries[i].name == name; i++ {
		result = append(result, s.entries[i].node)
	}
	return result
}

func (s *Symbols) find(name string) int {
	s.sort()
	return sort.Search(len(s.entries), func(i int) bool { return s.entries[i].name >= name })
}

func (s *Symbols) sort() {
	if !s.sorted {
		sort.Stable(s.entries)
		s.sorted = true
	}
}

type namedEntry struct {
	name string
	node Node
}

type byName []namedEntry

func (a byName) Len() int           { return len(a) }
func (a byName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byName) Less(i, j int) bool { return a[i].name < a[j].name }
