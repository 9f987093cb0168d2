package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddSetsOwnerAndRegistersMember checks that Add both links the child's
// Owner() back to the parent and makes the child visible through the
// parent's Member lookup, the one way Owned nodes enter the graph.
func TestAddSetsOwnerAndRegistersMember(t *testing.T) {
	ns := &Namespace{Named: Named("geo")}
	point := &Struct{Named: Named("Point")}

	Add(ns, point)

	assert.Same(t, ns, point.Owner())
	assert.Same(t, point, ns.Member("Point"))
}

// TestVisitMembersWalksInSortedOrder checks that VisitMembers (used by
// every pass's namespace walk) visits members in sorted-name order.
func TestVisitMembersWalksInSortedOrder(t *testing.T) {
	ns := &Namespace{Named: Named("geo")}
	Add(ns, &Struct{Named: Named("Zed")})
	Add(ns, &Struct{Named: Named("Alpha")})

	var names []string
	ns.VisitMembers(func(o Owned) { names = append(names, o.Name()) })

	require.Len(t, names, 2)
	assert.Equal(t, []string{"Alpha", "Zed"}, names)
}

// TestNoMembersPanicsOnAddMember checks that a leaf node (e.g. Variable)
// embedding noMembers panics if something tries to add a child to it,
// rather than silently dropping the addition.
func TestNoMembersPanicsOnAddMember(t *testing.T) {
	x := &Variable{Named: Named("x")}

	assert.Panics(t, func() {
		Add(x, namedStub("y"))
	})
}
