// Package id allocates identities for nodes of the retained widget tree.
//
// An Id is a process-unique, totally ordered token. It is issued once when a
// view subtree is first built and stays attached to that logical node for as
// long as the node lives. Ids are never reused.
//
// A Path is the ordered sequence of ids from the root of the tree down to a
// target node. Widgets that emit messages record their Path at build time and
// the application driver routes messages back to the view tree by walking it.
package id

import (
	"strconv"
	"strings"
	"sync/atomic"
)

// Id identifies one logical node of the widget tree.
type Id uint64

// Zero is never returned by Next and marks an unassigned identity.
const Zero Id = 0

var counter atomic.Uint64

// Next returns a fresh identity. Successive calls return strictly
// increasing values.
func Next() Id {
	return Id(counter.Add(1))
}

// IsZero reports whether the identity is unassigned.
func (i Id) IsZero() bool {
	return i == Zero
}

// Compare orders identities by allocation order.
func (i Id) Compare(other Id) int {
	switch {
	case i < other:
		return -1
	case i > other:
		return 1
	default:
		return 0
	}
}

func (i Id) String() string {
	return "#" + strconv.FormatUint(uint64(i), 10)
}

// Path is an ordered sequence of identities from root to target.
type Path []Id

// Head returns the first identity and the remaining tail.
// ok is false when the path is empty.
func (p Path) Head() (head Id, tail Path, ok bool) {
	if len(p) == 0 {
		return Zero, nil, false
	}
	return p[0], p[1:], true
}

// Last returns the target identity, or Zero for an empty path.
func (p Path) Last() Id {
	if len(p) == 0 {
		return Zero
	}
	return p[len(p)-1]
}

// Clone returns a copy that does not alias p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// HasPrefix reports whether prefix is a leading sub-path of p.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}
	for i, v := range prefix {
		if p[i] != v {
			return false
		}
	}
	return true
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
