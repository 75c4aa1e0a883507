// SPDX-License-Identifier: MIT
//
// File: traffic.go
// Role: Mutable per-corridor load ledger with copy/merge semantics and the safety predicate.
// Policy:
//   - Loads are never negative and never wrap; a failing Update or Merge commits nothing.
//   - Zero loads are logically absent (they may or may not be stored).
//   - Clone is a deep copy; no ledger ever shares its map with another.

package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Traffic records the load (number of people) on each corridor.
// Corridors that were never updated carry zero load.
//
// The zero value is not usable; construct with NewTraffic.
type Traffic struct {
	loads map[Corridor]int
}

// NewTraffic returns an empty ledger: every corridor has zero load.
func NewTraffic() *Traffic {
	return &Traffic{loads: make(map[Corridor]int)}
}

// Clone returns an independent deep copy of t.
// Mutations on the copy are never visible through t and vice versa.
//
// Complexity: O(C).
func (t *Traffic) Clone() *Traffic {
	clone := &Traffic{loads: make(map[Corridor]int, len(t.loads))}
	for c, n := range t.loads {
		clone.loads[c] = n
	}

	return clone
}

// Get returns the load on c, or 0 when c was never recorded.
// The unset Corridor is rejected with ErrInvalidArgument.
func (t *Traffic) Get(c Corridor) (int, error) {
	if c.IsZero() {
		return 0, fmt.Errorf("%w: corridor is unset", ErrInvalidArgument)
	}

	return t.loads[c], nil
}

// CorridorsWithTraffic returns every corridor whose load is strictly
// positive, in ascending Corridor order.
//
// Complexity: O(C·log C).
func (t *Traffic) CorridorsWithTraffic() []Corridor {
	out := make([]Corridor, 0, len(t.loads))
	for c, n := range t.loads {
		if n > 0 {
			out = append(out, c)
		}
	}
	SortCorridors(out)

	return out
}

// Update adds delta (negative, zero or positive) to the load on c.
//
// Errors:
//   - ErrInvalidArgument if c is unset.
//   - ErrInvalidTraffic if the new load would be negative; the ledger is unchanged.
//   - ErrTrafficOverflow if the new load would exceed math.MaxInt; the ledger is unchanged.
func (t *Traffic) Update(c Corridor, delta int) error {
	if c.IsZero() {
		return fmt.Errorf("%w: corridor is unset", ErrInvalidArgument)
	}
	cur := t.loads[c]
	if delta > 0 && cur > math.MaxInt-delta {
		return fmt.Errorf("%w: %s carries %d, cannot add %d", ErrTrafficOverflow, c, cur, delta)
	}
	next := cur + delta
	if next < 0 {
		return fmt.Errorf("%w: %s would carry %d", ErrInvalidTraffic, c, next)
	}
	if next == 0 {
		delete(t.loads, c)
		return nil
	}
	t.loads[c] = next

	return nil
}

// Merge adds every load recorded in other into t. other is not modified.
// Merging a ledger into itself doubles every load.
//
// Errors:
//   - ErrInvalidArgument if other is nil.
//   - ErrTrafficOverflow if any merged load would exceed math.MaxInt; t is unchanged.
//
// Complexity: O(C_other).
func (t *Traffic) Merge(other *Traffic) error {
	if other == nil {
		return fmt.Errorf("%w: traffic to merge is nil", ErrInvalidArgument)
	}
	src := other.loads
	if other == t {
		// iterate a snapshot: writing into the map being ranged over is undefined for new keys
		src = other.Clone().loads
	}
	for c, n := range src {
		if cur := t.loads[c]; cur > math.MaxInt-n {
			return fmt.Errorf("%w: %s carries %d, cannot add %d", ErrTrafficOverflow, c, cur, n)
		}
	}
	for c, n := range src {
		t.loads[c] += n
	}

	return nil
}

// SameAs reports whether t and other record the same load on every corridor.
// A nil other is never the same.
func (t *Traffic) SameAs(other *Traffic) bool {
	if other == nil {
		return false
	}
	if t == other {
		return true
	}
	if t.positiveCount() != other.positiveCount() {
		return false
	}
	for c, n := range t.loads {
		if n > 0 && other.loads[c] != n {
			return false
		}
	}

	return true
}

// IsSafe reports whether every corridor's load is within its capacity.
func (t *Traffic) IsSafe() bool {
	for c, n := range t.loads {
		if n > c.capacity {
			return false
		}
	}

	return true
}

// Overloaded returns the corridors whose load exceeds their capacity, in
// ascending order. It is empty exactly when IsSafe is true.
func (t *Traffic) Overloaded() []Corridor {
	var out []Corridor
	for c, n := range t.loads {
		if n > c.capacity {
			out = append(out, c)
		}
	}
	SortCorridors(out)

	return out
}

// Valid reports whether the ledger satisfies its invariant: every key is a
// set corridor and every load is non-negative.
func (t *Traffic) Valid() bool {
	if t == nil || t.loads == nil {
		return false
	}
	for c, n := range t.loads {
		if c.IsZero() || n < 0 {
			return false
		}
	}

	return true
}

// String renders one "CORRIDOR: LOAD\n" line per corridor with positive load,
// in ascending Corridor order. An empty ledger renders as "".
func (t *Traffic) String() string {
	var sb strings.Builder
	for _, c := range t.CorridorsWithTraffic() {
		sb.WriteString(c.String())
		sb.WriteString(": ")
		sb.WriteString(strconv.Itoa(t.loads[c]))
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (t *Traffic) empty() bool {
	return t == nil || t.positiveCount() == 0
}

func (t *Traffic) positiveCount() int {
	n := 0
	for _, v := range t.loads {
		if v > 0 {
			n++
		}
	}

	return n
}
