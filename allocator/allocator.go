// SPDX-License-Identifier: MIT
//
// File: allocator.go
// Role: Session state (venues, allocation set, derived ledger) and its transitions.
// Policy:
//   - Every rule is checked before anything is committed.
//   - The ledger is always rebuilt from the allocation set, never patched.
//   - Reads return owned copies; callers cannot reach internal state.

package allocator

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/venueplan/core"
)

// Allocator holds the allocation set of one planning session.
type Allocator struct {
	logger      *zap.Logger
	venues      []core.Venue
	allocations []Allocation
	traffic     *core.Traffic
}

// New returns an Allocator over venues with no allocations.
// The venue slice is copied; its order is kept for Venues.
func New(venues []core.Venue, opts ...Option) *Allocator {
	a := &Allocator{
		logger:  zap.NewNop(),
		venues:  slices.Clone(venues),
		traffic: core.NewTraffic(),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Venues returns the session's venues in their original order.
func (a *Allocator) Venues() []core.Venue {
	return slices.Clone(a.venues)
}

// CreateEvent validates and returns the event (name, size).
func (a *Allocator) CreateEvent(name string, size int) (core.Event, error) {
	return core.NewEvent(name, size)
}

// Allocate assigns e to v if every allocation rule holds, then rebuilds the
// traffic ledger. On error nothing changes.
//
// Errors:
//   - core.ErrInvalidArgument for an empty event name or size <= 0.
//   - ErrUnknownVenue if v is not one of Venues().
//   - *RejectionError wrapping ErrDuplicateEvent, ErrDuplicateVenue,
//     ErrCapacityExceeded or ErrUnsafeTraffic.
func (a *Allocator) Allocate(e core.Event, v core.Venue) error {
	if err := validateEvent(e); err != nil {
		return err
	}
	if !a.knows(v) {
		return fmt.Errorf("%w: %q", ErrUnknownVenue, v.Name())
	}
	for _, cur := range a.allocations {
		if cur.Event == e {
			return a.reject(ErrDuplicateEvent, e, v, nil)
		}
	}
	for _, cur := range a.allocations {
		if cur.Venue.Equal(v) {
			return a.reject(ErrDuplicateVenue, e, v, nil)
		}
	}
	if !v.CanHost(e) {
		return a.reject(ErrCapacityExceeded, e, v, nil)
	}

	next := append(slices.Clone(a.allocations), Allocation{Event: e, Venue: v})
	ledger, err := buildTraffic(next)
	if errors.Is(err, core.ErrTrafficOverflow) {
		// a load past math.MaxInt is past every corridor capacity
		return a.reject(ErrUnsafeTraffic, e, v, overloadedBy(a.traffic, v.Traffic(e)))
	}
	if err != nil {
		return err
	}
	if !ledger.IsSafe() {
		return a.reject(ErrUnsafeTraffic, e, v, ledger.Overloaded())
	}

	a.allocations, a.traffic = next, ledger
	a.logger.Info("event allocated",
		zap.String("event", e.Name()),
		zap.Int("size", e.Size()),
		zap.String("venue", v.Name()),
		zap.Int("allocations", len(a.allocations)))

	return nil
}

// CheckSafety reports whether hosting e at v on top of the current
// allocations keeps every corridor within capacity. It never mutates state.
func (a *Allocator) CheckSafety(e core.Event, v core.Venue) bool {
	preview := a.traffic.Clone()
	if err := preview.Merge(v.Traffic(e)); err != nil {
		return false
	}

	return preview.IsSafe()
}

// Remove drops every allocation whose event is (name, size), rebuilds the
// ledger and returns how many allocations were removed. Removing an event
// that is not allocated is a no-op.
func (a *Allocator) Remove(name string, size int) int {
	kept := make([]Allocation, 0, len(a.allocations))
	for _, cur := range a.allocations {
		if cur.Event.Name() == name && cur.Event.Size() == size {
			continue
		}
		kept = append(kept, cur)
	}
	removed := len(a.allocations) - len(kept)
	if removed == 0 {
		return 0
	}

	ledger, err := buildTraffic(kept)
	if err != nil {
		// unreachable: profiles of accepted allocations are valid ledgers
		a.logger.Error("rebuild traffic after removal", zap.Error(err))
		return 0
	}
	a.allocations, a.traffic = kept, ledger
	a.logger.Info("allocation removed",
		zap.String("event", name),
		zap.Int("size", size),
		zap.Int("removed", removed))

	return removed
}

// Allocations returns the current allocations in the order they were made.
func (a *Allocator) Allocations() []Allocation {
	return slices.Clone(a.allocations)
}

// Traffic returns an owned copy of the ledger for the current allocations.
func (a *Allocator) Traffic() *core.Traffic {
	return a.traffic.Clone()
}

func (a *Allocator) knows(v core.Venue) bool {
	for _, known := range a.venues {
		if known.Equal(v) {
			return true
		}
	}

	return false
}

func (a *Allocator) reject(reason error, e core.Event, v core.Venue, overloaded []core.Corridor) error {
	a.logger.Debug("allocation rejected",
		zap.String("event", e.Name()),
		zap.Int("size", e.Size()),
		zap.String("venue", v.Name()),
		zap.Error(reason))

	return &RejectionError{Reason: reason, Event: e, Venue: v, Overloaded: overloaded}
}

func validateEvent(e core.Event) error {
	_, err := core.NewEvent(e.Name(), e.Size())

	return err
}

// overloadedBy returns the corridors whose load in base plus extra would
// exceed capacity, computed without forming the sum.
func overloadedBy(base, extra *core.Traffic) []core.Corridor {
	var out []core.Corridor
	for _, c := range extra.CorridorsWithTraffic() {
		have, _ := base.Get(c)
		add, _ := extra.Get(c)
		if have > c.Capacity()-add {
			out = append(out, c)
		}
	}

	return out
}

// buildTraffic merges the traffic profile of every allocation into a fresh ledger.
func buildTraffic(allocs []Allocation) (*core.Traffic, error) {
	t := core.NewTraffic()
	for _, cur := range allocs {
		if err := t.Merge(cur.Venue.Traffic(cur.Event)); err != nil {
			return nil, fmt.Errorf("allocator: merge traffic of %s: %w", cur.Event, err)
		}
	}

	return t, nil
}
