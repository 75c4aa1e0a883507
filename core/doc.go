// Package core defines the value and aggregate types used to account for
// corridor traffic: Location, Corridor, Traffic, Venue and Event.
//
// The model G = (L, C) is a set of named locations L and directed,
// capacity-bounded corridors C between two distinct locations. A Traffic
// ledger records a non-negative load per corridor; a ledger is "safe" when no
// corridor carries more load than its declared capacity.
//
// Identity is structural everywhere:
//
//   - Location and Corridor are comparable structs; two values built from
//     equal fields are interchangeable as map keys and set members.
//   - Event is a comparable (name, size) pair.
//   - Venue is compared with Equal (name, capacity and traffic profile).
//
// Ordering:
//
//	Location - by name (byte-wise).
//	Corridor - by start, then end, then capacity (ascending).
//
// Traffic operations:
//
//	NewTraffic() *Traffic                 // O(1)
//	Clone() *Traffic                      // O(C) deep copy
//	Get(c Corridor) (int, error)          // O(1)
//	Update(c Corridor, delta int) error   // O(1), never commits a negative load
//	Merge(other *Traffic) error           // O(C_other), self-merge doubles, all-or-nothing
//	SameAs(other *Traffic) bool           // O(C)
//	IsSafe() bool                         // O(C)
//	CorridorsWithTraffic() []Corridor     // O(C·log C), ascending
//
// Errors:
//
//	ErrInvalidArgument        - empty names, non-positive sizes, unset corridors, nil ledgers.
//	ErrLoopCorridor           - corridor start equals its end.
//	ErrNonPositiveCapacity    - corridor or venue capacity <= 0.
//	ErrProfileExceedsCapacity - a venue profile sends more people than the venue holds.
//	ErrInvalidTraffic         - an update would drive a corridor's load negative.
//	ErrTrafficOverflow        - an update or merge would push a load past math.MaxInt.
//
// None of the types here are safe for concurrent mutation; the ledger is owned
// by a single writer (see package allocator).
package core
