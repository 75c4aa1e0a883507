// Package allocator assigns events to venues without ever letting the
// combined traffic of all allocations exceed any corridor's capacity.
//
// An Allocator owns the session state: the venue list, the allocation set
// (each event at most once, each venue at most once) and the traffic ledger
// derived from it. The ledger is rebuilt from the allocation set after every
// change rather than patched incrementally.
//
// Allocate checks, in order:
//
//	event name non-empty, size > 0   core.ErrInvalidArgument
//	venue is one of the known venues ErrUnknownVenue
//	event not yet allocated          ErrDuplicateEvent
//	venue not yet allocated          ErrDuplicateVenue
//	event fits in the venue          ErrCapacityExceeded
//	merged ledger stays safe         ErrUnsafeTraffic
//
// The last four wrap ErrAllocationRejected. A rejected call leaves the
// allocation set and the ledger untouched.
//
// An Allocator is not safe for concurrent use.
package allocator
