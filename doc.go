// Package venueplan allocates events to venues while keeping every traffic
// corridor of a municipality within its capacity.
//
// Each venue, whenever it hosts an event, pushes a fixed number of people onto
// the directed corridors around it. Corridors are shared between venues, so
// two allocations that are fine on their own can together overload a
// corridor. venueplan keeps a ledger of corridor traffic for the current
// allocations and refuses any allocation that would break capacity.
//
// Under the hood, everything is organized under these packages:
//
//	core/       - Location, Corridor, Traffic ledger, Venue, Event
//	venuefile/  - strict parser for the venue description format
//	allocator/  - allocation set, derived traffic ledger and safety checks
//	cmd/venueplan/ - CLI: venues, validate, shell
//
// Quick example of a venue description:
//
//	The Zoo (93)
//	Corridor City to St. Lucia (500): 7
//	Corridor Valley to City (300): 71
//
//	Tivoli (50)
//
//	go install github.com/katalvlaran/venueplan/cmd/venueplan@latest
package venueplan
