// Package venuefile reads venue descriptions in the line-oriented venue file
// format and turns them into core.Venue values.
//
// Format (one block per venue, blocks separated by a single blank line; the
// blank line after the last block is optional):
//
//	The Zoo (93)
//	Corridor City to St. Lucia (500): 7
//	Corridor Valley to City (300): 71
//
//	Tivoli (50)
//
// Names and locations are free text that must not be empty. Capacities are
// positive and traffic amounts non-negative integers written in canonical
// decimal form ("0" or a digit string without leading zeros or sign).
//
// Parsing stops at the first violation and returns a *FormatError carrying the
// 1-based line number and a Kind:
//
//	KindVenueName              - venue name empty (including a stray blank line)
//	KindVenueCapacity          - venue capacity missing, malformed or <= 0
//	KindCorridorSyntax         - corridor line malformed
//	KindCorridorInvariant      - corridor capacity <= 0 or start == end
//	KindTrafficValue           - traffic amount missing, negative or malformed
//	KindTrafficExceedsCorridor - traffic greater than the corridor capacity
//	KindTrafficExceedsVenue    - traffic greater than the venue capacity
//	KindDuplicateCorridor      - corridor listed twice in one venue
//	KindMissingBlankLine       - block not closed by a blank line
//	KindDuplicateVenue         - two structurally equal venues
//
// All format errors match ErrFormat with errors.Is. Read failures match ErrIO
// and are never reported as format errors. No partial venue list is returned
// on error.
package venuefile
