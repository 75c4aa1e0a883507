package venuefile

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat matches every *FormatError.
	ErrFormat = errors.New("venuefile: malformed venue description")

	// ErrIO indicates the venue source could not be opened or read.
	ErrIO = errors.New("venuefile: cannot read venue description")
)

// Kind classifies a format violation.
type Kind int

// Format violation kinds, in the order the parser checks them within a line.
const (
	KindVenueName Kind = iota + 1
	KindVenueCapacity
	KindCorridorSyntax
	KindCorridorInvariant
	KindTrafficValue
	KindTrafficExceedsCorridor
	KindTrafficExceedsVenue
	KindDuplicateCorridor
	KindMissingBlankLine
	KindDuplicateVenue
)

var kindNames = map[Kind]string{
	KindVenueName:              "invalid venue name",
	KindVenueCapacity:          "invalid venue capacity",
	KindCorridorSyntax:         "malformed corridor",
	KindCorridorInvariant:      "invalid corridor",
	KindTrafficValue:           "invalid traffic amount",
	KindTrafficExceedsCorridor: "traffic exceeds corridor capacity",
	KindTrafficExceedsVenue:    "traffic exceeds venue capacity",
	KindDuplicateCorridor:      "duplicate corridor in traffic",
	KindMissingBlankLine:       "missing terminating blank line",
	KindDuplicateVenue:         "duplicate venue",
}

// String returns a short human-readable label for k.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// FormatError reports the first violation found in a venue description.
type FormatError struct {
	Line int    // 1-based line number of the offending line
	Kind Kind   // violation class
	Msg  string // detail for display
}

func (e *FormatError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("venuefile: line %d: %s", e.Line, e.Kind)
	}

	return fmt.Sprintf("venuefile: line %d: %s: %s", e.Line, e.Kind, e.Msg)
}

// Is makes every FormatError match ErrFormat.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

func formatErr(line int, kind Kind, format string, args ...any) *FormatError {
	return &FormatError{Line: line, Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
