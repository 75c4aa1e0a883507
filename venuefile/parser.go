// SPDX-License-Identifier: MIT
//
// File: parser.go
// Role: Line-driven state machine for the venue description grammar.
// Determinism:
//   - Checks within a line run in a fixed order, so a line with several
//     problems always reports the same Kind.

package venuefile

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/venueplan/core"
)

const corridorPrefix = "Corridor "

// integerPattern accepts canonical decimal integers; the sign is allowed so
// that negative values are classified by range rather than by syntax.
var integerPattern = regexp.MustCompile(`^(0|-?[1-9][0-9]*)$`)

type parserState int

const (
	expectHeader parserState = iota
	inBlock
)

// block accumulates one venue while its lines are read.
type block struct {
	line     int
	name     string
	capacity int
	profile  *core.Traffic
	seen     map[core.Corridor]int // corridor -> line it was listed on
}

type parser struct {
	logger *zap.Logger
	state  parserState
	cur    *block
	venues []core.Venue
	lines  []int // header line of each parsed venue
}

func newParser(logger *zap.Logger) *parser {
	return &parser{logger: logger, venues: []core.Venue{}}
}

func (p *parser) feed(lineNo int, line string) error {
	if p.state == expectHeader {
		b, err := parseHeader(lineNo, line)
		if err != nil {
			return err
		}
		p.cur, p.state = b, inBlock

		return nil
	}

	switch {
	case isBlank(line):
		return p.closeBlock(lineNo)
	case strings.HasPrefix(line, corridorPrefix):
		return p.cur.addCorridor(lineNo, line)
	default:
		return formatErr(lineNo, KindMissingBlankLine,
			"venue %q must end with a blank line before %q", p.cur.name, line)
	}
}

// finish closes a block left open at end of input; lastLine is the number of
// the final line read.
func (p *parser) finish(lastLine int) error {
	if p.state == inBlock {
		return p.closeBlock(lastLine)
	}

	return nil
}

// closeBlock builds the pending venue once the line ending it (a blank line,
// or the last line of input) has been reached at endLine.
func (p *parser) closeBlock(endLine int) error {
	b := p.cur
	p.cur, p.state = nil, expectHeader

	v, err := core.NewVenue(b.name, b.capacity, b.profile)
	if err != nil {
		return formatErr(b.line, venueKind(err), "%v", err)
	}
	for i, prev := range p.venues {
		if prev.Equal(v) {
			return formatErr(endLine, KindDuplicateVenue,
				"%q (%d) at line %d repeats the venue at line %d", b.name, b.capacity, b.line, p.lines[i])
		}
	}
	p.venues = append(p.venues, v)
	p.lines = append(p.lines, b.line)
	p.logger.Debug("venue parsed",
		zap.String("venue", b.name),
		zap.Int("line", b.line),
		zap.Int("corridors", len(b.seen)))

	return nil
}

// venueKind classifies a core.NewVenue failure. Header and corridor checks
// run first, so it only fires if core grows a rule the grammar lacks.
func venueKind(err error) Kind {
	switch {
	case errors.Is(err, core.ErrNonPositiveCapacity):
		return KindVenueCapacity
	case errors.Is(err, core.ErrProfileExceedsCapacity):
		return KindTrafficExceedsVenue
	default:
		return KindVenueName
	}
}

// parseHeader parses "NAME (CAPACITY)".
func parseHeader(lineNo int, line string) (*block, error) {
	if isBlank(line) {
		return nil, formatErr(lineNo, KindVenueName, "venue name is empty (unexpected blank line)")
	}
	open := strings.LastIndex(line, "(")
	if open < 0 || !strings.HasSuffix(line, ")") {
		return nil, formatErr(lineNo, KindVenueCapacity, "expected \"NAME (CAPACITY)\", got %q", line)
	}
	name := strings.TrimSuffix(line[:open], " ")
	if isBlank(name) {
		return nil, formatErr(lineNo, KindVenueName, "venue name is empty")
	}
	if len(name) == open {
		return nil, formatErr(lineNo, KindVenueCapacity, "expected a space between %q and its capacity", name)
	}
	raw := line[open+1 : len(line)-1]
	capacity, ok := parseInt(raw)
	if !ok {
		return nil, formatErr(lineNo, KindVenueCapacity, "capacity %q is not an integer", raw)
	}
	if capacity <= 0 {
		return nil, formatErr(lineNo, KindVenueCapacity, "capacity %d is not positive", capacity)
	}

	return &block{
		line:     lineNo,
		name:     name,
		capacity: capacity,
		profile:  core.NewTraffic(),
		seen:     make(map[core.Corridor]int),
	}, nil
}

// addCorridor parses "Corridor START to END (CAPACITY): TRAFFIC" and records it.
func (b *block) addCorridor(lineNo int, line string) error {
	rest := strings.TrimPrefix(line, corridorPrefix)

	sep := strings.LastIndex(rest, "): ")
	if sep < 0 {
		return formatErr(lineNo, KindCorridorSyntax, "expected \"(CAPACITY): TRAFFIC\" at the end of %q", line)
	}
	head, amount := rest[:sep], rest[sep+len("): "):]

	open := strings.LastIndex(head, " (")
	if open < 0 {
		return formatErr(lineNo, KindCorridorSyntax, "missing \" (CAPACITY)\" in %q", line)
	}
	path, rawCap := head[:open], head[open+len(" ("):]

	to := strings.Index(path, " to ")
	if to < 0 {
		return formatErr(lineNo, KindCorridorSyntax, "missing \" to \" between start and end in %q", line)
	}
	startName, endName := path[:to], path[to+len(" to "):]
	if isBlank(startName) {
		return formatErr(lineNo, KindCorridorSyntax, "corridor start location is empty")
	}
	if isBlank(endName) {
		return formatErr(lineNo, KindCorridorSyntax, "corridor end location is empty")
	}
	capacity, ok := parseInt(rawCap)
	if !ok {
		return formatErr(lineNo, KindCorridorSyntax, "corridor capacity %q is not an integer", rawCap)
	}

	start, _ := core.NewLocation(startName)
	end, _ := core.NewLocation(endName)
	c, err := core.NewCorridor(start, end, capacity)
	if err != nil {
		if errors.Is(err, core.ErrLoopCorridor) {
			return formatErr(lineNo, KindCorridorInvariant, "corridor starts and ends at %q", startName)
		}
		return formatErr(lineNo, KindCorridorInvariant, "corridor capacity %d is not positive", capacity)
	}

	traffic, ok := parseInt(amount)
	if !ok {
		return formatErr(lineNo, KindTrafficValue, "traffic %q is not an integer", amount)
	}
	if traffic < 0 {
		return formatErr(lineNo, KindTrafficValue, "traffic %d is negative", traffic)
	}
	if traffic > c.Capacity() {
		return formatErr(lineNo, KindTrafficExceedsCorridor,
			"traffic %d exceeds the capacity of %s", traffic, c)
	}
	if traffic > b.capacity {
		return formatErr(lineNo, KindTrafficExceedsVenue,
			"traffic %d exceeds the capacity %d of venue %q", traffic, b.capacity, b.name)
	}
	if first, dup := b.seen[c]; dup {
		return formatErr(lineNo, KindDuplicateCorridor, "%s already listed at line %d", c, first)
	}
	if err := b.profile.Update(c, traffic); err != nil {
		return formatErr(lineNo, KindTrafficValue, "%v", err)
	}
	b.seen[c] = lineNo

	return nil
}

func parseInt(s string) (int, bool) {
	if !integerPattern.MatchString(s) {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}

	return n, true
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }
