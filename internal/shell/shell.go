// Package shell is a line-oriented front end over an allocator.Allocator.
//
// It is the presentation layer of the CLI: it turns each input line into one
// query or command, and reports rejected actions as user messages instead of
// failing, so a session survives any invalid input.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/venueplan/allocator"
	"github.com/katalvlaran/venueplan/core"
)

// User-facing messages for rejected actions.
const (
	MsgEmptyName        = "Event name must not be null or empty!"
	MsgSizeNotInteger   = "Event size must be an integer!"
	MsgSizeNotPositive  = "Event size must be greater than zero!"
	MsgNoSuchVenue      = "Please choose a venue from the venue list!"
	MsgDuplicateEvent   = "Same event already allocated!"
	MsgDuplicateVenue   = "Venue already allocated!"
	MsgCapacityExceeded = "Event exceeds venue capacity"
	MsgUnsafeTraffic    = "Traffic from this allocation exceeds capacity!"
)

const help = `commands:
  venues                              list venues
  allocate <venue#> <size> <name...>  allocate an event to a venue
  check <venue#> <size> <name...>     preview whether an allocation keeps traffic safe
  remove <size> <name...>             remove an allocation
  allocations                         list allocations
  traffic                             show current corridor traffic
  help                                show this help
  quit                                end the session
`

// Shell executes commands against one allocator and writes results to out.
type Shell struct {
	alloc  *allocator.Allocator
	out    io.Writer
	logger *zap.Logger
}

// New returns a Shell writing to out. A nil logger disables logging.
func New(a *allocator.Allocator, out io.Writer, logger *zap.Logger) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Shell{alloc: a, out: out, logger: logger}
}

// Run executes every line of in until EOF or a quit command.
func (s *Shell) Run(in io.Reader) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if s.Exec(sc.Text()) {
			return nil
		}
	}

	return sc.Err()
}

// Exec runs a single command line and reports whether the session should end.
func (s *Shell) Exec(line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch cmd, args := strings.ToLower(fields[0]), fields[1:]; cmd {
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprint(s.out, help)
	case "venues":
		s.listVenues()
	case "allocate":
		s.allocate(args, false)
	case "check":
		s.allocate(args, true)
	case "remove":
		s.remove(args)
	case "allocations":
		s.listAllocations()
	case "traffic":
		s.showTraffic()
	default:
		s.fail(fmt.Sprintf("unknown command %q (try help)", cmd))
	}

	return false
}

func (s *Shell) listVenues() {
	venues := s.alloc.Venues()
	if len(venues) == 0 {
		fmt.Fprintln(s.out, "(no venues)")
		return
	}
	for i, v := range venues {
		fmt.Fprintf(s.out, "%d. %s (%d)\n", i+1, v.Name(), v.Capacity())
	}
}

func (s *Shell) listAllocations() {
	allocs := s.alloc.Allocations()
	if len(allocs) == 0 {
		fmt.Fprintln(s.out, "(no allocations)")
		return
	}
	for _, a := range allocs {
		fmt.Fprintln(s.out, a)
	}
}

func (s *Shell) showTraffic() {
	t := s.alloc.Traffic().String()
	if t == "" {
		fmt.Fprintln(s.out, "(no traffic)")
		return
	}
	fmt.Fprint(s.out, t)
}

// allocate handles "allocate|check <venue#> <size> <name...>".
func (s *Shell) allocate(args []string, dryRun bool) {
	if len(args) < 1 {
		s.fail(MsgNoSuchVenue)
		return
	}
	venue, ok := s.venueAt(args[0])
	if !ok {
		s.fail(MsgNoSuchVenue)
		return
	}
	event, ok := s.event(args[1:])
	if !ok {
		return
	}

	if dryRun {
		if s.alloc.CheckSafety(event, venue) {
			fmt.Fprintln(s.out, "safe")
		} else {
			fmt.Fprintln(s.out, "unsafe")
		}
		return
	}

	if err := s.alloc.Allocate(event, venue); err != nil {
		s.logger.Debug("allocation refused", zap.Error(err))
		s.fail(message(err))
		return
	}
	fmt.Fprintf(s.out, "allocated %s\n", allocator.Allocation{Event: event, Venue: venue})
}

// remove handles "remove <size> <name...>".
func (s *Shell) remove(args []string) {
	if len(args) < 2 {
		s.fail("usage: remove <size> <name...>")
		return
	}
	size, err := strconv.Atoi(args[0])
	if err != nil {
		s.fail(MsgSizeNotInteger)
		return
	}
	name := strings.Join(args[1:], " ")
	if n := s.alloc.Remove(name, size); n > 0 {
		fmt.Fprintf(s.out, "removed %d allocation(s)\n", n)
		return
	}
	fmt.Fprintln(s.out, "no matching allocation")
}

// event parses "<size> <name...>" with the checks the user sees first:
// the name, then the size.
func (s *Shell) event(args []string) (core.Event, bool) {
	var name string
	if len(args) > 1 {
		name = strings.Join(args[1:], " ")
	}
	if name == "" {
		s.fail(MsgEmptyName)
		return core.Event{}, false
	}
	size, err := strconv.Atoi(args[0])
	if err != nil {
		s.fail(MsgSizeNotInteger)
		return core.Event{}, false
	}
	if size <= 0 {
		s.fail(MsgSizeNotPositive)
		return core.Event{}, false
	}
	e, err := s.alloc.CreateEvent(name, size)
	if err != nil {
		s.fail(err.Error())
		return core.Event{}, false
	}

	return e, true
}

func (s *Shell) venueAt(arg string) (core.Venue, bool) {
	venues := s.alloc.Venues()
	i, err := strconv.Atoi(arg)
	if err != nil || i < 1 || i > len(venues) {
		return core.Venue{}, false
	}

	return venues[i-1], true
}

func (s *Shell) fail(msg string) {
	fmt.Fprintf(s.out, "error: %s\n", msg)
}

// message maps allocation errors to the text shown to the user.
func message(err error) string {
	switch {
	case errors.Is(err, allocator.ErrDuplicateEvent):
		return MsgDuplicateEvent
	case errors.Is(err, allocator.ErrDuplicateVenue):
		return MsgDuplicateVenue
	case errors.Is(err, allocator.ErrCapacityExceeded):
		return MsgCapacityExceeded
	case errors.Is(err, allocator.ErrUnsafeTraffic):
		return MsgUnsafeTraffic
	case errors.Is(err, allocator.ErrUnknownVenue):
		return MsgNoSuchVenue
	default:
		return err.Error()
	}
}
