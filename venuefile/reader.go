// SPDX-License-Identifier: MIT
//
// File: reader.go
// Role: Entry points that turn a venue description source into []core.Venue.
// Policy:
//   - I/O failures wrap ErrIO; grammar and semantic failures are *FormatError.
//   - Either the full venue list or an error is returned, never both.

package venuefile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/venueplan/core"
)

// ReadFile parses the venue description stored at path.
func ReadFile(path string, opts ...Option) ([]core.Venue, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	venues, err := parse(f, o)
	if err != nil {
		o.logger.Warn("venue file rejected", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	o.logger.Info("venues loaded", zap.String("path", path), zap.Int("count", len(venues)))

	return venues, nil
}

// Parse reads a venue description from r and returns the venues in the
// order they appear. Empty input yields an empty, non-nil list.
func Parse(r io.Reader, opts ...Option) ([]core.Venue, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return parse(r, o)
}

func parse(r io.Reader, o options) ([]core.Venue, error) {
	sc := bufio.NewScanner(r)
	// the scanner's limit is max(cap(buf), maxLineLength)
	sc.Buffer(make([]byte, 0, min(4096, o.maxLineLength)), o.maxLineLength)

	p := newParser(o.logger)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSuffix(sc.Text(), "\r")
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if err := p.feed(lineNo, line); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrIO, lineNo+1, err)
	}
	if err := p.finish(lineNo); err != nil {
		return nil, err
	}

	return p.venues, nil
}
