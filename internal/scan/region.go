// Package scan restricts a line sequence to the region between a start and
// an end marker.
//
// Regions are matched against semi-structured snapshots of upstream source
// files. A change in the upstream layout silently moves or removes a
// region; that brittleness is accepted and callers should treat an empty
// region as "nothing found", not as an error.
package scan

import (
	"iter"
	"regexp"
	"strings"
)

// Region describes a block of lines bounded by two markers. Markers are
// matched against trimmed lines with regexp semantics, so anchoring is up to
// the pattern.
type Region struct {
	Start *regexp.Regexp
	End   *regexp.Regexp
}

// Lines yields the trimmed, non-empty lines strictly between the first line
// matching Start and the next line matching End. Scanning stops for good at
// that end marker. If End never matches, every line after Start is yielded.
// If Start never matches, nothing is yielded.
//
// The sequence is lazy and holds its state per iteration, so it can be
// ranged over more than once when lines can.
func (r Region) Lines(lines iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		active := false

		for line := range lines {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			if !active {
				active = r.Start.MatchString(line)
				continue
			}

			if r.End.MatchString(line) {
				return
			}

			if !yield(line) {
				return
			}
		}
	}
}
