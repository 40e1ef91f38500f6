// Package injection turns a declarative list of injection profiles into a
// lazy, ordered timeline of virtual-user start offsets.
//
// Each profile describes one intensity shape (burst, ramp, constant rate,
// idle gap, varying-rate ramp, stepped ramps). Profiles compose into a single
// non-decreasing sequence of offsets relative to simulation start. The
// sequence is produced one element at a time so a schedule with millions of
// users never holds more than constant state in memory.
package injection

import "time"

// Stream is a pull-based lazy sequence of start offsets.
//
// Each call yields the next offset and true, or zero and false once the
// sequence is exhausted. Pulling a prefix never forces the rest of the
// sequence to be computed.
type Stream func() (time.Duration, bool)

// Empty returns a stream that yields nothing.
func Empty() Stream {
	return func() (time.Duration, bool) { return 0, false }
}

// shifted returns next with every offset moved forward by d.
func shifted(next Stream, d time.Duration) Stream {
	if d == 0 {
		return next
	}
	return func() (time.Duration, bool) {
		off, ok := next()
		if !ok {
			return 0, false
		}
		return off + d, true
	}
}

// Drain consumes the stream and returns every remaining offset.
//
// Intended for tests and small previews; it defeats laziness by design and
// must not be used on schedules sized beyond available memory.
func Drain(s Stream) []time.Duration {
	var out []time.Duration
	for {
		off, ok := s()
		if !ok {
			return out
		}
		out = append(out, off)
	}
}

// Take consumes at most n offsets from the stream.
func Take(s Stream, n int) []time.Duration {
	out := make([]time.Duration, 0, n)
	for len(out) < n {
		off, ok := s()
		if !ok {
			break
		}
		out = append(out, off)
	}
	return out
}
