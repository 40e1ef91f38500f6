package injection

import "time"

// Idle injects nobody and pushes everything after it forward by its
// duration. Used to model quiet periods between injection phases.
type Idle struct {
	duration time.Duration
}

// NewIdle creates an idle gap.
func NewIdle(duration time.Duration) (*Idle, error) {
	if duration < 0 {
		return nil, invalidParam("duration", "must not be negative")
	}
	return &Idle{duration: duration}, nil
}

// Kind returns the shape tag.
func (i *Idle) Kind() Kind { return KindIdle }

// UserCount is always zero for an idle gap.
func (i *Idle) UserCount() int { return 0 }

// TotalDuration returns the gap length.
func (i *Idle) TotalDuration() time.Duration { return i.duration }

// Produce yields nothing of its own; the continuation is shifted by the
// gap length.
func (i *Idle) Produce(next Stream) Stream {
	return shifted(next, i.duration)
}

var _ Profile = (*Idle)(nil)
