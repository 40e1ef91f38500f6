package injection

import (
	"math"
	"time"
)

// Ramp spreads a fixed number of users evenly across a duration.
//
// The first user starts at offset 0 and the last at exactly the ramp's
// duration (when more than one user is injected). A single-user ramp
// injects at offset 0 and still occupies its full duration.
type Ramp struct {
	users    int
	duration time.Duration
}

// NewRamp creates a linear ramp. The user count must be strictly positive.
func NewRamp(users int, duration time.Duration) (*Ramp, error) {
	if users <= 0 {
		return nil, invalidParam("users", "must be strictly positive")
	}
	if duration < 0 {
		return nil, invalidParam("duration", "must not be negative")
	}
	return &Ramp{users: users, duration: duration}, nil
}

// Kind returns the shape tag.
func (r *Ramp) Kind() Kind { return KindRamp }

// UserCount returns the number of users spread across the ramp.
func (r *Ramp) UserCount() int { return r.users }

// TotalDuration returns the ramp duration.
func (r *Ramp) TotalDuration() time.Duration { return r.duration }

// offsetAt returns the offset of the k-th user (0-based).
//
// Computed as duration*k/(users-1) in integer nanoseconds so the last
// user lands on the ramp's end with no accumulated floating-point drift.
// The division is split into quotient and remainder parts: a direct
// duration*k product overflows int64 for large ramps (a million users
// across hours), while k*rem stays below (users-1)^2.
func (r *Ramp) offsetAt(k int) time.Duration {
	if r.users == 1 {
		return 0
	}
	steps := int64(r.users - 1)
	q := int64(r.duration) / steps
	rem := int64(r.duration) % steps
	return time.Duration(q*int64(k) + int64(k)*rem/steps)
}

// Produce yields the evenly spaced offsets, then the continuation shifted
// by the ramp duration.
func (r *Ramp) Produce(next Stream) Stream {
	k := 0
	rest := shifted(next, r.duration)
	return func() (time.Duration, bool) {
		if k < r.users {
			off := r.offsetAt(k)
			k++
			return off, true
		}
		return rest()
	}
}

// ConstantRate injects users at a fixed rate (users per second) for a
// duration. The user count is derived eagerly as floor(seconds * rate);
// offset production delegates entirely to an equivalent linear ramp.
//
// A rate low enough to yield zero users over the duration degenerates to a
// pure time shift, like an idle gap.
type ConstantRate struct {
	rate     float64
	duration time.Duration
	ramp     *Ramp // nil when the derived count is zero
}

// NewConstantRate creates a constant-rate profile. The rate must be
// strictly positive.
func NewConstantRate(rate float64, duration time.Duration) (*ConstantRate, error) {
	if rate <= 0 {
		return nil, invalidParam("rate", "must be strictly positive")
	}
	if duration < 0 {
		return nil, invalidParam("duration", "must not be negative")
	}
	users := int(math.Floor(duration.Seconds() * rate))
	cr := &ConstantRate{rate: rate, duration: duration}
	if users > 0 {
		ramp, err := NewRamp(users, duration)
		if err != nil {
			return nil, err
		}
		cr.ramp = ramp
	}
	return cr, nil
}

// Kind returns the shape tag.
func (c *ConstantRate) Kind() Kind { return KindConstantRate }

// UserCount returns floor(duration in seconds * rate).
func (c *ConstantRate) UserCount() int {
	if c.ramp == nil {
		return 0
	}
	return c.ramp.UserCount()
}

// TotalDuration returns the profile duration.
func (c *ConstantRate) TotalDuration() time.Duration { return c.duration }

// Produce delegates to the underlying ramp, or to a bare shift when the
// derived user count is zero.
func (c *ConstantRate) Produce(next Stream) Stream {
	if c.ramp == nil {
		return shifted(next, c.duration)
	}
	return c.ramp.Produce(next)
}

var (
	_ Profile = (*Ramp)(nil)
	_ Profile = (*ConstantRate)(nil)
)
