package injection

import (
	"math"
	"time"
)

// RampRate injects users at a rate that moves linearly from a start rate to
// an end rate (users per second) over a duration.
//
// The total user count is the area under the rate line, rounded to the
// nearest integer: round((start+end)/2 * seconds). The k-th user's offset is
// the time t at which k users have been injected, i.e. the smallest
// non-negative root of
//
//	k = start*t + (end-start)/(2*seconds) * t^2
//
// solved with the quadratic formula. Equal start and end rates zero out the
// quadratic term, so that case uses the closed form t = k/start instead,
// which is the constant-rate solution.
type RampRate struct {
	startRate float64
	endRate   float64
	duration  time.Duration
	users     int
}

// NewRampRate creates a varying-rate ramp. Both rates must be strictly
// positive.
func NewRampRate(startRate, endRate float64, duration time.Duration) (*RampRate, error) {
	if startRate <= 0 {
		return nil, invalidParam("startRate", "must be strictly positive")
	}
	if endRate <= 0 {
		return nil, invalidParam("endRate", "must be strictly positive")
	}
	if duration <= 0 {
		return nil, invalidParam("duration", "must be strictly positive")
	}
	users := int(math.Round((startRate + endRate) / 2 * duration.Seconds()))
	return &RampRate{
		startRate: startRate,
		endRate:   endRate,
		duration:  duration,
		users:     users,
	}, nil
}

// Kind returns the shape tag.
func (r *RampRate) Kind() Kind { return KindRampRate }

// UserCount returns round((startRate+endRate)/2 * duration in seconds).
func (r *RampRate) UserCount() int { return r.users }

// TotalDuration returns the ramp duration.
func (r *RampRate) TotalDuration() time.Duration { return r.duration }

// offsetAt returns the offset of the k-th user (0-based) in seconds.
func (r *RampRate) offsetAt(k int) float64 {
	if r.startRate == r.endRate {
		// Quadratic coefficient is zero; fall back to the constant-rate
		// closed form.
		return float64(k) / r.startRate
	}
	a := (r.endRate - r.startRate) / (2 * r.duration.Seconds())
	b := r.startRate
	// Smallest non-negative root of a*t^2 + b*t - k = 0.
	return (-b + math.Sqrt(b*b+4*a*float64(k))) / (2 * a)
}

// Produce yields the solved offsets, then the continuation shifted by the
// ramp duration.
func (r *RampRate) Produce(next Stream) Stream {
	k := 0
	rest := shifted(next, r.duration)
	return func() (time.Duration, bool) {
		if k < r.users {
			off := time.Duration(r.offsetAt(k) * float64(time.Second))
			k++
			return off, true
		}
		return rest()
	}
}

var _ Profile = (*RampRate)(nil)
