package injection

import "time"

// SteppedRamps splits a total user count into repeated fixed-size ramps
// separated by pauses.
//
// The profile expands at construction into full ramps of usersPerRamp users,
// each followed by an idle gap of pauseDuration, and, when the total does
// not divide evenly, one final partial ramp whose duration is scaled so the
// per-user spacing matches the full ramps:
//
//	partialDuration = rampDuration / max(usersPerRamp-1, 1) * max(partial-1, 1)
//
// A remainder of zero contributes no partial ramp and no trailing pause.
type SteppedRamps struct {
	totalUsers    int
	usersPerRamp  int
	rampDuration  time.Duration
	pauseDuration time.Duration
	steps         []Profile
	duration      time.Duration
}

// NewSteppedRamps creates a stepped-ramps profile. Both user counts must be
// strictly positive.
func NewSteppedRamps(totalUsers, usersPerRamp int, rampDuration, pauseDuration time.Duration) (*SteppedRamps, error) {
	if totalUsers <= 0 {
		return nil, invalidParam("totalUsers", "must be strictly positive")
	}
	if usersPerRamp <= 0 {
		return nil, invalidParam("usersPerRamp", "must be strictly positive")
	}
	if rampDuration < 0 {
		return nil, invalidParam("rampDuration", "must not be negative")
	}
	if pauseDuration < 0 {
		return nil, invalidParam("pauseDuration", "must not be negative")
	}

	s := &SteppedRamps{
		totalUsers:    totalUsers,
		usersPerRamp:  usersPerRamp,
		rampDuration:  rampDuration,
		pauseDuration: pauseDuration,
	}

	fullRamps := totalUsers / usersPerRamp
	partial := totalUsers % usersPerRamp

	for i := 0; i < fullRamps; i++ {
		if i > 0 {
			if err := s.addGap(pauseDuration); err != nil {
				return nil, err
			}
		}
		ramp, err := NewRamp(usersPerRamp, rampDuration)
		if err != nil {
			return nil, err
		}
		s.addStep(ramp)
	}

	if partial > 0 {
		if fullRamps > 0 {
			if err := s.addGap(pauseDuration); err != nil {
				return nil, err
			}
		}
		// Scale the partial ramp so its per-user interval matches the
		// full ramps.
		interval := rampDuration / time.Duration(max(usersPerRamp-1, 1))
		partialDuration := interval * time.Duration(max(partial-1, 1))
		ramp, err := NewRamp(partial, partialDuration)
		if err != nil {
			return nil, err
		}
		s.addStep(ramp)
	}

	return s, nil
}

func (s *SteppedRamps) addStep(p Profile) {
	s.steps = append(s.steps, p)
	s.duration += p.TotalDuration()
}

func (s *SteppedRamps) addGap(d time.Duration) error {
	gap, err := NewIdle(d)
	if err != nil {
		return err
	}
	s.addStep(gap)
	return nil
}

// Kind returns the shape tag.
func (s *SteppedRamps) Kind() Kind { return KindSteppedRamps }

// UserCount returns the configured total.
func (s *SteppedRamps) UserCount() int { return s.totalUsers }

// TotalDuration sums the expanded ramps and gaps.
func (s *SteppedRamps) TotalDuration() time.Duration { return s.duration }

// Produce folds the expanded steps right-to-left over the continuation, the
// same composition a top-level profile chain uses.
func (s *SteppedRamps) Produce(next Stream) Stream {
	out := next
	for i := len(s.steps) - 1; i >= 0; i-- {
		out = s.steps[i].Produce(out)
	}
	return out
}

var _ Profile = (*SteppedRamps)(nil)
