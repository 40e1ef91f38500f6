package injection

import (
	"fmt"
	"time"
)

// Kind identifies the shape of an injection profile.
type Kind string

const (
	// KindBurst injects all users at once at offset zero.
	KindBurst Kind = "burst"

	// KindRamp spreads users evenly across a duration.
	KindRamp Kind = "ramp"

	// KindConstantRate injects users at a fixed rate for a duration.
	KindConstantRate Kind = "constant-rate"

	// KindIdle injects nobody and delays everything that follows.
	KindIdle Kind = "idle"

	// KindRampRate ramps the injection rate linearly between two values.
	KindRampRate Kind = "ramp-rate"

	// KindSteppedRamps repeats fixed-size ramps separated by pauses.
	KindSteppedRamps Kind = "stepped-ramps"
)

// Profile is a single injection shape.
//
// A profile contributes a fixed number of users and a fixed amount of
// timeline. UserCount is a pure function of the profile's parameters; it is
// never derived by materializing the offset sequence.
type Profile interface {
	// Kind returns the shape tag.
	Kind() Kind

	// UserCount returns the number of users this profile injects on its own.
	UserCount() int

	// TotalDuration returns the stretch of timeline this profile occupies.
	// Profiles that follow it in a chain start after this duration.
	TotalDuration() time.Duration

	// Produce returns a stream yielding this profile's own offsets
	// (0-based, measured from the profile's start) followed by every
	// element of next shifted forward by TotalDuration. The continuation
	// is pulled lazily, one element per call.
	Produce(next Stream) Stream
}

// InvalidParameterError reports a profile parameter that violates its
// constraint. It is raised at construction time; a validly constructed
// profile never fails while producing offsets.
type InvalidParameterError struct {
	Param      string
	Constraint string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter '%s': %s", e.Param, e.Constraint)
}

func invalidParam(param, constraint string) error {
	return &InvalidParameterError{Param: param, Constraint: constraint}
}
