package injection

import "time"

// Burst injects a fixed number of users simultaneously at offset zero.
//
// It occupies no timeline: whatever follows a burst starts at the same
// instant the burst fires.
type Burst struct {
	users int
}

// NewBurst creates a burst of users. The count must be strictly positive.
func NewBurst(users int) (*Burst, error) {
	if users <= 0 {
		return nil, invalidParam("users", "must be strictly positive")
	}
	return &Burst{users: users}, nil
}

// Kind returns the shape tag.
func (b *Burst) Kind() Kind { return KindBurst }

// UserCount returns the burst size.
func (b *Burst) UserCount() int { return b.users }

// TotalDuration is always zero for a burst.
func (b *Burst) TotalDuration() time.Duration { return 0 }

// Produce yields UserCount copies of offset zero, then the continuation
// unshifted.
func (b *Burst) Produce(next Stream) Stream {
	emitted := 0
	return func() (time.Duration, bool) {
		if emitted < b.users {
			emitted++
			return 0, true
		}
		return next()
	}
}

var _ Profile = (*Burst)(nil)
