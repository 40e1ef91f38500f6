package injection

import "time"

// Schedule is the composed timeline for a test run: an ordered list of
// profiles folded into one lazy offset sequence, plus the total user count
// computed without ever forcing that sequence.
//
// A schedule is immutable. Offsets and Users hand out fresh cursors, so
// re-consuming a schedule is a cheap recomputation rather than a replay of
// cached state.
type Schedule struct {
	profiles   []Profile
	totalUsers int
	duration   time.Duration
}

// New composes an ordered list of profiles into a schedule. An empty list
// yields an empty schedule with zero users.
func New(profiles ...Profile) *Schedule {
	s := &Schedule{profiles: profiles}
	for _, p := range profiles {
		s.totalUsers += p.UserCount()
		s.duration += p.TotalDuration()
	}
	return s
}

// TotalUsers returns the sum of every profile's user count. The offset
// sequence yields exactly this many elements.
func (s *Schedule) TotalUsers() int { return s.totalUsers }

// TotalDuration returns the sum of every profile's duration.
func (s *Schedule) TotalDuration() time.Duration { return s.duration }

// Profiles returns the composed profiles in order.
func (s *Schedule) Profiles() []Profile { return s.profiles }

// Offsets returns a fresh stream over the full timeline.
//
// The chain is built iteratively from the last profile backward: each
// profile wraps the accumulated stream with its own Produce, so profile i's
// offsets all precede (or tie with) everything profile i+1 emits, and the
// combined sequence is globally non-decreasing. Building the chain is O(n)
// in the number of profiles; streaming holds O(1) state per profile cursor.
func (s *Schedule) Offsets() Stream {
	out := Empty()
	for i := len(s.profiles) - 1; i >= 0; i-- {
		out = s.profiles[i].Produce(out)
	}
	return out
}

// ScheduledUser pairs a virtual-user index with its start offset.
type ScheduledUser struct {
	Index  int
	Offset time.Duration
}

// UserStream is a cursor over (index, offset) pairs in injection order.
// This is the shape the launcher consumes: indexes are dense from 0 and
// offsets are non-decreasing.
type UserStream struct {
	offsets Stream
	next    int
}

// Users returns a fresh cursor over (index, offset) pairs.
func (s *Schedule) Users() *UserStream {
	return &UserStream{offsets: s.Offsets()}
}

// Next returns the next scheduled user, or false when the schedule is
// exhausted.
func (u *UserStream) Next() (ScheduledUser, bool) {
	off, ok := u.offsets()
	if !ok {
		return ScheduledUser{}, false
	}
	user := ScheduledUser{Index: u.next, Offset: off}
	u.next++
	return user, true
}
