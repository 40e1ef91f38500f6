package injection

import (
	"testing"
	"time"
)

func TestRampRate_UserCount(t *testing.T) {
	tests := []struct {
		name      string
		startRate float64
		endRate   float64
		duration  time.Duration
		want      int
	}{
		{"increasing", 1.0, 3.0, 10 * time.Second, 20},
		{"decreasing", 4.0, 2.0, 10 * time.Second, 30},
		{"equal rates", 2.0, 2.0, 10 * time.Second, 20},
		{"rounds to nearest", 1.0, 2.0, 5 * time.Second, 8}, // 7.5 rounds up
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRampRate(tt.startRate, tt.endRate, tt.duration)
			if err != nil {
				t.Fatalf("NewRampRate() error = %v, want nil", err)
			}
			if r.UserCount() != tt.want {
				t.Errorf("UserCount() = %d, want %d", r.UserCount(), tt.want)
			}
		})
	}
}

func TestRampRate_Produce(t *testing.T) {
	// 1 -> 3 users/sec over 10s: 20 users total. Early arrivals are spaced
	// near 1s apart, late arrivals near 1/3s apart.
	r, err := NewRampRate(1.0, 3.0, 10*time.Second)
	if err != nil {
		t.Fatalf("NewRampRate() error = %v, want nil", err)
	}

	got := Drain(r.Produce(Empty()))
	if len(got) != r.UserCount() {
		t.Fatalf("Produce() yielded %d offsets, want %d", len(got), r.UserCount())
	}

	if got[0] != 0 {
		t.Errorf("first offset = %v, want 0", got[0])
	}
	for i := 1; i < len(got); i++ {
		if got[i] < got[i-1] {
			t.Fatalf("offsets not monotonic: offset[%d]=%v < offset[%d]=%v", i, got[i], i-1, got[i-1])
		}
	}
	if got[len(got)-1] > 10*time.Second {
		t.Errorf("last offset = %v, want <= 10s", got[len(got)-1])
	}

	// Gaps must shrink as the rate climbs.
	firstGap := got[1] - got[0]
	lastGap := got[len(got)-1] - got[len(got)-2]
	if lastGap >= firstGap {
		t.Errorf("gaps should shrink: first=%v last=%v", firstGap, lastGap)
	}
}

func TestRampRate_EqualRatesMatchesConstantRate(t *testing.T) {
	// The quadratic coefficient vanishes when both rates match; the closed
	// form must produce the constant-rate spacing t = k/rate.
	r, err := NewRampRate(2.0, 2.0, 10*time.Second)
	if err != nil {
		t.Fatalf("NewRampRate() error = %v, want nil", err)
	}

	got := Drain(r.Produce(Empty()))
	if len(got) != 20 {
		t.Fatalf("Produce() yielded %d offsets, want 20", len(got))
	}
	for k, off := range got {
		want := time.Duration(float64(k) / 2.0 * float64(time.Second))
		if !durationsClose(off, want) {
			t.Errorf("offset[%d] = %v, want ~%v", k, off, want)
		}
	}
}

func TestRampRate_OffsetsSolveTheRateIntegral(t *testing.T) {
	// At each produced offset t, the cumulative injected count
	// r1*t + (r2-r1)/(2*D)*t^2 must equal the user's index.
	r, err := NewRampRate(1.0, 5.0, 20*time.Second)
	if err != nil {
		t.Fatalf("NewRampRate() error = %v, want nil", err)
	}

	got := Drain(r.Produce(Empty()))
	for k, off := range got {
		tSec := off.Seconds()
		cum := 1.0*tSec + (5.0-1.0)/(2*20.0)*tSec*tSec
		if diff := cum - float64(k); diff > 0.01 || diff < -0.01 {
			t.Errorf("offset[%d]=%v gives cumulative count %.4f, want %d", k, off, cum, k)
		}
	}
}

func TestRampRate_DecreasingRate(t *testing.T) {
	r, err := NewRampRate(5.0, 1.0, 10*time.Second)
	if err != nil {
		t.Fatalf("NewRampRate() error = %v, want nil", err)
	}

	got := Drain(r.Produce(Empty()))
	if len(got) != 30 {
		t.Fatalf("Produce() yielded %d offsets, want 30", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i] < got[i-1] {
			t.Fatalf("offsets not monotonic at %d: %v < %v", i, got[i], got[i-1])
		}
	}

	// Gaps must grow as the rate falls.
	firstGap := got[1] - got[0]
	lastGap := got[len(got)-1] - got[len(got)-2]
	if lastGap <= firstGap {
		t.Errorf("gaps should grow: first=%v last=%v", firstGap, lastGap)
	}
}
