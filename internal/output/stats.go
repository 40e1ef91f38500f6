package output

import (
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	"github.com/wesleyorama2/surge/internal/injection"
)

// ArrivalStats summarizes the arrival pattern of a schedule: inter-arrival
// gap percentiles and the busiest one-second window.
type ArrivalStats struct {
	TotalUsers    int
	TotalDuration time.Duration
	GapP50        time.Duration
	GapP90        time.Duration
	GapP99        time.Duration
	PeakPerSecond int64
}

// Up to an hour between arrivals, tracked at microsecond resolution.
const maxTrackableGapMicros = int64(time.Hour / time.Microsecond)

// CollectStats streams the schedule once and aggregates arrival statistics.
//
// Gaps between consecutive arrivals are recorded into an HDR histogram at
// microsecond resolution; per-second arrival counts are tracked with O(1)
// state. The schedule itself is never materialized.
func CollectStats(s *injection.Schedule) *ArrivalStats {
	stats := &ArrivalStats{
		TotalUsers:    s.TotalUsers(),
		TotalDuration: s.TotalDuration(),
	}
	if s.TotalUsers() == 0 {
		return stats
	}

	hist := hdrhistogram.New(1, maxTrackableGapMicros, 3)

	var (
		prev       time.Duration
		first      = true
		second     int64
		inSecond   int64
		peakSecond int64
	)

	offsets := s.Offsets()
	for {
		off, ok := offsets()
		if !ok {
			break
		}

		if !first {
			gap := (off - prev).Microseconds()
			if gap > maxTrackableGapMicros {
				gap = maxTrackableGapMicros
			}
			// RecordValue only fails above the histogram's upper bound,
			// which the clamp rules out.
			_ = hist.RecordValue(gap)
		}
		first = false
		prev = off

		sec := int64(off / time.Second)
		if sec != second {
			second = sec
			inSecond = 0
		}
		inSecond++
		if inSecond > peakSecond {
			peakSecond = inSecond
		}
	}

	stats.GapP50 = time.Duration(hist.ValueAtQuantile(50)) * time.Microsecond
	stats.GapP90 = time.Duration(hist.ValueAtQuantile(90)) * time.Microsecond
	stats.GapP99 = time.Duration(hist.ValueAtQuantile(99)) * time.Microsecond
	stats.PeakPerSecond = peakSecond

	return stats
}
