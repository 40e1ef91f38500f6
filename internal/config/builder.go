package config

import (
	"fmt"
	"time"

	"github.com/wesleyorama2/surge/internal/injection"
)

// BuildSchedule turns a validated scenario into a composed schedule.
//
// Profile construction re-checks parameters; a constructor failure is
// wrapped with the profile's position so the caller can point at the
// offending entry.
func BuildSchedule(cfg *ScenarioConfig) (*injection.Schedule, error) {
	profiles := make([]injection.Profile, 0, len(cfg.Profiles))

	for i, p := range cfg.Profiles {
		profile, err := buildProfile(&p)
		if err != nil {
			return nil, fmt.Errorf("profiles[%d] (%s): %w", i, p.Type, err)
		}
		profiles = append(profiles, profile)
	}

	return injection.New(profiles...), nil
}

// buildProfile maps one profile config onto its injection constructor.
func buildProfile(p *ProfileConfig) (injection.Profile, error) {
	switch p.Type {
	case "burst":
		return injection.NewBurst(p.Users)

	case "ramp":
		return injection.NewRamp(p.Users, time.Duration(p.Duration))

	case "constant-rate":
		return injection.NewConstantRate(p.Rate, time.Duration(p.Duration))

	case "idle":
		return injection.NewIdle(time.Duration(p.Duration))

	case "ramp-rate":
		return injection.NewRampRate(p.StartRate, p.EndRate, time.Duration(p.Duration))

	case "stepped-ramps":
		return injection.NewSteppedRamps(
			p.TotalUsers,
			p.UsersPerRamp,
			time.Duration(p.RampDuration),
			time.Duration(p.PauseDuration),
		)

	default:
		return nil, fmt.Errorf("unknown profile type: %s", p.Type)
	}
}
