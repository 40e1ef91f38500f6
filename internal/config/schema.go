// Package config parses and validates scenario files describing injection
// profiles.
package config

import (
	"time"
)

// ScenarioConfig is the root of a scenario file.
//
// Example YAML:
//
//	name: "Checkout rush"
//	profiles:
//	  - type: burst
//	    users: 50
//	  - type: ramp
//	    users: 200
//	    duration: 2m
//	  - type: idle
//	    duration: 30s
//	  - type: constant-rate
//	    rate: 10
//	    duration: 5m
type ScenarioConfig struct {
	// Name of the scenario (for reporting)
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Description of the scenario (optional)
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Profiles is the ordered list of injection profiles to compose
	Profiles []ProfileConfig `json:"profiles" yaml:"profiles"`
}

// ProfileConfig describes a single injection profile.
//
// Which fields apply depends on the type:
//   - burst: users
//   - ramp: users, duration
//   - constant-rate: rate, duration
//   - idle: duration
//   - ramp-rate: startRate, endRate, duration
//   - stepped-ramps: totalUsers, usersPerRamp, rampDuration, pauseDuration
type ProfileConfig struct {
	// Type is the profile shape
	Type string `json:"type" yaml:"type"`

	// Users is the user count (burst, ramp)
	Users int `json:"users,omitempty" yaml:"users,omitempty"`

	// Duration of the profile (ramp, constant-rate, idle, ramp-rate)
	Duration Duration `json:"duration,omitempty" yaml:"duration,omitempty"`

	// Rate is users per second (constant-rate)
	Rate float64 `json:"rate,omitempty" yaml:"rate,omitempty"`

	// StartRate and EndRate are users per second (ramp-rate)
	StartRate float64 `json:"startRate,omitempty" yaml:"startRate,omitempty"`
	EndRate   float64 `json:"endRate,omitempty" yaml:"endRate,omitempty"`

	// TotalUsers and UsersPerRamp size stepped ramps
	TotalUsers   int `json:"totalUsers,omitempty" yaml:"totalUsers,omitempty"`
	UsersPerRamp int `json:"usersPerRamp,omitempty" yaml:"usersPerRamp,omitempty"`

	// RampDuration and PauseDuration shape stepped ramps
	RampDuration  Duration `json:"rampDuration,omitempty" yaml:"rampDuration,omitempty"`
	PauseDuration Duration `json:"pauseDuration,omitempty" yaml:"pauseDuration,omitempty"`
}

// Duration is a time.Duration that unmarshals from JSON/YAML strings like
// "30s" or "2m".
type Duration time.Duration

// GetDuration returns the duration or a default if unset.
func (d Duration) GetDuration(defaultValue time.Duration) time.Duration {
	if d == 0 {
		return defaultValue
	}
	return time.Duration(d)
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Duration(d).String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	if s == "" || s == "null" {
		*d = 0
		return nil
	}

	dur, err := ParseDurationString(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	if s == "" {
		*d = 0
		return nil
	}

	dur, err := ParseDurationString(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// String returns the duration as a string.
func (d Duration) String() string {
	return time.Duration(d).String()
}
