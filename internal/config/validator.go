package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []*ValidationError
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Add adds an error to the collection.
func (e *ValidationErrors) Add(field, message string) {
	e.Errors = append(e.Errors, &ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are any errors.
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// Validate validates the scenario configuration.
//
// Returns nil if valid, or a ValidationErrors containing every violation.
func (c *ScenarioConfig) Validate() error {
	errs := &ValidationErrors{}

	if len(c.Profiles) == 0 {
		errs.Add("profiles", "at least one profile is required")
	}

	for i, p := range c.Profiles {
		validateProfile(fmt.Sprintf("profiles[%d]", i), &p, errs)
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validateProfile validates a single profile configuration.
func validateProfile(prefix string, p *ProfileConfig, errs *ValidationErrors) {
	switch p.Type {
	case "burst":
		if p.Users <= 0 {
			errs.Add(prefix+".users", "users must be strictly positive")
		}

	case "ramp":
		if p.Users <= 0 {
			errs.Add(prefix+".users", "users must be strictly positive")
		}
		if p.Duration <= 0 {
			errs.Add(prefix+".duration", "duration is required for ramp profiles")
		}

	case "constant-rate":
		if p.Rate <= 0 {
			errs.Add(prefix+".rate", "rate must be strictly positive")
		}
		if p.Duration <= 0 {
			errs.Add(prefix+".duration", "duration is required for constant-rate profiles")
		}

	case "idle":
		if p.Duration <= 0 {
			errs.Add(prefix+".duration", "duration is required for idle profiles")
		}

	case "ramp-rate":
		if p.StartRate <= 0 {
			errs.Add(prefix+".startRate", "startRate must be strictly positive")
		}
		if p.EndRate <= 0 {
			errs.Add(prefix+".endRate", "endRate must be strictly positive")
		}
		if p.Duration <= 0 {
			errs.Add(prefix+".duration", "duration is required for ramp-rate profiles")
		}

	case "stepped-ramps":
		if p.TotalUsers <= 0 {
			errs.Add(prefix+".totalUsers", "totalUsers must be strictly positive")
		}
		if p.UsersPerRamp <= 0 {
			errs.Add(prefix+".usersPerRamp", "usersPerRamp must be strictly positive")
		}
		if p.RampDuration <= 0 {
			errs.Add(prefix+".rampDuration", "rampDuration is required for stepped-ramps profiles")
		}
		if p.PauseDuration < 0 {
			errs.Add(prefix+".pauseDuration", "pauseDuration must not be negative")
		}

	case "":
		errs.Add(prefix+".type", "profile type is required")

	default:
		errs.Add(prefix+".type", fmt.Sprintf("unknown profile type: %s", p.Type))
	}
}
