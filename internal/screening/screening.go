// Package screening narrows a batch of scored applicants down to a shortlist.
package screening

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Filter represents a single screening step applied to applicants.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate(cfg *Config) error
	Apply(ctx context.Context, deps Deps, a *Applicants) (*Applicants, Step, error)
}

// Deps aggregates dependencies shared across all screening steps.
type Deps struct {
	Logger *zap.Logger
}

// Step describes the result of executing a screening step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Config contains the thresholds consumed by the filters. Zero values turn a check off.
type Config struct {
	MinimumMatch     int `mapstructure:"minimum-match"`
	MaxMissingSkills int `mapstructure:"max-missing-skills"`
	Top              int `mapstructure:"top"`
}

// Status represents runtime information about a filter.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
	Details map[string]string
}

type statusProvider interface {
	Status() Status
}

// Default returns the standard pipeline in its fixed order.
func Default() []Filter {
	return []Filter{NewMinimumMatch(), NewMissingSkills(), NewTop()}
}

// DisableByName marks a filter with the provided name as disabled while keeping it in the list.
// It reports whether a filter with that name exists.
func DisableByName(steps []Filter, name, reason string) bool {
	found := false
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
			found = true
		}
	}
	return found
}

// DisableForDerivedSkills turns off missing_skills when the applicants were
// scored against skills guessed from the job description.
func DisableForDerivedSkills(steps []Filter, a *Applicants) bool {
	if a == nil {
		return false
	}
	for _, item := range a.Items {
		if item != nil && item.Result != nil && item.Result.RequiredSkillsDerived {
			return DisableByName(steps, missingSkillsName, "required skills were derived from the job description")
		}
	}
	return false
}

// Run validates every enabled filter and then applies them in order.
func Run(ctx context.Context, cfg *Config, deps Deps, steps []Filter, a *Applicants) (*Applicants, error) {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	for _, step := range steps {
		if !step.IsEnabled() {
			continue
		}
		if err := step.Validate(cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	for _, step := range steps {
		if !step.IsEnabled() {
			deps.Logger.Info("screening step disabled", zap.String("name", step.Name()))
			continue
		}

		next, info, err := step.Apply(ctx, deps, a)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		deps.Logger.Info("screening step",
			zap.String("name", step.Name()),
			zap.Int("initial", info.Initial),
			zap.Int("dropped", info.Dropped),
			zap.Int("left", info.Left),
		)

		a = next
	}

	return a, nil
}

// Describe returns status entries for the provided filters.
func Describe(steps []Filter) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}
