package screening

import (
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"
)

const missingSkillsName = "missing_skills"

type toggle struct {
	disabled bool
	reason   string
}

func (t *toggle) Disable(reason string) {
	t.disabled = true
	t.reason = reason
}

func (t *toggle) IsEnabled() bool { return !t.disabled }

func (t *toggle) status(name string, details map[string]string) Status {
	return Status{Name: name, Enabled: !t.disabled, Reason: t.reason, Details: details}
}

type minimumMatchFilter struct {
	toggle
	minimum int
}

// NewMinimumMatch creates a filter that drops applicants below a match percentage.
func NewMinimumMatch() Filter {
	return &minimumMatchFilter{}
}

func (f *minimumMatchFilter) Name() string { return "minimum_match" }

func (f *minimumMatchFilter) Validate(cfg *Config) error {
	f.minimum = 0
	if cfg != nil {
		f.minimum = cfg.MinimumMatch
	}
	if f.minimum < 0 || f.minimum > 100 {
		return errors.New("minimum match must be between 0 and 100")
	}
	return nil
}

func (f *minimumMatchFilter) Apply(_ context.Context, deps Deps, a *Applicants) (*Applicants, Step, error) {
	initial := a.Len()
	if f.minimum == 0 {
		return a, Step{Initial: initial, Left: initial}, nil
	}

	excluded := a.Exclude(func(item *Applicant) bool { return percentage(item) >= f.minimum })
	if len(excluded) > 0 {
		deps.Logger.Info("excluding applicants below minimum match",
			zap.Int("minimum_match", f.minimum),
			zap.Strings("excluded_applicants", excluded),
			zap.Int("applicants_left", a.Len()),
		)
	}

	return a, Step{Initial: initial, Dropped: len(excluded), Left: a.Len()}, nil
}

func (f *minimumMatchFilter) Status() Status {
	return f.status(f.Name(), map[string]string{"minimum_match": strconv.Itoa(f.minimum)})
}

type missingSkillsFilter struct {
	toggle
	max int
}

// NewMissingSkills creates a filter that drops applicants missing too many required skills.
func NewMissingSkills() Filter {
	return &missingSkillsFilter{}
}

func (f *missingSkillsFilter) Name() string { return missingSkillsName }

func (f *missingSkillsFilter) Validate(cfg *Config) error {
	f.max = 0
	if cfg != nil {
		f.max = cfg.MaxMissingSkills
	}
	if f.max < 0 {
		return errors.New("max missing skills must not be negative")
	}
	return nil
}

func (f *missingSkillsFilter) Apply(_ context.Context, deps Deps, a *Applicants) (*Applicants, Step, error) {
	initial := a.Len()
	if f.max == 0 {
		return a, Step{Initial: initial, Left: initial}, nil
	}

	excluded := a.Exclude(func(item *Applicant) bool { return missing(item) <= f.max })
	if len(excluded) > 0 {
		deps.Logger.Info("excluding applicants missing required skills",
			zap.Int("max_missing_skills", f.max),
			zap.Strings("excluded_applicants", excluded),
			zap.Int("applicants_left", a.Len()),
		)
	}

	return a, Step{Initial: initial, Dropped: len(excluded), Left: a.Len()}, nil
}

func (f *missingSkillsFilter) Status() Status {
	return f.status(f.Name(), map[string]string{"max_missing_skills": strconv.Itoa(f.max)})
}

type topFilter struct {
	toggle
	top int
}

// NewTop creates a filter that sorts applicants by match and keeps the best ones.
func NewTop() Filter {
	return &topFilter{}
}

func (f *topFilter) Name() string { return "top" }

func (f *topFilter) Validate(cfg *Config) error {
	f.top = 0
	if cfg != nil {
		f.top = cfg.Top
	}
	if f.top < 0 {
		return errors.New("top must not be negative")
	}
	return nil
}

func (f *topFilter) Apply(_ context.Context, deps Deps, a *Applicants) (*Applicants, Step, error) {
	initial := a.Len()
	a.SortByMatch()
	if f.top == 0 || initial <= f.top {
		return a, Step{Initial: initial, Left: initial}, nil
	}

	dropped := a.Items[f.top:]
	excluded := make([]string, 0, len(dropped))
	for _, item := range dropped {
		excluded = append(excluded, item.ID)
	}
	a.Items = a.Items[:f.top]

	deps.Logger.Debug("keeping best applicants",
		zap.Int("top", f.top),
		zap.Strings("excluded_applicants", excluded),
	)

	return a, Step{Initial: initial, Dropped: len(excluded), Left: a.Len()}, nil
}

func (f *topFilter) Status() Status {
	details := map[string]string{}
	if f.top > 0 {
		details["top"] = strconv.Itoa(f.top)
	}
	return f.status(f.Name(), details)
}
