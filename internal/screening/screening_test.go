package screening

import (
	"context"
	"reflect"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/job-matcher/internal/matching"
)

func applicant(id string, percentage int, missing ...string) *Applicant {
	return &Applicant{
		ID: id,
		Result: &matching.MatchResult{
			MatchPercentage: percentage,
			MissingSkills:   missing,
		},
	}
}

func batch() *Applicants {
	return &Applicants{Items: []*Applicant{
		applicant("c", 70, "kafka"),
		applicant("a", 90),
		applicant("d", 20, "go", "kafka", "docker"),
		applicant("b", 70),
		applicant("e", 55, "go", "kafka"),
	}}
}

func ids(a *Applicants) []string {
	out := make([]string, 0, a.Len())
	for _, item := range a.Items {
		out = append(out, item.ID)
	}
	return out
}

func TestRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     *Config
		disable string
		expect  []string
	}{
		{
			name:   "no thresholds only sorts",
			cfg:    &Config{},
			expect: []string{"a", "b", "c", "e", "d"},
		},
		{
			name:   "nil config",
			cfg:    nil,
			expect: []string{"a", "b", "c", "e", "d"},
		},
		{
			name:   "minimum match",
			cfg:    &Config{MinimumMatch: 60},
			expect: []string{"a", "b", "c"},
		},
		{
			name:   "missing skills",
			cfg:    &Config{MaxMissingSkills: 1},
			expect: []string{"a", "b", "c"},
		},
		{
			name:   "top with ties broken by id",
			cfg:    &Config{Top: 2},
			expect: []string{"a", "b"},
		},
		{
			name:   "all together",
			cfg:    &Config{MinimumMatch: 50, MaxMissingSkills: 2, Top: 3},
			expect: []string{"a", "b", "c"},
		},
		{
			name:    "disabled step is skipped",
			cfg:     &Config{MinimumMatch: 80, Top: 3},
			disable: "minimum_match",
			expect:  []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			steps := Default()
			if tt.disable != "" {
				DisableByName(steps, tt.disable, "test")
			}

			got, err := Run(context.Background(), tt.cfg, Deps{}, steps, batch())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(ids(got), tt.expect) {
				t.Fatalf("expected %v, got %v", tt.expect, ids(got))
			}
		})
	}
}

func TestRunValidation(t *testing.T) {
	t.Parallel()

	for _, cfg := range []*Config{{MinimumMatch: 101}, {MaxMissingSkills: -1}, {Top: -2}} {
		if _, err := Run(context.Background(), cfg, Deps{}, Default(), batch()); err == nil {
			t.Fatalf("expected validation error for %+v", cfg)
		}
	}
}

func TestRunLogsSteps(t *testing.T) {
	t.Parallel()

	core, observed := observer.New(zapcore.InfoLevel)
	steps := Default()
	DisableByName(steps, "top", "not needed")

	_, err := Run(context.Background(), &Config{MinimumMatch: 60}, Deps{Logger: zap.New(core)}, steps, batch())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stepLogs := observed.FilterMessage("screening step").All()
	if len(stepLogs) != 2 {
		t.Fatalf("expected 2 step logs, got %d", len(stepLogs))
	}
	ctx := stepLogs[0].ContextMap()
	if ctx["name"] != "minimum_match" || ctx["dropped"] != int64(2) || ctx["left"] != int64(3) {
		t.Fatalf("unexpected step log: %v", ctx)
	}
	if observed.FilterMessage("screening step disabled").Len() != 1 {
		t.Fatalf("expected disabled step to be logged")
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	steps := Default()
	DisableByName(steps, "missing_skills", "no required skills")
	if err := steps[2].Validate(&Config{Top: 5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	statuses := Describe(steps)
	if len(statuses) != 3 {
		t.Fatalf("expected 3 statuses, got %d", len(statuses))
	}
	if statuses[1].Enabled || statuses[1].Reason != "no required skills" {
		t.Fatalf("unexpected missing_skills status: %+v", statuses[1])
	}
	if statuses[2].Details["top"] != "5" {
		t.Fatalf("unexpected top status: %+v", statuses[2])
	}
}

func TestDisableByNameUnknown(t *testing.T) {
	t.Parallel()

	steps := Default()
	if DisableByName(steps, "salary", "no such step") {
		t.Fatalf("expected unknown step to be reported")
	}
	for _, status := range Describe(steps) {
		if !status.Enabled {
			t.Fatalf("expected %s to stay enabled", status.Name)
		}
	}
}

func TestDisableForDerivedSkills(t *testing.T) {
	t.Parallel()

	explicit := batch()
	steps := Default()
	if DisableForDerivedSkills(steps, explicit) {
		t.Fatalf("expected explicit requirements to keep missing_skills")
	}
	if !steps[1].IsEnabled() {
		t.Fatalf("expected missing_skills to stay enabled")
	}

	derived := batch()
	for _, item := range derived.Items {
		item.Result.RequiredSkillsDerived = true
	}
	if !DisableForDerivedSkills(steps, derived) {
		t.Fatalf("expected missing_skills to be disabled")
	}

	shortlist, err := Run(context.Background(), &Config{MaxMissingSkills: 1}, Deps{}, steps, derived)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shortlist.Len() != 5 {
		t.Fatalf("expected nobody dropped for missing skills, got %v", ids(shortlist))
	}
	if status := Describe(steps)[1]; status.Enabled || status.Reason == "" {
		t.Fatalf("unexpected missing_skills status: %+v", status)
	}
}

func TestApplicantsWithoutResult(t *testing.T) {
	t.Parallel()

	a := &Applicants{Items: []*Applicant{{ID: "x"}, applicant("y", 10)}}
	a.SortByMatch()
	if a.Items[0].ID != "y" {
		t.Fatalf("expected scored applicant first, got %s", a.Items[0].ID)
	}
	var empty *Applicants
	if empty.Len() != 0 {
		t.Fatalf("expected nil applicants to be empty")
	}
}
