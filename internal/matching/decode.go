package matching

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

type rawJob struct {
	ID                 any `mapstructure:"id"`
	Title              any `mapstructure:"title"`
	Description        any `mapstructure:"description"`
	RequiredSkills     any `mapstructure:"required_skills"`
	MinExperienceYears any `mapstructure:"min_experience_years"`
}

type rawCandidate struct {
	ID              any `mapstructure:"id"`
	Name            any `mapstructure:"name"`
	Skills          any `mapstructure:"skills"`
	WorkExperience  any `mapstructure:"work_experience"`
	Education       any `mapstructure:"education"`
	Summary         any `mapstructure:"summary"`
	ExperienceYears any `mapstructure:"experience_years"`
}

// DecodeJob reads a loosely typed posting record. Fields of the wrong shape
// are replaced with zero values; it never fails.
func DecodeJob(raw map[string]any) JobRequirement {
	var r rawJob
	_ = mapstructure.Decode(raw, &r)

	job := JobRequirement{
		ID:             text(r.ID),
		Title:          text(r.Title),
		Description:    text(r.Description),
		RequiredSkills: skillList(r.RequiredSkills),
	}
	if years := number(r.MinExperienceYears); years != nil && *years > 0 {
		job.MinExperienceYears = *years
	}
	return job
}

// DecodeCandidate reads a loosely typed résumé-parse record. Skills may be a
// list, a comma-separated string or a JSON array string. Work entries that do
// not decode are dropped. It never fails.
func DecodeCandidate(raw map[string]any) CandidateProfile {
	var r rawCandidate
	_ = mapstructure.Decode(raw, &r)

	return CandidateProfile{
		ID:                      text(r.ID),
		Name:                    text(r.Name),
		Skills:                  skillList(r.Skills),
		WorkExperience:          workEntries(r.WorkExperience),
		EducationText:           text(r.Education),
		SummaryText:             text(r.Summary),
		DeclaredExperienceYears: number(r.ExperienceYears),
	}
}

func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case int, int32, int64, float32, float64, bool:
		return fmt.Sprint(t)
	}
	return ""
}

func number(v any) *float64 {
	var f float64
	switch t := v.(type) {
	case int:
		f = float64(t)
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	case float32:
		f = float64(t)
	case float64:
		f = t
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return nil
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	return &f
}

func skillList(v any) []string {
	switch t := v.(type) {
	case []string:
		return append([]string{}, t...)
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		s := strings.TrimSpace(t)
		if strings.HasPrefix(s, "[") {
			var parsed []string
			if err := json.Unmarshal([]byte(s), &parsed); err != nil {
				return []string{}
			}
			return parsed
		}
		if s == "" {
			return []string{}
		}
		return []string{s}
	}
	return []string{}
}

func workEntries(v any) []WorkEntry {
	var items []any
	switch t := v.(type) {
	case []any:
		items = t
	case []map[string]any:
		for _, m := range t {
			items = append(items, m)
		}
	case string:
		if err := json.Unmarshal([]byte(t), &items); err != nil {
			return []WorkEntry{}
		}
	default:
		return []WorkEntry{}
	}

	out := make([]WorkEntry, 0, len(items))
	for _, item := range items {
		if _, ok := item.(map[string]any); !ok {
			continue
		}
		var entry WorkEntry
		if err := decodeWeak(item, &entry); err != nil {
			continue
		}
		out = append(out, entry)
	}
	return out
}

func decodeWeak(input, output any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       timeToDateHook,
		WeaklyTypedInput: true,
		Result:           output,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

// timeToDateHook keeps YAML timestamps usable as date strings.
func timeToDateHook(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String {
		return data, nil
	}
	if t, ok := data.(time.Time); ok {
		return t.Format("2006-01-02"), nil
	}
	return data, nil
}
