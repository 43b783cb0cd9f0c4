// Package jobsource imports job postings published on hh.ru.
package jobsource

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spigell/job-matcher/internal/matching"
	"github.com/spigell/job-matcher/internal/textutil"
)

// Experience ids used by the hh.ru API.
const (
	ExperienceNone      = "noExperience"
	ExperienceFrom1To3  = "between1And3"
	ExperienceFrom3To6  = "between3And6"
	ExperienceMoreThan6 = "moreThan6"
)

var minYearsByExperience = map[string]float64{
	ExperienceNone:      0,
	ExperienceFrom1To3:  1,
	ExperienceFrom3To6:  3,
	ExperienceMoreThan6: 6,
}

var ErrNoVacancies = errors.New("no vacancies in file")

type Vacancies struct {
	Items []*Vacancy `json:"items"`
}

// Vacancy holds the fields of an hh.ru vacancy the matcher reads.
type Vacancy struct {
	ID          string     `json:"id,omitempty"`
	Name        string     `json:"name,omitempty"`
	Description string     `json:"description,omitempty"`
	KeySkills   []KeySkill `json:"key_skills,omitempty"`
	Experience  Dictionary `json:"experience,omitempty"`
	Employer    Employer   `json:"employer,omitempty"`
	Snippet     Snippet    `json:"snippet,omitempty"`
}

type KeySkill struct {
	Name string `json:"name,omitempty"`
}

type Dictionary struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

type Employer struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// Snippet is what search results carry instead of a full description.
type Snippet struct {
	Requirement    string `json:"requirement,omitempty"`
	Responsibility string `json:"responsibility,omitempty"`
}

// FromVacancy converts a vacancy into a job requirement. The HTML description
// is flattened to text; search results without one fall back to the snippet.
func FromVacancy(v *Vacancy) (matching.JobRequirement, error) {
	if v == nil {
		return matching.JobRequirement{}, errors.New("vacancy is nil")
	}

	html := v.Description
	if strings.TrimSpace(html) == "" {
		html = v.Snippet.Requirement + " " + v.Snippet.Responsibility
	}
	description, err := textutil.HTMLToText(html)
	if err != nil {
		return matching.JobRequirement{}, fmt.Errorf("vacancy %s description: %w", v.ID, err)
	}

	skills := make([]string, 0, len(v.KeySkills))
	for _, s := range v.KeySkills {
		if name := strings.TrimSpace(s.Name); name != "" {
			skills = append(skills, name)
		}
	}

	return matching.JobRequirement{
		ID:                 v.ID,
		Title:              strings.TrimSpace(v.Name),
		Description:        description,
		RequiredSkills:     skills,
		MinExperienceYears: minYearsByExperience[v.Experience.ID],
	}, nil
}

// LoadVacancyFile reads either a single vacancy or a search result page
// ({"items": [...]}) from a JSON file.
func LoadVacancyFile(path string) ([]matching.JobRequirement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vacancy file: %w", err)
	}

	vacancies, err := parseVacancies(data)
	if err != nil {
		return nil, fmt.Errorf("parse vacancy file %q: %w", path, err)
	}

	jobs := make([]matching.JobRequirement, 0, len(vacancies))
	for _, v := range vacancies {
		job, err := FromVacancy(v)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func parseVacancies(data []byte) ([]*Vacancy, error) {
	var page Vacancies
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, err
	}
	if len(page.Items) > 0 {
		return page.Items, nil
	}

	if !bytes.Contains(data, []byte(`"name"`)) {
		return nil, ErrNoVacancies
	}
	var single Vacancy
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, err
	}
	return []*Vacancy{&single}, nil
}
