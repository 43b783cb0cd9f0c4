// Package catalog holds the job postings candidates are matched against.
package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spigell/job-matcher/internal/matching"
)

var ErrJobNotFound = errors.New("job not found")

type Catalog struct {
	jobs []matching.JobRequirement
}

// New copies jobs into a catalog. Jobs without an ID get their 1-based position.
func New(jobs []matching.JobRequirement) *Catalog {
	c := &Catalog{jobs: make([]matching.JobRequirement, 0, len(jobs))}
	for i, job := range jobs {
		if strings.TrimSpace(job.ID) == "" {
			job.ID = strconv.Itoa(i + 1)
		}
		job.RequiredSkills = append([]string{}, job.RequiredSkills...)
		c.jobs = append(c.jobs, job)
	}
	return c
}

// FromRecords decodes loosely typed job records, as read from the config file.
func FromRecords(records []map[string]any) *Catalog {
	jobs := make([]matching.JobRequirement, 0, len(records))
	for _, r := range records {
		jobs = append(jobs, matching.DecodeJob(r))
	}
	return New(jobs)
}

// Default is the built-in catalog.
func Default() *Catalog {
	return New([]matching.JobRequirement{
		{
			Title:              "SOFTWARE DEVELOPER",
			Description:        "Design and develop high-volume, low-latency applications for mission-critical systems, ensuring top-tier availability and performance.",
			RequiredSkills:     []string{"JavaScript", "Node.js", "React", "APIs", "REST", "Agile", "Git"},
			MinExperienceYears: 2,
		},
		{
			Title:              "QA ENGINEER",
			Description:        "Experience in manual and automation testing. Knowledge of Java Programming.",
			RequiredSkills:     []string{"Manual Testing", "Automation Testing", "Java"},
			MinExperienceYears: 1,
		},
		{
			Title:              "SALES EXECUTIVE",
			Description:        "Build rapport with contacts and understand where the prospect is in the buying process.",
			RequiredSkills:     []string{"Communication", "Negotiation", "CRM"},
			MinExperienceYears: 1,
		},
		{
			Title:              "APP DEVELOPMENT",
			Description:        "Build and ship mobile applications for iOS and Android.",
			RequiredSkills:     []string{"Mobile Development", "iOS", "Android", "React Native"},
			MinExperienceYears: 2,
		},
		{
			Title:              "WEB DEVELOPMENT",
			Description:        "Build responsive web interfaces.",
			RequiredSkills:     []string{"HTML", "CSS", "JavaScript", "React"},
			MinExperienceYears: 2,
		},
	})
}

func (c *Catalog) Len() int {
	return len(c.jobs)
}

// Jobs returns a copy of the postings in catalog order.
func (c *Catalog) Jobs() []matching.JobRequirement {
	out := make([]matching.JobRequirement, 0, len(c.jobs))
	for _, job := range c.jobs {
		out = append(out, *clone(job))
	}
	return out
}

// Find looks a job up by ID, then by case-insensitive title.
func (c *Catalog) Find(ref string) (*matching.JobRequirement, error) {
	ref = strings.TrimSpace(ref)
	for i := range c.jobs {
		if c.jobs[i].ID == ref {
			return clone(c.jobs[i]), nil
		}
	}
	for i := range c.jobs {
		if strings.EqualFold(c.jobs[i].Title, ref) {
			return clone(c.jobs[i]), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrJobNotFound, ref)
}

func clone(job matching.JobRequirement) *matching.JobRequirement {
	job.RequiredSkills = append([]string{}, job.RequiredSkills...)
	return &job
}
