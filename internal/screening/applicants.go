package screening

import (
	"sort"

	"github.com/spigell/job-matcher/internal/matching"
)

// Applicant is a candidate together with the engine's result for one job.
type Applicant struct {
	ID     string                `json:"id"`
	Name   string                `json:"name,omitempty"`
	Result *matching.MatchResult `json:"result"`
}

type Applicants struct {
	Items []*Applicant
}

func (a *Applicants) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Items)
}

// Exclude removes applicants rejected by keep and returns their ids.
func (a *Applicants) Exclude(keep func(*Applicant) bool) []string {
	excluded := make([]string, 0)
	kept := a.Items[:0]
	for _, item := range a.Items {
		if keep(item) {
			kept = append(kept, item)
			continue
		}
		excluded = append(excluded, item.ID)
	}
	a.Items = kept
	return excluded
}

// SortByMatch orders applicants by match percentage, best first, ties by id.
func (a *Applicants) SortByMatch() {
	sort.SliceStable(a.Items, func(i, j int) bool {
		pi, pj := percentage(a.Items[i]), percentage(a.Items[j])
		if pi != pj {
			return pi > pj
		}
		return a.Items[i].ID < a.Items[j].ID
	})
}

func percentage(a *Applicant) int {
	if a == nil || a.Result == nil {
		return 0
	}
	return a.Result.MatchPercentage
}

func missing(a *Applicant) int {
	if a == nil || a.Result == nil {
		return 0
	}
	return len(a.Result.MissingSkills)
}
