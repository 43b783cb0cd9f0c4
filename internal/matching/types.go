package matching

import (
	"github.com/spigell/job-matcher/internal/experience"
	"github.com/spigell/job-matcher/internal/similarity"
	"github.com/spigell/job-matcher/internal/skills"
)

// JobRequirement is a job posting as seen by the engine.
type JobRequirement struct {
	ID                 string   `json:"id,omitempty" mapstructure:"id"`
	Title              string   `json:"title" mapstructure:"title"`
	Description        string   `json:"description" mapstructure:"description"`
	RequiredSkills     []string `json:"required_skills" mapstructure:"required_skills"`
	MinExperienceYears float64  `json:"min_experience_years" mapstructure:"min_experience_years"`
}

type WorkEntry = experience.Entry

// CandidateProfile is a parsed résumé. DeclaredExperienceYears is only used
// when WorkExperience is empty.
type CandidateProfile struct {
	ID                      string      `json:"id,omitempty" mapstructure:"id"`
	Name                    string      `json:"name,omitempty" mapstructure:"name"`
	Skills                  []string    `json:"skills" mapstructure:"skills"`
	WorkExperience          []WorkEntry `json:"work_experience" mapstructure:"work_experience"`
	EducationText           string      `json:"education" mapstructure:"education"`
	SummaryText             string      `json:"summary" mapstructure:"summary"`
	DeclaredExperienceYears *float64    `json:"experience_years,omitempty" mapstructure:"experience_years"`
}

// MatchResult is the outcome of one match. All scores are in [0,100].
type MatchResult struct {
	MatchPercentage        int      `json:"match_percentage"`
	SkillScore             float64  `json:"skill_score"`
	ExperienceScore        float64  `json:"experience_score"`
	SemanticScore          float64  `json:"semantic_score"`
	MatchedSkills          []string `json:"matched_skills"`
	PartiallyMatchedSkills []string `json:"partially_matched_skills"`
	MissingSkills          []string `json:"missing_skills"`
	Summary                string   `json:"summary"`

	Skills                []skills.Classification `json:"skills"`
	RequiredSkillsDerived bool                    `json:"required_skills_derived"`
	ExperienceYears       float64                 `json:"experience_years"`
	SemanticSource        similarity.Strategy     `json:"semantic_source"`
}
