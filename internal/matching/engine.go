// Package matching scores how well a candidate fits a job posting.
package matching

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/job-matcher/internal/experience"
	"github.com/spigell/job-matcher/internal/logger"
	"github.com/spigell/job-matcher/internal/similarity"
	"github.com/spigell/job-matcher/internal/skills"
	"github.com/spigell/job-matcher/internal/utils"
)

var (
	ErrMissingJob       = errors.New("job requirement is required")
	ErrMissingCandidate = errors.New("candidate profile is required")
)

// Engine is immutable after construction and safe for concurrent use.
type Engine struct {
	cfg      Config
	resolver *skills.Resolver
	calc     *experience.Calculator
	provider similarity.Provider
	logger   *zap.Logger
	now      func() time.Time
}

type Option func(*Engine)

// WithProvider sets the semantic similarity provider. Lexical similarity is used by default.
func WithProvider(p similarity.Provider) Option {
	return func(e *Engine) {
		if p != nil {
			e.provider = p
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithClock fixes the time used for open-ended positions.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	idf, err := similarity.IDFByName(cfg.IDF)
	if err != nil {
		return nil, fmt.Errorf("invalid matching config: %w", err)
	}

	e := &Engine{
		cfg:      cfg,
		provider: similarity.Lexical{IDF: idf},
		logger:   zap.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.resolver = skills.NewResolver(skills.Options{
		Synonyms:             synonymTable(cfg.Synonyms),
		Vocabulary:           cfg.Vocabulary,
		PartialThreshold:     cfg.PartialThreshold,
		MinContainmentLength: cfg.MinContainmentLength,
	})
	e.calc = experience.NewCalculator(experience.Options{
		EntryLevelMarkers: cfg.EntryLevelMarkers,
		EntryLevelYears:   cfg.EntryLevelYears,
		Now:               e.now,
	})

	return e, nil
}

// ComputeMatch scores candidate against job. It fails only when one of them is nil;
// malformed sub-fields lower the scores instead.
func (e *Engine) ComputeMatch(ctx context.Context, job *JobRequirement, candidate *CandidateProfile) (*MatchResult, error) {
	if job == nil {
		return nil, ErrMissingJob
	}
	if candidate == nil {
		return nil, ErrMissingCandidate
	}

	required, derived := e.resolver.RequiredSkills(job.RequiredSkills, job.Description)
	classified := e.resolver.Classify(required, candidate.Skills)

	res := &MatchResult{
		MatchedSkills:          []string{},
		PartiallyMatchedSkills: []string{},
		MissingSkills:          []string{},
		Skills:                 classified,
		RequiredSkillsDerived:  derived,
	}
	for _, c := range classified {
		switch c.Kind {
		case skills.Matched:
			res.MatchedSkills = append(res.MatchedSkills, c.Skill)
		case skills.Partial:
			res.PartiallyMatchedSkills = append(res.PartiallyMatchedSkills, c.Skill)
		default:
			res.MissingSkills = append(res.MissingSkills, c.Skill)
		}
	}
	res.SkillScore = SkillScore(len(res.MatchedSkills), len(res.PartiallyMatchedSkills), len(classified), e.cfg.PartialCredit)

	res.ExperienceYears = e.calc.Years(candidate.WorkExperience, candidate.DeclaredExperienceYears)
	res.ExperienceScore = experience.Score(res.ExperienceYears, minYears(job.MinExperienceYears))

	semantic := e.provider.Compare(ctx, JobText(job), CandidateText(candidate))
	res.SemanticScore = 100 * semantic.Value
	res.SemanticSource = semantic.Strategy

	combined := e.cfg.Weights.Skill*res.SkillScore +
		e.cfg.Weights.Experience*res.ExperienceScore +
		e.cfg.Weights.Semantic*res.SemanticScore
	res.MatchPercentage = Percentage(combined)
	res.Summary = Summary(res)

	e.logger.Debug("match computed",
		append(logger.MatchFields(job.Title, candidate.ID),
			zap.Int("percentage", res.MatchPercentage),
			zap.Float64("skill_score", res.SkillScore),
			zap.Float64("experience_score", res.ExperienceScore),
			zap.Float64("semantic_score", res.SemanticScore),
			zap.String("semantic_source", string(res.SemanticSource)),
			zap.Bool("required_skills_derived", derived),
		)...,
	)

	return res, nil
}

// SkillScore is the share of required skills covered, partial matches earning
// partialCredit each. Without required skills there is nothing to cover and the score is 0.
func SkillScore(matched, partial, required int, partialCredit float64) float64 {
	if required <= 0 {
		return 0
	}
	score := 100 * (float64(matched) + partialCredit*float64(partial)) / float64(required)
	return math.Max(0, math.Min(100, score))
}

// Percentage rounds the combined score. Any positive score reports at least 1,
// so 0 means nothing at all overlapped.
func Percentage(combined float64) int {
	if math.IsNaN(combined) || combined <= 0 {
		return 0
	}
	p := int(math.Round(combined))
	switch {
	case p < 1:
		return 1
	case p > 100:
		return 100
	}
	return p
}

// JobText is the text the posting is compared by: title and description.
func JobText(job *JobRequirement) string {
	return utils.JoinNonEmpty(" ", job.Title, job.Description)
}

// CandidateText is education, work history and summary, in that order.
func CandidateText(c *CandidateProfile) string {
	return utils.JoinNonEmpty(" ", c.EducationText, experience.Text(c.WorkExperience), c.SummaryText)
}

func minYears(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
