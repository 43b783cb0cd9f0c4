package matching

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/spigell/job-matcher/internal/experience"
	"github.com/spigell/job-matcher/internal/similarity"
	"github.com/spigell/job-matcher/internal/skills"
)

var ErrZeroWeights = errors.New("at least one weight must be positive")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Weights blend the three sub-scores into the combined score.
type Weights struct {
	Skill      float64 `mapstructure:"skill" validate:"gte=0,lte=1"`
	Experience float64 `mapstructure:"experience" validate:"gte=0,lte=1"`
	Semantic   float64 `mapstructure:"semantic" validate:"gte=0,lte=1"`
}

func DefaultWeights() Weights {
	return Weights{Skill: 0.45, Experience: 0.40, Semantic: 0.15}
}

// Synonym lists the aliases accepted for a canonical skill. Config files carry
// the table as a list since skill names like "node.js" contain the key delimiter.
type Synonym struct {
	Skill   string   `mapstructure:"skill" validate:"required"`
	Aliases []string `mapstructure:"aliases"`
}

// Config tunes the engine. Empty tables select the built-in ones.
type Config struct {
	Weights              Weights   `mapstructure:"weights"`
	PartialThreshold     float64   `mapstructure:"partial-threshold" validate:"gt=0,lte=1"`
	PartialCredit        float64   `mapstructure:"partial-credit" validate:"gte=0,lte=1"`
	MinContainmentLength int       `mapstructure:"min-containment-length" validate:"gte=1"`
	Synonyms             []Synonym `mapstructure:"synonyms" validate:"dive"`
	Vocabulary           []string  `mapstructure:"vocabulary"`
	EntryLevelMarkers    []string  `mapstructure:"entry-level-markers"`
	EntryLevelYears      float64   `mapstructure:"entry-level-years" validate:"gt=0"`
	// IDF names the lexical term weighting: smooth (default) or raw.
	IDF                  string    `mapstructure:"idf" validate:"omitempty,oneof=smooth raw"`
}

func DefaultConfig() Config {
	return Config{
		Weights:              DefaultWeights(),
		PartialThreshold:     skills.DefaultPartialThreshold,
		PartialCredit:        0.5,
		MinContainmentLength: skills.DefaultMinContainmentLength,
		EntryLevelYears:      experience.DefaultEntryLevelYears,
		IDF:                  similarity.IDFSmooth,
	}
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid matching config: %w", err)
	}
	w := c.Weights
	if w.Skill+w.Experience+w.Semantic <= 0 {
		return fmt.Errorf("invalid matching config: %w", ErrZeroWeights)
	}
	return nil
}

// synonymTable returns nil for an empty list so the built-in table applies.
func synonymTable(entries []Synonym) map[string][]string {
	if len(entries) == 0 {
		return nil
	}
	table := make(map[string][]string, len(entries))
	for _, e := range entries {
		table[e.Skill] = append(table[e.Skill], e.Aliases...)
	}
	return table
}
