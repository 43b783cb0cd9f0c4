package skills

import "fmt"

// Kind is the outcome of resolving one required skill.
type Kind int

const (
	Missing Kind = iota
	Partial
	Matched
)

func (k Kind) String() string {
	switch k {
	case Matched:
		return "matched"
	case Partial:
		return "partial"
	default:
		return "missing"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "matched":
		*k = Matched
	case "partial":
		*k = Partial
	case "missing":
		*k = Missing
	default:
		return fmt.Errorf("unknown skill classification %q", text)
	}
	return nil
}

// Classification describes how a required skill was resolved.
// Score is 1 for Matched, the fuzzy rating in [threshold, 1) for Partial and 0 for Missing.
// Evidence is the candidate skill that produced the outcome.
type Classification struct {
	Skill    string  `json:"skill"`
	Kind     Kind    `json:"kind"`
	Score    float64 `json:"score"`
	Evidence string  `json:"evidence,omitempty"`
}
