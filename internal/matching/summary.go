package matching

import (
	"fmt"
	"strings"
)

// Summary renders the skill lists followed by the sub-scores.
func Summary(res *MatchResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Matched skills: %s. ", listOrNone(res.MatchedSkills))
	fmt.Fprintf(&b, "Partially matched skills: %s. ", listOrNone(res.PartiallyMatchedSkills))
	fmt.Fprintf(&b, "Missing skills: %s. ", listOrNone(res.MissingSkills))
	fmt.Fprintf(&b, "Skill score: %.1f, experience score: %.1f, semantic score: %.1f.",
		res.SkillScore, res.ExperienceScore, res.SemanticScore)
	return b.String()
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
