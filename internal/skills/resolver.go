package skills

import (
	"strings"
	"unicode/utf8"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/spigell/job-matcher/internal/textutil"
)

const (
	DefaultPartialThreshold     = 0.5
	DefaultMinContainmentLength = 3
)

// Options configures a Resolver. Zero values fall back to the defaults.
type Options struct {
	Synonyms             map[string][]string
	Vocabulary           []string
	PartialThreshold     float64
	MinContainmentLength int
}

// Resolver classifies required skills against candidate skills.
// It is immutable after construction and safe for concurrent use.
type Resolver struct {
	aliases    map[string]map[string]struct{}
	vocabulary []vocabularyEntry
	threshold  float64
	minContain int
	metric     strutil.StringMetric
}

type vocabularyEntry struct {
	skill  string
	tokens []string
}

// NewResolver builds the lookup tables once. Synonym keys and aliases are normalized.
func NewResolver(opts Options) *Resolver {
	synonyms := opts.Synonyms
	if synonyms == nil {
		synonyms = DefaultSynonyms()
	}
	vocabulary := opts.Vocabulary
	if vocabulary == nil {
		vocabulary = DefaultVocabulary()
	}

	r := &Resolver{
		aliases:    make(map[string]map[string]struct{}, len(synonyms)),
		threshold:  opts.PartialThreshold,
		minContain: opts.MinContainmentLength,
		metric:     metrics.NewSorensenDice(),
	}
	if r.threshold <= 0 {
		r.threshold = DefaultPartialThreshold
	}
	if r.minContain <= 0 {
		r.minContain = DefaultMinContainmentLength
	}

	for canonical, aliases := range synonyms {
		key := Normalize(canonical)
		if key == "" {
			continue
		}
		set, ok := r.aliases[key]
		if !ok {
			set = make(map[string]struct{}, len(aliases))
			r.aliases[key] = set
		}
		for _, alias := range aliases {
			if a := Normalize(alias); a != "" && a != key {
				set[a] = struct{}{}
			}
		}
	}

	for _, skill := range ParseList(vocabulary...) {
		tokens := textutil.Tokenize(skill)
		if len(tokens) == 0 {
			continue
		}
		r.vocabulary = append(r.vocabulary, vocabularyEntry{skill: skill, tokens: tokens})
	}

	return r
}

// RequiredSkills returns the explicit skill list when it carries anything,
// otherwise the vocabulary skills found in the description, in order of first
// appearance. derived reports whether the description fallback was used.
func (r *Resolver) RequiredSkills(explicit []string, description string) (skills []string, derived bool) {
	if parsed := ParseList(explicit...); len(parsed) > 0 {
		return parsed, false
	}

	tokens := textutil.Tokenize(description)
	if len(tokens) == 0 {
		return []string{}, true
	}

	type hit struct {
		skill string
		pos   int
	}
	hits := make([]hit, 0)
	for _, entry := range r.vocabulary {
		if pos := textutil.IndexSequence(tokens, entry.tokens); pos >= 0 {
			hits = append(hits, hit{skill: entry.skill, pos: pos})
		}
	}

	// insertion sort keeps vocabulary order for equal positions
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].pos < hits[j-1].pos; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}

	skills = make([]string, 0, len(hits))
	for _, h := range hits {
		skills = append(skills, h.skill)
	}
	return skills, true
}

// Classify resolves every required skill against the candidate skills.
// Both lists are normalized and deduplicated; the result follows the order of required.
func (r *Resolver) Classify(required, candidate []string) []Classification {
	req := ParseList(required...)
	cand := ParseList(candidate...)

	out := make([]Classification, 0, len(req))
	for _, skill := range req {
		out = append(out, r.classify(skill, cand))
	}
	return out
}

func (r *Resolver) classify(skill string, candidate []string) Classification {
	for _, c := range candidate {
		if c == skill {
			return Classification{Skill: skill, Kind: Matched, Score: 1, Evidence: c}
		}
	}

	for _, c := range candidate {
		if r.linked(skill, c) {
			return Classification{Skill: skill, Kind: Matched, Score: 1, Evidence: c}
		}
	}

	for _, c := range candidate {
		if r.contains(skill, c) {
			return Classification{Skill: skill, Kind: Matched, Score: 1, Evidence: c}
		}
	}

	best, evidence := 0.0, ""
	for _, c := range candidate {
		if rating := strutil.Similarity(skill, c, r.metric); rating > best {
			best, evidence = rating, c
		}
	}

	switch {
	case best >= 1:
		return Classification{Skill: skill, Kind: Matched, Score: 1, Evidence: evidence}
	case best >= r.threshold:
		return Classification{Skill: skill, Kind: Partial, Score: best, Evidence: evidence}
	default:
		return Classification{Skill: skill, Kind: Missing}
	}
}

func (r *Resolver) linked(a, b string) bool {
	if aliases, ok := r.aliases[a]; ok {
		if _, ok := aliases[b]; ok {
			return true
		}
	}
	if aliases, ok := r.aliases[b]; ok {
		if _, ok := aliases[a]; ok {
			return true
		}
	}
	return false
}

// contains reports substring containment in either direction. The contained
// string must be at least minContain runes long so that "js" does not match
// every "*.js" skill.
func (r *Resolver) contains(a, b string) bool {
	short, long := a, b
	if utf8.RuneCountInString(short) > utf8.RuneCountInString(long) {
		short, long = long, short
	}
	if utf8.RuneCountInString(short) < r.minContain {
		return false
	}
	return strings.Contains(long, short)
}
