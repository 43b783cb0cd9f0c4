package similarity

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/spigell/job-matcher/internal/textutil"
)

const documentCount = 2

// IDF weights a term by the number of the two documents that contain it (1 or 2).
type IDF func(docFreq int) float64

// SmoothIDF is 1 + ln(N / (1 + df)). Terms present in both documents keep a
// positive weight, so texts sharing vocabulary score above zero.
func SmoothIDF(docFreq int) float64 {
	return 1 + math.Log(documentCount/float64(1+docFreq))
}

// RawIDF is ln(N / df). Over two documents it zeroes every shared term, so
// only the distinct vocabulary of the two texts carries weight.
func RawIDF(docFreq int) float64 {
	if docFreq <= 0 {
		return 0
	}
	return math.Log(documentCount / float64(docFreq))
}

const (
	IDFSmooth = "smooth"
	IDFRaw    = "raw"
)

// IDFByName resolves a configured weighting. An empty name selects SmoothIDF.
func IDFByName(name string) (IDF, error) {
	switch name {
	case "", IDFSmooth:
		return SmoothIDF, nil
	case IDFRaw:
		return RawIDF, nil
	default:
		return nil, fmt.Errorf("unknown idf weighting %q", name)
	}
}

// TFIDFCosine scores the lexical similarity of a and b in [0,1] using SmoothIDF.
func TFIDFCosine(a, b string) float64 {
	return TFIDFCosineWith(a, b, SmoothIDF)
}

// TFIDFCosineWith treats {a, b} as the whole corpus. The dot product runs over
// the shared terms, the magnitudes over each full vector. Either vector having
// zero magnitude yields 0.
func TFIDFCosineWith(a, b string, idf IDF) float64 {
	if idf == nil {
		idf = SmoothIDF
	}

	tfA := termFrequencies(a)
	tfB := termFrequencies(b)
	if len(tfA) == 0 || len(tfB) == 0 {
		return 0
	}

	weightsA := weigh(tfA, tfB, idf)
	weightsB := weigh(tfB, tfA, idf)

	// sorted iteration keeps the float sums bit-identical between runs
	var dot float64
	for _, term := range slices.Sorted(maps.Keys(weightsA)) {
		if wb, ok := weightsB[term]; ok {
			dot += weightsA[term] * wb
		}
	}

	magA, magB := magnitude(weightsA), magnitude(weightsB)
	if magA == 0 || magB == 0 {
		return 0
	}

	return clamp01(dot / (magA * magB))
}

func termFrequencies(text string) map[string]int {
	tf := make(map[string]int)
	for _, token := range textutil.Tokenize(text) {
		tf[token]++
	}
	return tf
}

func weigh(tf, other map[string]int, idf IDF) map[string]float64 {
	weights := make(map[string]float64, len(tf))
	for term, count := range tf {
		df := 1
		if _, ok := other[term]; ok {
			df = 2
		}
		weights[term] = float64(count) * idf(df)
	}
	return weights
}

func magnitude(weights map[string]float64) float64 {
	var sum float64
	for _, term := range slices.Sorted(maps.Keys(weights)) {
		sum += weights[term] * weights[term]
	}
	return math.Sqrt(sum)
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
