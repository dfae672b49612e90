// Package local implements the always-available fallback analyzer: a
// deterministic lexicon scorer that substitutes for remote sentiment
// inference when the circuit is open or a remote batch fails. It holds no
// mutable state, so batches can be analyzed with unbounded concurrency.
package local

import (
	"math"
	"strings"

	"github.com/sozercan/feedbacklens/apimodels"
)

const (
	// negationScale follows the convention of damping rather than fully
	// inverting a negated word ("not great" is bad, not horrid).
	negationScale = -0.74

	// negationWindow is how many preceding tokens are checked for a negator.
	negationWindow = 3

	// labelThreshold separates POSITIVE/NEGATIVE from NEUTRAL on the
	// compound scale.
	labelThreshold = 0.05

	// normalizationAlpha flattens the sum-to-compound curve.
	normalizationAlpha = 15.0
)

// Analyze scores a single text and returns a sentiment-kind result. The
// compound score lives in [-1, 1] and is normalized to [0, 1] for the
// public score field; confidence is the compound magnitude.
func Analyze(text string) apimodels.AnalysisResult {
	compound := Compound(text)

	label := apimodels.LabelNeutral
	switch {
	case compound >= labelThreshold:
		label = apimodels.LabelPositive
	case compound <= -labelThreshold:
		label = apimodels.LabelNegative
	}

	return apimodels.AnalysisResult{
		Kind: apimodels.KindSentiment,
		Sentiment: &apimodels.SentimentScore{
			Score:      (compound + 1) / 2,
			Label:      label,
			Confidence: math.Abs(compound),
		},
	}
}

// Degraded returns the placeholder result for kinds that have no local
// equivalent; callers use it when the remote path is unavailable.
func Degraded(kind apimodels.Kind) apimodels.AnalysisResult {
	return apimodels.AnalysisResult{
		Kind: kind,
		Insight: &apimodels.InsightReport{
			Summary:         "",
			KeyPoints:       []string{},
			PainPoints:      []string{},
			FeatureRequests: []string{},
			PositiveAspects: []string{},
		},
	}
}

// Compound computes the raw compound score in [-1, 1].
func Compound(text string) float64 {
	tokens := tokenize(text)

	var sum float64
	for i, tok := range tokens {
		valence, ok := valences[tok]
		if !ok {
			continue
		}

		if i > 0 {
			if boost, ok := boosters[tokens[i-1]]; ok {
				valence *= 1 + boost
			}
		}
		if negated(tokens, i) {
			valence *= negationScale
		}
		sum += valence
	}

	if sum == 0 {
		return 0
	}
	return sum / math.Sqrt(sum*sum+normalizationAlpha)
}

func negated(tokens []string, i int) bool {
	start := i - negationWindow
	if start < 0 {
		start = 0
	}
	for _, tok := range tokens[start:i] {
		if negators[tok] {
			return true
		}
	}
	return false
}

func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimFunc(f, func(r rune) bool {
			return !isWordRune(r)
		})
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func isWordRune(r rune) bool {
	return r == '\'' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
