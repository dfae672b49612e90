// Package parse turns raw, possibly malformed model output into structured
// analysis records. Models wrap JSON in prose, code fences, or single
// quotes often enough that a recovery chain is cheaper than a retry.
package parse

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/sozercan/feedbacklens/apimodels"
)

// Error reports that no recovery stage produced a decodable payload. It
// carries the original raw text and the terminal cause for logging.
type Error struct {
	Raw string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to parse model response: %v", e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Parse decodes raw into one record per batch item, for the given analysis
// kind. It attempts, in order: the raw text as-is, the contents of the
// first fenced code block, the substring between the first opening bracket
// and the last matching closer, and finally each candidate with single
// quotes normalized to double quotes.
func Parse(raw string, kind apimodels.Kind) ([]apimodels.AnalysisResult, error) {
	var lastErr error

	for _, candidate := range candidates(raw) {
		for _, text := range []string{candidate, normalizeQuotes(candidate)} {
			results, err := decode(text, kind)
			if err == nil {
				return results, nil
			}
			lastErr = err
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("response contains no JSON payload")
	}
	return nil, &Error{Raw: raw, Err: lastErr}
}

// candidates returns the substrings of raw worth attempting, best first.
func candidates(raw string) []string {
	out := []string{strings.TrimSpace(raw)}
	if fenced, ok := extractFenced(raw); ok {
		out = append(out, fenced)
	}
	if bracketed, ok := extractBracketed(raw); ok {
		out = append(out, bracketed)
	}
	return out
}

// extractFenced returns the contents of the first ``` fenced block,
// stripping a leading format-name token such as "json".
func extractFenced(raw string) (string, bool) {
	start := strings.Index(raw, "```")
	if start < 0 {
		return "", false
	}
	rest := raw[start+3:]
	end := strings.Index(rest, "```")
	if end < 0 {
		return "", false
	}
	content := rest[:end]
	if nl := strings.IndexByte(content, '\n'); nl >= 0 {
		tag := strings.TrimSpace(content[:nl])
		if tag != "" && !strings.ContainsAny(tag, "[{\"") {
			content = content[nl+1:]
		}
	}
	return strings.TrimSpace(content), true
}

// extractBracketed returns the substring from the first [ or { through the
// last matching closer.
func extractBracketed(raw string) (string, bool) {
	start := strings.IndexAny(raw, "[{")
	if start < 0 {
		return "", false
	}
	closer := "]"
	if raw[start] == '{' {
		closer = "}"
	}
	end := strings.LastIndex(raw, closer)
	if end <= start {
		return "", false
	}
	return raw[start : end+1], true
}

// normalizeQuotes rewrites single-quoted pseudo-JSON into double quotes.
func normalizeQuotes(s string) string {
	if strings.Contains(s, "\"") {
		return s
	}
	return strings.ReplaceAll(s, "'", "\"")
}

func decode(text string, kind apimodels.Kind) ([]apimodels.AnalysisResult, error) {
	if text == "" {
		return nil, fmt.Errorf("empty candidate")
	}
	if !gjson.Valid(text) {
		return nil, fmt.Errorf("candidate is not valid JSON")
	}

	switch kind {
	case apimodels.KindSentiment:
		return decodeSentiment(text)
	case apimodels.KindInsight, apimodels.KindSummary:
		return decodeInsight(text, kind)
	}
	return nil, fmt.Errorf("unknown analysis kind %q", kind)
}

// sentimentRecord is the wire shape the model is prompted to emit for
// sentiment batches.
type sentimentRecord struct {
	Score      float64 `json:"score"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

func decodeSentiment(text string) ([]apimodels.AnalysisResult, error) {
	var records []sentimentRecord
	if err := json.Unmarshal([]byte(text), &records); err != nil {
		// Tolerate a bare object for single-item batches.
		var single sentimentRecord
		if err2 := json.Unmarshal([]byte(text), &single); err2 != nil {
			return nil, err
		}
		records = []sentimentRecord{single}
	}

	results := make([]apimodels.AnalysisResult, len(records))
	for i, r := range records {
		label, err := normalizeLabel(r.Label)
		if err != nil {
			return nil, err
		}
		results[i] = apimodels.AnalysisResult{
			Kind: apimodels.KindSentiment,
			Sentiment: &apimodels.SentimentScore{
				Score:      clamp01(r.Score),
				Label:      label,
				Confidence: clamp01(r.Confidence),
			},
		}
	}
	return results, nil
}

func decodeInsight(text string, kind apimodels.Kind) ([]apimodels.AnalysisResult, error) {
	var reports []apimodels.InsightReport
	if err := json.Unmarshal([]byte(text), &reports); err != nil {
		var single apimodels.InsightReport
		if err2 := json.Unmarshal([]byte(text), &single); err2 != nil {
			return nil, err
		}
		reports = []apimodels.InsightReport{single}
	}

	results := make([]apimodels.AnalysisResult, len(reports))
	for i := range reports {
		report := reports[i]
		results[i] = apimodels.AnalysisResult{Kind: kind, Insight: &report}
	}
	return results, nil
}

func normalizeLabel(s string) (apimodels.Label, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "POSITIVE":
		return apimodels.LabelPositive, nil
	case "NEGATIVE":
		return apimodels.LabelNegative, nil
	case "NEUTRAL", "":
		return apimodels.LabelNeutral, nil
	}
	return "", fmt.Errorf("unknown sentiment label %q", s)
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
