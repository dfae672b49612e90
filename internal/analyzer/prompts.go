package analyzer

import (
	"encoding/json"
	"fmt"

	"github.com/sozercan/feedbacklens/apimodels"
)

const insightSystemPrompt = `You analyze batches of user feedback for a product team.
You will receive a JSON array of feedback texts.
For EACH text, in order, produce one JSON object with the keys:
"summary" (one sentence), "key_points", "pain_points", "feature_requests", "positive_aspects" (string arrays, empty when nothing applies).
Respond with ONLY a JSON array containing exactly one object per input text, in input order. No prose, no code fences.`

const summarySystemPrompt = `You summarize batches of user feedback for a product team.
You will receive a JSON array of feedback texts.
For EACH text, in order, produce one JSON object with the keys:
"summary" (two sentences capturing the overall message), "key_points", "pain_points", "feature_requests", "positive_aspects" (string arrays, empty when nothing applies).
Respond with ONLY a JSON array containing exactly one object per input text, in input order. No prose, no code fences.`

const sentimentSystemPrompt = `You score the sentiment of user feedback.
You will receive a JSON array of feedback texts.
For EACH text, in order, produce one JSON object with the keys:
"score" (float 0-1, 0.5 neutral), "label" ("POSITIVE", "NEGATIVE" or "NEUTRAL"), "confidence" (float 0-1).
Respond with ONLY a JSON array containing exactly one object per input text, in input order. No prose, no code fences.`

func systemPrompt(kind apimodels.Kind) string {
	switch kind {
	case apimodels.KindSummary:
		return summarySystemPrompt
	case apimodels.KindSentiment:
		return sentimentSystemPrompt
	default:
		return insightSystemPrompt
	}
}

// userPrompt packs a batch's texts into the JSON array the system prompt
// promises the model.
func userPrompt(texts []string) (string, error) {
	payload, err := json.Marshal(texts)
	if err != nil {
		return "", fmt.Errorf("failed to encode batch payload: %w", err)
	}
	return string(payload), nil
}
