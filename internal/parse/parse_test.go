package parse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sozercan/feedbacklens/apimodels"
)

const insightArray = `[{"summary":"likes the app","key_points":["fast"],"pain_points":[],"feature_requests":["dark mode"],"positive_aspects":["speed"]}]`

func requireSingleInsight(t *testing.T, results []apimodels.AnalysisResult) *apimodels.InsightReport {
	t.Helper()
	require.Len(t, results, 1)
	require.NotNil(t, results[0].Insight)
	return results[0].Insight
}

func TestParse_DirectJSON(t *testing.T) {
	results, err := Parse(insightArray, apimodels.KindInsight)
	require.NoError(t, err)

	report := requireSingleInsight(t, results)
	assert.Equal(t, "likes the app", report.Summary)
	assert.Equal(t, []string{"dark mode"}, report.FeatureRequests)
}

func TestParse_FencedCodeBlockWithLanguageTag(t *testing.T) {
	raw := "Here is the analysis you asked for:\n```json\n" + insightArray + "\n```\nLet me know if you need more."

	results, err := Parse(raw, apimodels.KindInsight)
	require.NoError(t, err)
	assert.Equal(t, "likes the app", requireSingleInsight(t, results).Summary)
}

func TestParse_ProseAroundArray(t *testing.T) {
	raw := "Sure! The results are " + insightArray + " — hope that helps."

	results, err := Parse(raw, apimodels.KindInsight)
	require.NoError(t, err)
	assert.Equal(t, "likes the app", requireSingleInsight(t, results).Summary)
}

func TestParse_SingleQuotes(t *testing.T) {
	raw := `[{'summary': 'likes the app', 'key_points': [], 'pain_points': [], 'feature_requests': [], 'positive_aspects': []}]`

	results, err := Parse(raw, apimodels.KindInsight)
	require.NoError(t, err)
	assert.Equal(t, "likes the app", requireSingleInsight(t, results).Summary)
}

func TestParse_EquivalentAcrossWrappings(t *testing.T) {
	wrapped := []string{
		insightArray,
		"```json\n" + insightArray + "\n```",
		"prefix text " + insightArray + " suffix text",
	}

	var first []apimodels.AnalysisResult
	for i, raw := range wrapped {
		results, err := Parse(raw, apimodels.KindInsight)
		require.NoError(t, err, "case %d", i)
		if i == 0 {
			first = results
			continue
		}
		assert.Equal(t, first, results, "case %d should decode identically", i)
	}
}

func TestParse_BareObjectBecomesSingleRecord(t *testing.T) {
	raw := `{"summary":"one item","key_points":[],"pain_points":[],"feature_requests":[],"positive_aspects":[]}`

	results, err := Parse(raw, apimodels.KindSummary)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, apimodels.KindSummary, results[0].Kind)
	assert.Equal(t, "one item", results[0].Insight.Summary)
}

func TestParse_SentimentRecords(t *testing.T) {
	raw := `[{"score":0.92,"label":"positive","confidence":0.8},{"score":0.1,"label":"NEGATIVE","confidence":1.4}]`

	results, err := Parse(raw, apimodels.KindSentiment)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, apimodels.LabelPositive, results[0].Sentiment.Label)
	assert.Equal(t, apimodels.LabelNegative, results[1].Sentiment.Label)
	assert.Equal(t, 1.0, results[1].Sentiment.Confidence, "confidence should be clamped to [0,1]")
}

func TestParse_GarbageReturnsError(t *testing.T) {
	for _, raw := range []string{
		"",
		"no json here at all",
		"``` incomplete fence",
		"[1, 2, {broken",
	} {
		results, err := Parse(raw, apimodels.KindInsight)
		require.Error(t, err, "raw=%q", raw)
		assert.Nil(t, results)

		var parseErr *Error
		require.True(t, errors.As(err, &parseErr), "error should be a *parse.Error")
		assert.Equal(t, raw, parseErr.Raw, "original payload must be preserved for logging")
	}
}

func TestParse_UnknownLabelFails(t *testing.T) {
	_, err := Parse(`[{"score":0.5,"label":"MIXED","confidence":0.5}]`, apimodels.KindSentiment)
	assert.Error(t, err)
}
