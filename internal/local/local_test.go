package local

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sozercan/feedbacklens/apimodels"
)

func TestAnalyze_Labels(t *testing.T) {
	tests := []struct {
		text string
		want apimodels.Label
	}{
		{"great app", apimodels.LabelPositive},
		{"crashes constantly", apimodels.LabelNegative},
		{"meh, ok", apimodels.LabelNeutral},
		{"I love this, works perfectly", apimodels.LabelPositive},
		{"terrible, slow and buggy", apimodels.LabelNegative},
		{"it is an app", apimodels.LabelNeutral},
		{"", apimodels.LabelNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			result := Analyze(tt.text)
			require.NotNil(t, result.Sentiment)
			assert.Equal(t, apimodels.KindSentiment, result.Kind)
			assert.Equal(t, tt.want, result.Sentiment.Label, "text=%q score=%v", tt.text, result.Sentiment.Score)
		})
	}
}

func TestAnalyze_ScoreBounds(t *testing.T) {
	for _, text := range []string{
		"amazing wonderful excellent perfect love love love",
		"horrible terrible awful worst hate garbage unusable",
		"neutral words only here",
	} {
		s := Analyze(text).Sentiment
		assert.GreaterOrEqual(t, s.Score, 0.0)
		assert.LessOrEqual(t, s.Score, 1.0)
		assert.GreaterOrEqual(t, s.Confidence, 0.0)
		assert.LessOrEqual(t, s.Confidence, 1.0)
	}
}

func TestAnalyze_NegationFlipsSentiment(t *testing.T) {
	plain := Analyze("this is great").Sentiment
	negated := Analyze("this is not great").Sentiment

	assert.Equal(t, apimodels.LabelPositive, plain.Label)
	assert.Equal(t, apimodels.LabelNegative, negated.Label)
}

func TestAnalyze_BoosterAmplifies(t *testing.T) {
	plain := Compound("the app is good")
	boosted := Compound("the app is really good")

	assert.Greater(t, boosted, plain)
}

func TestAnalyze_Deterministic(t *testing.T) {
	first := Analyze("great app but crashes sometimes")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Analyze("great app but crashes sometimes"))
	}
}

func TestAnalyze_ConcurrentUse(t *testing.T) {
	texts := []string{"love it", "hate it", "meh, ok", "crashes a lot", "works great"}
	want := make([]apimodels.AnalysisResult, len(texts))
	for i, text := range texts {
		want[i] = Analyze(text)
	}

	var wg sync.WaitGroup
	for w := 0; w < 16; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, text := range texts {
				assert.Equal(t, want[i], Analyze(text))
			}
		}()
	}
	wg.Wait()
}

func TestDegraded_EmptyReport(t *testing.T) {
	for _, kind := range []apimodels.Kind{apimodels.KindInsight, apimodels.KindSummary} {
		result := Degraded(kind)
		require.NotNil(t, result.Insight)
		assert.Equal(t, kind, result.Kind)
		assert.Empty(t, result.Insight.Summary)
		assert.Empty(t, result.Insight.KeyPoints)
		assert.Empty(t, result.Insight.PainPoints)
		assert.Empty(t, result.Insight.FeatureRequests)
		assert.Empty(t, result.Insight.PositiveAspects)
		assert.Nil(t, result.Sentiment)
	}
}
