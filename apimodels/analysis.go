package apimodels

// Kind selects which analysis the remote model (or local fallback) performs.
type Kind string

const (
	KindSentiment Kind = "sentiment"
	KindInsight   Kind = "insight"
	KindSummary   Kind = "summary"
)

// Valid reports whether k is one of the supported analysis kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindSentiment, KindInsight, KindSummary:
		return true
	}
	return false
}

// Label is the sentiment classification of a single input.
type Label string

const (
	LabelPositive Label = "POSITIVE"
	LabelNegative Label = "NEGATIVE"
	LabelNeutral  Label = "NEUTRAL"
)

type AnalysisRequest struct {
	// Inputs is the ordered list of feedback texts to analyze.
	Inputs []string `json:"inputs"`

	// Kind selects sentiment, insight, or summary analysis.
	Kind Kind `json:"kind"`
}

// SentimentScore is the per-input result for the sentiment kind.
type SentimentScore struct {
	// Score is the normalized sentiment in [0,1]; 0.5 is neutral.
	Score float64 `json:"score"`

	Label Label `json:"label"`

	// Confidence is the magnitude of the underlying compound score, in [0,1].
	Confidence float64 `json:"confidence"`
}

// InsightReport is the per-input result for the insight and summary kinds.
type InsightReport struct {
	Summary         string   `json:"summary"`
	KeyPoints       []string `json:"key_points"`
	PainPoints      []string `json:"pain_points"`
	FeatureRequests []string `json:"feature_requests"`
	PositiveAspects []string `json:"positive_aspects"`
}

// AnalysisResult is a tagged union: exactly one of Sentiment or Insight is
// set, matching Kind.
type AnalysisResult struct {
	Kind      Kind            `json:"kind"`
	Sentiment *SentimentScore `json:"sentiment,omitempty"`
	Insight   *InsightReport  `json:"insight,omitempty"`
}

type AnalysisResponse struct {
	Results []AnalysisResult `json:"results"`

	Metadata AnalysisMetadata `json:"metadata"`
}

type AnalysisMetadata struct {
	// Duration is the wall time spent serving the request.
	Duration string `json:"duration"`

	// CacheHits and CacheMisses count cache outcomes for this request only.
	CacheHits   int `json:"cacheHits"`
	CacheMisses int `json:"cacheMisses"`

	// Degraded is true when any input was served by the local fallback
	// because the remote path was unavailable.
	Degraded bool `json:"degraded"`
}

// Progress is pushed to an optional sink as batches complete.
type Progress struct {
	BatchesDone    int `json:"batchesDone"`
	BatchesTotal   int `json:"batchesTotal"`
	ItemsProcessed int `json:"itemsProcessed"`
	ItemsTotal     int `json:"itemsTotal"`
}
