package llm

import "context"

// Provider abstracts the remote inference API: one batched prompt in, one
// raw (possibly malformed) textual payload out.
type Provider interface {
	Analyze(ctx context.Context, system string, user string) (*Response, error)
}

type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

type Response struct {
	Content string
	Usage   Usage
}
