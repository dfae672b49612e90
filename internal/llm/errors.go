package llm

import "strings"

// quotaMarkers are the substrings providers use to signal rate or quota
// exhaustion. Status codes are folded into error strings by the SDK, so a
// message scan covers both.
var quotaMarkers = []string{"429", "quota", "rate limit", "rate_limit", "too many requests"}

// IsQuotaError reports whether err indicates the provider throttled or
// quota-limited us, which warrants a harder backoff than an ordinary
// failure.
func IsQuotaError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range quotaMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
