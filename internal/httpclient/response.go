package httpclient

import "strings"

// SummarizeBody returns a short summary of an HTTP response body suitable
// for log lines. Empty bodies return "empty body"; longer bodies are
// truncated with "...".
func SummarizeBody(body []byte) string {
	s := strings.TrimSpace(string(body))
	if s == "" {
		return "empty body"
	}
	if len(s) > 160 {
		return s[:160] + "..."
	}
	return s
}
