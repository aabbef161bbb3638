package response_models

import "time"

// ChatResponse carries the reply text plus a provenance tag: the
// provider name when the AI path succeeded, "fallback" for a canned
// reply.
type ChatResponse struct {
	Message   string    `json:"message"`
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
}
