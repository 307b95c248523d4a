// Package llm provides internal representations of LLM inference API requests
// and responses plus a streaming client for Ollama-compatible endpoints.
package llm

// ErrorResponse represents an error from the LLM API.
type ErrorResponse struct {
	Error string `json:"error"`
}
