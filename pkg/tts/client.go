// Package tts provides the speech-synthesis client for the ElevenLabs
// dialogue endpoint: a full ordered turn list in, one concatenated audio
// asset out.
package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultBaseURL is the production ElevenLabs API endpoint.
const DefaultBaseURL = "https://api.elevenlabs.io"

// DefaultModelID is the multilingual synthesis model used for dialogue.
const DefaultModelID = "eleven_multilingual_v2"

// Input is one line of dialogue to voice.
type Input struct {
	Text    string `json:"text"`
	VoiceID string `json:"voice_id"`
}

type dialogueRequest struct {
	Inputs  []Input `json:"inputs"`
	ModelID string  `json:"model_id,omitempty"`
	Seed    *int    `json:"seed,omitempty"`
}

// Client calls the speech engine. Construct one at process start with
// explicit configuration and share it by reference; do not re-instantiate per
// request.
type Client struct {
	baseURL    string
	apiKey     string
	modelID    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a speech-synthesis client. Empty baseURL and modelID fall
// back to the production defaults.
func NewClient(baseURL, apiKey, modelID string, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if modelID == "" {
		modelID = DefaultModelID
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		modelID: modelID,
		httpClient: &http.Client{
			// Long scripts take a while to voice
			Timeout: 3 * time.Minute,
		},
		logger: logger,
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// SynthesizeDialogue submits the full ordered input list in one request and
// returns the concatenated MP3 audio. Inputs must already be validated
// non-empty by the caller.
func (c *Client) SynthesizeDialogue(ctx context.Context, inputs []Input) ([]byte, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("speech engine API key is not configured")
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("no dialogue inputs")
	}

	body, err := json.Marshal(dialogueRequest{Inputs: inputs, ModelID: c.modelID})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/text-to-dialogue", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("speech engine returned %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read audio: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("speech engine returned empty audio")
	}

	c.logger.Debug("dialogue synthesized",
		zap.Int("inputs", len(inputs)),
		zap.Int("audio_bytes", len(audio)),
		zap.Duration("duration", time.Since(start)),
	)

	return audio, nil
}
