package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/podforge/podforge/pkg/dialogue"
)

// Client is the HTTP client for a podforge server. It owns the NDJSON frame
// reassembly for the dialogue stream; callers only ever see whole events.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client for the server at baseURL.
func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		// No overall timeout: the dialogue stream is open-ended and the
		// controller enforces its own stall policy.
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// SourceContent is the server's response for both scraping and file
// processing.
type SourceContent struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// GenerateRequest is the body of a dialogue generation call.
type GenerateRequest struct {
	Title    string `json:"title,omitempty"`
	Content  string `json:"content"`
	Language string `json:"language,omitempty"`
	Persona1 string `json:"persona1,omitempty"`
	Persona2 string `json:"persona2,omitempty"`
}

// SpeechInput is one dialogue line with its assigned voice.
type SpeechInput struct {
	Text    string `json:"text"`
	VoiceID string `json:"voiceId"`
}

// SpeechRequest is the body of a speech synthesis call.
type SpeechRequest struct {
	Inputs []SpeechInput `json:"inputs"`
}

// SpeechResponse carries the synthesized audio, base64 encoded.
type SpeechResponse struct {
	AudioBase64      string `json:"audioBase64"`
	ProcessingTimeMs int64  `json:"processingTimeMs"`
}

type serverError struct {
	Error string `json:"error"`
}

// Scrape asks the server to fetch and extract a URL.
func (c *Client) Scrape(ctx context.Context, url string) (*SourceContent, error) {
	body, err := c.postJSON(ctx, "/api/scrape", map[string]string{"url": url})
	if err != nil {
		return nil, err
	}
	var out SourceContent
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode scrape response: %w", err)
	}
	return &out, nil
}

// ProcessFile uploads a file for text extraction.
func (c *Client) ProcessFile(ctx context.Context, filename, contentType string, data []byte) (*SourceContent, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := make(map[string][]string)
	hdr["Content-Disposition"] = []string{fmt.Sprintf(`form-data; name="file"; filename=%q`, filename)}
	hdr["Content-Type"] = []string{contentType}
	part, err := mw.CreatePart(hdr)
	if err != nil {
		return nil, fmt.Errorf("create form part: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("write form part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/process-file", &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp.StatusCode, respBody)
	}

	var out SourceContent
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("decode process-file response: %w", err)
	}
	return &out, nil
}

// GeneratePodcast streams dialogue events, invoking fn for each decoded event
// in arrival order. Lines that fail to decode are logged and skipped; the
// stream goes on. Returns nil once a terminal event has been delivered or the
// stream ends.
func (c *Client) GeneratePodcast(ctx context.Context, genReq GenerateRequest, fn func(dialogue.StreamEvent) error) error {
	body, err := json.Marshal(genReq)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate-podcast", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return statusError(resp.StatusCode, respBody)
	}

	var decoder LineDecoder
	buf := make([]byte, 4096)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			for _, line := range decoder.Append(buf[:n]) {
				done, err := c.deliver(line, fn)
				if err != nil {
					return err
				}
				if done {
					return nil
				}
			}
		}
		if readErr == io.EOF {
			if line, ok := decoder.Flush(); ok {
				if _, err := c.deliver(line, fn); err != nil {
					return err
				}
			}
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("read stream: %w", readErr)
		}
	}
}

// deliver decodes one NDJSON line and hands it to fn. Malformed lines are
// skipped. Reports whether the event was terminal.
func (c *Client) deliver(line string, fn func(dialogue.StreamEvent) error) (bool, error) {
	if strings.TrimSpace(line) == "" {
		return false, nil
	}
	var ev dialogue.StreamEvent
	if err := json.Unmarshal([]byte(line), &ev); err != nil {
		c.logger.Warn("skipping malformed stream line", zap.Error(err), zap.Int("length", len(line)))
		return false, nil
	}
	if err := fn(ev); err != nil {
		return false, err
	}
	return ev.Terminal(), nil
}

// TextToSpeech submits the full dialogue for synthesis.
func (c *Client) TextToSpeech(ctx context.Context, speechReq SpeechRequest) (*SpeechResponse, error) {
	start := time.Now()
	body, err := c.postJSON(ctx, "/api/text-to-speech", speechReq)
	if err != nil {
		return nil, err
	}
	var out SpeechResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode speech response: %w", err)
	}
	c.logger.Debug("speech synthesized",
		zap.Int64("processing_ms", out.ProcessingTimeMs),
		zap.Duration("round_trip", time.Since(start)),
	)
	return &out, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp.StatusCode, respBody)
	}
	return respBody, nil
}

func statusError(code int, body []byte) error {
	var se serverError
	if json.Unmarshal(body, &se) == nil && se.Error != "" {
		return fmt.Errorf("server returned %d: %s", code, se.Error)
	}
	return fmt.Errorf("server returned %d: %s", code, strings.TrimSpace(string(body)))
}
