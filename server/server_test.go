package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/podforge/podforge/pkg/dialogue"
	"github.com/podforge/podforge/pkg/llm"
	"github.com/podforge/podforge/pkg/voices"
)

const testKeyEnv = "PODFORGE_TEST_TTS_KEY"

// scriptJSON is the document the fake model "generates", split so that turns
// close across chunk boundaries.
var scriptChunks = []string{
	`{"conversation": [{"speaker": "Speaker1", "text": "Hello and welcome."}`,
	`, {"speaker": "Speaker2", "text": "Thanks, happy to be here [laughs]."}`,
	`]}`,
}

// fakeOllama streams scriptChunks as NDJSON chat chunks and records the
// request it saw.
func fakeOllama(t *testing.T) (*httptest.Server, *llm.ChatRequest) {
	t.Helper()
	var seen llm.ChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&seen))
		w.Header().Set("Content-Type", "application/x-ndjson")
		enc := json.NewEncoder(w)
		for _, piece := range scriptChunks {
			enc.Encode(llm.StreamChunk{Message: llm.Message{Role: "assistant", Content: piece}})
		}
		enc.Encode(llm.StreamChunk{Done: true})
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func fakeElevenLabs(t *testing.T, audio []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/text-to-dialogue", r.URL.Path)
		require.NotEmpty(t, r.Header.Get("xi-api-key"))
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write(audio)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testServer(t *testing.T, llmURL, ttsURL string) *Server {
	t.Helper()
	t.Setenv(testKeyEnv, "test-key")
	cfg := Default()
	cfg.LLM.Endpoint = llmURL
	cfg.TTS.BaseURL = ttsURL
	cfg.TTS.APIKeyEnv = testKeyEnv
	return New(cfg, zap.NewNop())
}

func postJSON(path string, payload any) *http.Request {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHealthEndpoint(t *testing.T) {
	s := testServer(t, "http://localhost:0", "http://localhost:0")

	resp, err := s.app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var result map[string]string
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, "ok", result["status"])
}

func TestGeneratePodcastRequiresContent(t *testing.T) {
	s := testServer(t, "http://localhost:0", "http://localhost:0")

	resp, err := s.app.Test(postJSON("/api/generate-podcast", map[string]string{"title": "t"}))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var eb errorBody
	require.NoError(t, json.Unmarshal(body, &eb))
	assert.Contains(t, eb.Error, "content")
	assert.NotContains(t, string(body), `"type"`, "no stream events on a rejected request")
}

func TestGeneratePodcastStreamsEvents(t *testing.T) {
	upstream, seen := fakeOllama(t)
	s := testServer(t, upstream.URL, "http://localhost:0")

	resp, err := s.app.Test(postJSON("/api/generate-podcast", map[string]string{
		"content":  "Article about solar panels.",
		"title":    "Solar Panels",
		"language": "english",
	}), 10000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")

	body, _ := io.ReadAll(resp.Body)
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	require.GreaterOrEqual(t, len(lines), 2, "expected at least one partial before the terminal event")

	var events []dialogue.StreamEvent
	for _, line := range lines {
		var ev dialogue.StreamEvent
		require.NoError(t, json.Unmarshal([]byte(line), &ev), "line %q", line)
		events = append(events, ev)
	}

	// All but the last are partials; the last is the single terminal event.
	for _, ev := range events[:len(events)-1] {
		assert.Equal(t, dialogue.EventPartial, ev.Type)
	}
	last := events[len(events)-1]
	require.Equal(t, dialogue.EventComplete, last.Type)
	require.NotNil(t, last.Data)
	require.Len(t, last.Data.Conversation, 2)
	assert.Equal(t, dialogue.Speaker1, last.Data.Conversation[0].Speaker)
	assert.Equal(t, dialogue.Speaker2, last.Data.Conversation[1].Speaker)

	// First partial appears as soon as the first turn closes.
	require.NotNil(t, events[0].Data)
	assert.Equal(t, "Hello and welcome.", events[0].Data.Conversation[0].Text)

	// The upstream request is streaming and schema-constrained.
	require.NotNil(t, seen.Stream)
	assert.True(t, *seen.Stream)
	assert.NotEmpty(t, seen.Format, "schema must ride along with the chat request")
	require.Len(t, seen.Messages, 1)
	assert.Contains(t, seen.Messages[0].Content, "Solar Panels")
}

func TestGeneratePodcastUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusInternalServerError)
	}))
	defer upstream.Close()

	s := testServer(t, upstream.URL, "http://localhost:0")
	resp, err := s.app.Test(postJSON("/api/generate-podcast", map[string]string{"content": "c"}), 10000)
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	require.Len(t, lines, 1, "a failed stream carries exactly one event")

	var ev dialogue.StreamEvent
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &ev))
	assert.Equal(t, dialogue.EventError, ev.Type)
	assert.NotEmpty(t, ev.Error)
}

func TestTextToSpeech(t *testing.T) {
	eleven := fakeElevenLabs(t, []byte("mp3-data"))
	s := testServer(t, "http://localhost:0", eleven.URL)

	resp, err := s.app.Test(postJSON("/api/text-to-speech", map[string]any{
		"inputs": []map[string]string{
			{"text": "Hello.", "voiceId": "voice-a"},
			{"text": "Hi.", "voiceId": "voice-b"},
		},
	}), 10000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var out speechResponse
	require.NoError(t, json.Unmarshal(body, &out))

	audio, err := base64.StdEncoding.DecodeString(out.AudioBase64)
	require.NoError(t, err)
	assert.Equal(t, []byte("mp3-data"), audio)
	assert.GreaterOrEqual(t, out.ProcessingTimeMs, int64(0))
}

func TestTextToSpeechValidation(t *testing.T) {
	s := testServer(t, "http://localhost:0", "http://localhost:0")

	for name, payload := range map[string]any{
		"empty inputs":    map[string]any{"inputs": []map[string]string{}},
		"missing voiceId": map[string]any{"inputs": []map[string]string{{"text": "hi"}}},
		"missing text":    map[string]any{"inputs": []map[string]string{{"voiceId": "v"}}},
	} {
		resp, err := s.app.Test(postJSON("/api/text-to-speech", payload))
		require.NoError(t, err, name)
		assert.Equal(t, 400, resp.StatusCode, name)
	}
}

func TestScrapeRejectsBadURL(t *testing.T) {
	s := testServer(t, "http://localhost:0", "http://localhost:0")

	for _, raw := range []string{"", "not a url", "ftp://example.com/x"} {
		resp, err := s.app.Test(postJSON("/api/scrape", map[string]string{"url": raw}))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode, "url %q", raw)
	}
}

func TestProcessFileUnsupportedType(t *testing.T) {
	s := testServer(t, "http://localhost:0", "http://localhost:0")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := map[string][]string{
		"Content-Disposition": {fmt.Sprintf(`form-data; name="file"; filename=%q`, "archive.tar")},
		"Content-Type":        {"application/x-tar"},
	}
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	part.Write([]byte("ustar"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/api/process-file", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := s.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestVoicesCatalog(t *testing.T) {
	s := testServer(t, "http://localhost:0", "http://localhost:0")

	resp, err := s.app.Test(httptest.NewRequest("GET", "/api/voices", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var out struct {
		Voices []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"voices"`
		Defaults map[string]string `json:"defaults"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.NotEmpty(t, out.Voices)
	for _, v := range out.Voices {
		assert.NotEmpty(t, v.ID)
		assert.NotEmpty(t, v.Name)
	}

	// The per-role defaults point at catalog entries.
	assert.Equal(t, voices.DefaultSpeaker1, out.Defaults["speaker1"])
	assert.Equal(t, voices.DefaultSpeaker2, out.Defaults["speaker2"])
}
