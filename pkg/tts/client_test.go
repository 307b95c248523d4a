package tts

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSynthesizeDialogue(t *testing.T) {
	var gotPath, gotKey string
	var gotReq dialogueRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("xi-api-key")
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotReq))

		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("ID3fake-mp3-bytes"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "", zap.NewNop())
	audio, err := c.SynthesizeDialogue(context.Background(), []Input{
		{Text: "Hello there.", VoiceID: "voice-a"},
		{Text: "Hi, good to be here.", VoiceID: "voice-b"},
	})
	require.NoError(t, err)

	assert.Equal(t, "/v1/text-to-dialogue", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, DefaultModelID, gotReq.ModelID)
	require.Len(t, gotReq.Inputs, 2)
	assert.Equal(t, "voice-b", gotReq.Inputs[1].VoiceID)
	assert.Equal(t, []byte("ID3fake-mp3-bytes"), audio)
}

func TestSynthesizeDialogueUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"invalid voice"}`, http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "", zap.NewNop())
	_, err := c.SynthesizeDialogue(context.Background(), []Input{{Text: "x", VoiceID: "v"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "invalid voice")
}

func TestSynthesizeDialogueRequiresKeyAndInputs(t *testing.T) {
	c := NewClient("http://localhost:0", "", "", zap.NewNop())
	_, err := c.SynthesizeDialogue(context.Background(), []Input{{Text: "x", VoiceID: "v"}})
	assert.Error(t, err)
	assert.False(t, c.Configured())

	c = NewClient("http://localhost:0", "key", "", zap.NewNop())
	_, err = c.SynthesizeDialogue(context.Background(), nil)
	assert.Error(t, err)
}
