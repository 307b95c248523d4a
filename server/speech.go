package server

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/podforge/podforge/pkg/tts"
)

type speechInput struct {
	Text    string `json:"text"`
	VoiceID string `json:"voiceId"`
}

type speechRequest struct {
	Inputs []speechInput `json:"inputs"`
}

type speechResponse struct {
	AudioBase64      string `json:"audioBase64"`
	ProcessingTimeMs int64  `json:"processingTimeMs"`
}

// handleTextToSpeech voices a complete dialogue in one upstream call and
// returns the audio base64 encoded.
func (s *Server) handleTextToSpeech(c *fiber.Ctx) error {
	startTime := time.Now()

	var req speechRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return s.errorJSON(c, fiber.StatusBadRequest, "invalid request body", err)
	}
	if len(req.Inputs) == 0 {
		return s.errorJSON(c, fiber.StatusBadRequest, "inputs must not be empty", nil)
	}

	inputs := make([]tts.Input, 0, len(req.Inputs))
	for _, in := range req.Inputs {
		if in.Text == "" || in.VoiceID == "" {
			return s.errorJSON(c, fiber.StatusBadRequest, "every input needs text and voiceId", nil)
		}
		inputs = append(inputs, tts.Input{Text: in.Text, VoiceID: in.VoiceID})
	}

	audio, err := s.tts.SynthesizeDialogue(c.Context(), inputs)
	if err != nil {
		s.logger.Error("speech synthesis failed", zap.Error(err), zap.Int("inputs", len(inputs)))
		return s.errorJSON(c, fiber.StatusInternalServerError, "speech synthesis failed", err)
	}

	return c.JSON(speechResponse{
		AudioBase64:      base64.StdEncoding.EncodeToString(audio),
		ProcessingTimeMs: time.Since(startTime).Milliseconds(),
	})
}
