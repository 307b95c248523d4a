package server

import (
	"bufio"
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/podforge/podforge/pkg/dialogue"
	"github.com/podforge/podforge/pkg/llm"
	"github.com/podforge/podforge/pkg/prompts"
)

// generateTimeout bounds a single dialogue generation end to end.
const generateTimeout = 10 * time.Minute

type generateRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Language string `json:"language"`
	Persona1 string `json:"persona1"`
	Persona2 string `json:"persona2"`
}

// handleGeneratePodcast turns source content into a two-speaker script,
// streamed as newline-delimited JSON events. The stream is zero or more
// partial events followed by exactly one complete or error event; nothing is
// written after the terminal event.
func (s *Server) handleGeneratePodcast(c *fiber.Ctx) error {
	startTime := time.Now()

	var req generateRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		s.logger.Error("failed to parse request", zap.Error(err))
		return s.errorJSON(c, fiber.StatusBadRequest, "invalid request body", err)
	}
	if req.Content == "" {
		return s.errorJSON(c, fiber.StatusBadRequest, "content is required", nil)
	}

	lang := prompts.Normalize(req.Language)
	if req.Language == "" {
		lang = prompts.Normalize(s.config.DefaultLanguage)
	}

	prompt := prompts.Render(lang, prompts.Params{
		Title:    req.Title,
		Content:  req.Content,
		Persona1: req.Persona1,
		Persona2: req.Persona2,
	})

	temperature := s.config.LLM.Temperature
	chatReq := llm.ChatRequest{
		Messages: []llm.Message{{Role: "user", Content: prompt}},
		Format:   dialogue.ScriptSchema(),
		Options:  &llm.Options{Temperature: &temperature},
	}

	s.logger.Debug("generating dialogue",
		zap.String("title", req.Title),
		zap.String("language", string(lang)),
		zap.Int("content_length", len(req.Content)),
	)

	c.Set("Content-Type", "text/plain; charset=utf-8")
	c.Set("Transfer-Encoding", "chunked")

	// The fiber context is recycled once the handler returns, so the
	// stream writer runs under its own context.
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
		defer cancel()
		s.streamDialogue(ctx, w, chatReq, startTime)
	}))

	return nil
}

// streamDialogue consumes the model stream, publishing a partial event each
// time new turns become parseable and finishing with a single terminal event.
func (s *Server) streamDialogue(ctx context.Context, w *bufio.Writer, chatReq llm.ChatRequest, startTime time.Time) {
	parser := dialogue.NewScriptParser()

	err := s.llm.ChatStream(ctx, chatReq, func(chunk llm.StreamChunk) error {
		if parser.Feed(chunk.Message.Content) {
			if err := writeEvent(w, dialogue.PartialEvent(parser.Turns())); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("dialogue generation failed", zap.Error(err))
		writeEvent(w, dialogue.ErrorEvent("dialogue generation failed"))
		return
	}

	script, err := parser.Final()
	if err != nil {
		s.logger.Error("model produced an invalid script", zap.Error(err))
		writeEvent(w, dialogue.ErrorEvent("model produced an invalid script"))
		return
	}

	s.logger.Info("dialogue generated",
		zap.Int("turns", len(script.Conversation)),
		zap.Duration("duration", time.Since(startTime)),
	)
	writeEvent(w, dialogue.CompleteEvent(script.Conversation))
}

// writeEvent writes one event as a JSON line and flushes it to the client
// immediately.
func writeEvent(w *bufio.Writer, ev dialogue.StreamEvent) error {
	line, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	if _, err := w.Write(line); err != nil {
		return err
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return err
	}
	return w.Flush()
}
