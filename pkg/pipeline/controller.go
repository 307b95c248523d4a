// Package pipeline drives the full content-to-podcast flow against a podforge
// server: resolve the source, stream the dialogue, then synthesize audio. It
// owns the client-side state machine, including run isolation and the
// guarantee that audio is requested at most once per run.
package pipeline

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/podforge/podforge/pkg/dialogue"
	"github.com/podforge/podforge/pkg/voices"
)

// Stream failure modes surfaced by Run.
var (
	// ErrStreamStalled means no dialogue event arrived within the stall
	// timeout.
	ErrStreamStalled = errors.New("dialogue stream stalled")

	// ErrStreamIncomplete means the stream ended without a complete or
	// error event.
	ErrStreamIncomplete = errors.New("dialogue stream ended without a terminal event")
)

// DefaultStallTimeout is the default maximum gap between dialogue events.
const DefaultStallTimeout = 60 * time.Second

// Source identifies the content to convert. Exactly one of URL, Text, or
// Data should be set.
type Source struct {
	URL string

	Title string
	Text  string

	Filename    string
	ContentType string
	Data        []byte
}

// Outcome is the finished product of one run.
type Outcome struct {
	Title  string
	Script []dialogue.Turn
	Audio  []byte
}

// Controller runs the pipeline. Each call to Run starts a fresh run with its
// own identity; results and events from superseded runs are dropped rather
// than mixed into the current one.
type Controller struct {
	client       *Client
	voices       voices.Assignment
	logger       *zap.Logger
	stallTimeout time.Duration
	persona1     string
	persona2     string

	mu             sync.Mutex
	runID          string
	snap           Snapshot
	audioRequested bool
	onUpdate       func(Snapshot)
}

// NewController creates a controller with the default stall timeout.
func NewController(client *Client, assign voices.Assignment, logger *zap.Logger) *Controller {
	return &Controller{
		client:       client,
		voices:       assign,
		logger:       logger,
		stallTimeout: DefaultStallTimeout,
	}
}

// SetPersonas overrides the speaker personas for dialogue generation. Empty
// values keep the server's language defaults.
func (c *Controller) SetPersonas(persona1, persona2 string) {
	c.persona1 = persona1
	c.persona2 = persona2
}

// SetStallTimeout overrides the maximum gap between dialogue events.
func (c *Controller) SetStallTimeout(d time.Duration) {
	if d > 0 {
		c.stallTimeout = d
	}
}

// OnUpdate registers a callback invoked with a snapshot copy after every
// state change. Must be set before Run; the callback runs on the pipeline
// goroutine and should return quickly.
func (c *Controller) OnUpdate(fn func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUpdate = fn
}

// Snapshot returns a copy of the current run's state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap.clone()
}

// beginRun resets all state and establishes a new run identity. Anything
// still in flight from a previous run becomes stale the moment this returns.
func (c *Controller) beginRun() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.runID = uuid.NewString()
	c.snap = Snapshot{}
	c.audioRequested = false
	return c.runID
}

// markSourceReady records the resolved source for the given run.
func (c *Controller) markSourceReady(runID, title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if runID != c.runID {
		return
	}
	c.snap.Title = title
	c.snap.SourceReady = true
	c.notifyLocked()
}

// applyEvent folds one dialogue event into the run's state. Events for any
// other run are dropped. Partial and complete events replace the turn list
// wholesale. Reports whether the event was terminal.
func (c *Controller) applyEvent(runID string, ev dialogue.StreamEvent) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if runID != c.runID {
		c.logger.Debug("dropping event from superseded run", zap.String("run_id", runID))
		return false
	}

	switch ev.Type {
	case dialogue.EventPartial:
		if ev.Data != nil {
			c.snap.Turns = append(c.snap.Turns[:0:0], ev.Data.Conversation...)
		}
	case dialogue.EventComplete:
		if ev.Data != nil {
			c.snap.Turns = append(c.snap.Turns[:0:0], ev.Data.Conversation...)
		}
		c.snap.ConversationDone = true
	case dialogue.EventError:
		c.snap.FailureMessage = ev.Error
	default:
		c.logger.Warn("ignoring event of unknown type", zap.String("type", string(ev.Type)))
		return false
	}

	c.notifyLocked()
	return ev.Terminal()
}

// claimAudio atomically claims the audio stage for the given run. It succeeds
// at most once per run, and only after the conversation completed cleanly.
// On success it returns the speech inputs built from the final script.
func (c *Controller) claimAudio(runID string) ([]SpeechInput, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if runID != c.runID || c.audioRequested || !c.snap.ConversationDone || c.snap.Failed() {
		return nil, false
	}
	c.audioRequested = true
	c.snap.AudioRequested = true

	inputs := make([]SpeechInput, 0, len(c.snap.Turns))
	for _, turn := range c.snap.Turns {
		inputs = append(inputs, SpeechInput{
			Text:    turn.Text,
			VoiceID: c.voices.For(turn.Speaker),
		})
	}
	c.notifyLocked()
	return inputs, true
}

// markAudioReady records the finished audio for the given run.
func (c *Controller) markAudioReady(runID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if runID != c.runID {
		return
	}
	c.snap.AudioReady = true
	c.notifyLocked()
}

func (c *Controller) fail(runID string, err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if runID == c.runID && !c.snap.Failed() {
		c.snap.FailureMessage = err.Error()
		c.notifyLocked()
	}
	return err
}

func (c *Controller) notifyLocked() {
	if c.onUpdate != nil {
		c.onUpdate(c.snap.clone())
	}
}

// Run executes the full pipeline for one source and blocks until the podcast
// is ready or the run fails.
func (c *Controller) Run(ctx context.Context, src Source, language string) (*Outcome, error) {
	runID := c.beginRun()

	title, content, err := c.resolveSource(ctx, src)
	if err != nil {
		return nil, c.fail(runID, fmt.Errorf("resolve source: %w", err))
	}
	c.markSourceReady(runID, title)

	if err := c.streamDialogue(ctx, runID, GenerateRequest{
		Title:    title,
		Content:  content,
		Language: language,
		Persona1: c.persona1,
		Persona2: c.persona2,
	}); err != nil {
		return nil, err
	}

	snap := c.Snapshot()
	if snap.Failed() {
		return nil, fmt.Errorf("dialogue generation failed: %s", snap.FailureMessage)
	}

	inputs, ok := c.claimAudio(runID)
	if !ok {
		return nil, c.fail(runID, errors.New("audio stage could not be claimed"))
	}

	speech, err := c.client.TextToSpeech(ctx, SpeechRequest{Inputs: inputs})
	if err != nil {
		return nil, c.fail(runID, fmt.Errorf("synthesize audio: %w", err))
	}
	audio, err := base64.StdEncoding.DecodeString(speech.AudioBase64)
	if err != nil {
		return nil, c.fail(runID, fmt.Errorf("decode audio: %w", err))
	}
	c.markAudioReady(runID)

	final := c.Snapshot()
	return &Outcome{Title: final.Title, Script: final.Turns, Audio: audio}, nil
}

// resolveSource turns the user's input into title and content, calling the
// server for URLs and file uploads.
func (c *Controller) resolveSource(ctx context.Context, src Source) (string, string, error) {
	switch {
	case src.URL != "":
		res, err := c.client.Scrape(ctx, src.URL)
		if err != nil {
			return "", "", err
		}
		return res.Title, res.Content, nil

	case len(src.Data) > 0:
		res, err := c.client.ProcessFile(ctx, src.Filename, src.ContentType, src.Data)
		if err != nil {
			return "", "", err
		}
		return res.Title, res.Content, nil

	case src.Text != "":
		title := src.Title
		if title == "" {
			title = "Pasted text"
		}
		return title, src.Text, nil

	default:
		return "", "", errors.New("no source provided")
	}
}

// streamDialogue consumes the event stream under a stall watchdog. The
// watchdog resets on every event; firing cancels the stream.
func (c *Controller) streamDialogue(ctx context.Context, runID string, req GenerateRequest) error {
	streamCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan dialogue.StreamEvent)
	errc := make(chan error, 1)
	go func() {
		errc <- c.client.GeneratePodcast(streamCtx, req, func(ev dialogue.StreamEvent) error {
			select {
			case events <- ev:
				return nil
			case <-streamCtx.Done():
				return streamCtx.Err()
			}
		})
	}()

	timer := time.NewTimer(c.stallTimeout)
	defer timer.Stop()

	terminal := false
	for {
		select {
		case ev := <-events:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(c.stallTimeout)
			if c.applyEvent(runID, ev) {
				terminal = true
			}

		case err := <-errc:
			if err != nil {
				return c.fail(runID, fmt.Errorf("dialogue stream: %w", err))
			}
			if !terminal {
				return c.fail(runID, ErrStreamIncomplete)
			}
			return nil

		case <-timer.C:
			cancel()
			<-errc
			return c.fail(runID, ErrStreamStalled)
		}
	}
}
