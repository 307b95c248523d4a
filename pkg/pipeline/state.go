package pipeline

import "github.com/podforge/podforge/pkg/dialogue"

// StepName identifies one stage shown to the user.
type StepName string

// The four user-visible stages, in pipeline order.
const (
	StepScrape       StepName = "scrape"
	StepConversation StepName = "conversation"
	StepAudio        StepName = "audio"
	StepReady        StepName = "ready"
)

// StepStatus is the display state of one stage.
type StepStatus string

const (
	StatusPending    StepStatus = "pending"
	StatusInProgress StepStatus = "in_progress"
	StatusComplete   StepStatus = "complete"
)

// Step pairs a stage with its current display status.
type Step struct {
	Name   StepName
	Status StepStatus
}

// Snapshot is an immutable view of one run's progress. Turn slices are
// replaced wholesale on every dialogue event, never merged, so a snapshot
// always reflects exactly one upstream event.
type Snapshot struct {
	Title            string
	SourceReady      bool
	Turns            []dialogue.Turn
	ConversationDone bool
	AudioRequested   bool
	AudioReady       bool
	FailureMessage   string
}

// Failed reports whether the run hit a terminal error.
func (s Snapshot) Failed() bool {
	return s.FailureMessage != ""
}

// Steps projects a snapshot onto the four display stages. The projection is
// pure: the same snapshot always yields the same steps.
func Steps(s Snapshot) []Step {
	scrape := StatusInProgress
	if s.SourceReady {
		scrape = StatusComplete
	}

	conversation := StatusPending
	switch {
	case s.ConversationDone:
		conversation = StatusComplete
	case len(s.Turns) > 0:
		conversation = StatusInProgress
	}

	audio := StatusPending
	switch {
	case s.AudioReady:
		audio = StatusComplete
	case s.AudioRequested:
		audio = StatusInProgress
	}

	ready := StatusPending
	if s.AudioReady {
		ready = StatusComplete
	}

	return []Step{
		{Name: StepScrape, Status: scrape},
		{Name: StepConversation, Status: conversation},
		{Name: StepAudio, Status: audio},
		{Name: StepReady, Status: ready},
	}
}

func (s Snapshot) clone() Snapshot {
	out := s
	out.Turns = make([]dialogue.Turn, len(s.Turns))
	copy(out.Turns, s.Turns)
	return out
}
