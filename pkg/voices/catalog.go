// Package voices holds the speech-engine voice catalog and the mapping from
// conversation speaker roles to concrete voice identifiers.
package voices

import "github.com/podforge/podforge/pkg/dialogue"

// Voice describes one selectable speech-engine voice.
type Voice struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Style string `json:"style"`
}

// Default voice IDs for the two speaker roles.
const (
	DefaultSpeaker1 = "exsUS4vynmxd379XN4yO" // Blondie
	DefaultSpeaker2 = "NNl6r8mD7vthiJatiJt1" // Bradford
)

var catalog = []Voice{
	{ID: "exsUS4vynmxd379XN4yO", Name: "Blondie", Style: "conversational, warm"},
	{ID: "NNl6r8mD7vthiJatiJt1", Name: "Bradford", Style: "conversational, dry"},
	{ID: "JBFqnCBsd6RMkjVDRZzb", Name: "George", Style: "narration, calm"},
	{ID: "21m00Tcm4TlvDq8ikWAM", Name: "Rachel", Style: "narration, clear"},
	{ID: "AZnzlk1XvdvUeBnXmlld", Name: "Domi", Style: "energetic, young"},
	{ID: "TxGEqnHWrfWFTfGW9XjX", Name: "Josh", Style: "deep, serious"},
}

// Catalog returns the selectable voices in display order.
func Catalog() []Voice {
	out := make([]Voice, len(catalog))
	copy(out, catalog)
	return out
}

// Assignment maps the two fixed speaker roles to voice IDs. The zero value is
// not usable; construct with NewAssignment.
type Assignment struct {
	Speaker1 string
	Speaker2 string
}

// NewAssignment builds an assignment, substituting defaults for empty IDs.
func NewAssignment(speaker1, speaker2 string) Assignment {
	if speaker1 == "" {
		speaker1 = DefaultSpeaker1
	}
	if speaker2 == "" {
		speaker2 = DefaultSpeaker2
	}
	return Assignment{Speaker1: speaker1, Speaker2: speaker2}
}

// For returns the voice ID assigned to the given speaker role.
func (a Assignment) For(sp dialogue.Speaker) string {
	if sp == dialogue.Speaker2 {
		return a.Speaker2
	}
	return a.Speaker1
}
