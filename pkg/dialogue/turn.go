// Package dialogue provides the internal representation of generated podcast
// scripts and the newline-delimited event protocol used to stream them.
package dialogue

// Speaker identifies one of the two fixed conversation roles.
type Speaker string

const (
	Speaker1 Speaker = "Speaker1"
	Speaker2 Speaker = "Speaker2"
)

// Valid reports whether s is one of the two known speaker roles.
func (s Speaker) Valid() bool {
	return s == Speaker1 || s == Speaker2
}

// Turn is a single utterance in the generated conversation. Text may embed
// bracketed paralinguistic annotations like [laughs] and em-dash interruption
// markers; those are content to be voiced, not metadata.
type Turn struct {
	Speaker Speaker `json:"speaker" jsonschema:"enum=Speaker1,enum=Speaker2"`
	Text    string  `json:"text" jsonschema_description:"The text spoken by this speaker, including natural speech patterns and nuances like [laughs], [pauses], [excited], etc."`
}

// Script is the complete schema-constrained generation result. Turn order is
// the order in which lines are voiced.
type Script struct {
	Conversation []Turn `json:"conversation" jsonschema_description:"A natural podcast conversation between two speakers discussing the content"`
}
