package dialogue

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ScriptParser incrementally extracts completed turns from the raw text of a
// schema-constrained JSON document while it is still being generated. The
// model emits a single object of the Script shape; every prefix of that
// document is scanned for turn objects that have fully closed, so callers can
// publish a usable snapshot without waiting for the document to finish.
//
// The parser is single-pass and stateful: feed chunks in arrival order and do
// not reuse a parser across documents.
type ScriptParser struct {
	buf []byte
	off int

	inString bool
	escaped  bool

	// depth counts open braces and brackets outside of strings. arrayDepth
	// records the nesting depth of the conversation array once its opening
	// bracket is seen; turn objects live exactly one level below it.
	depth      int
	arrayDepth int
	objStart   int

	turns []Turn
}

// NewScriptParser returns a parser ready to consume one document.
func NewScriptParser() *ScriptParser {
	return &ScriptParser{objStart: -1}
}

// Feed appends a chunk of raw model output and scans forward for newly
// completed turn objects. Returns true when at least one new turn became
// parseable. Chunks may split anywhere, including mid-token and inside
// multi-byte characters; scanning only inspects structural ASCII bytes, which
// never occur inside a UTF-8 continuation sequence.
func (p *ScriptParser) Feed(chunk string) bool {
	p.buf = append(p.buf, chunk...)

	grew := false
	for ; p.off < len(p.buf); p.off++ {
		c := p.buf[p.off]

		if p.inString {
			switch {
			case p.escaped:
				p.escaped = false
			case c == '\\':
				p.escaped = true
			case c == '"':
				p.inString = false
			}
			continue
		}

		switch c {
		case '"':
			p.inString = true
		case '{', '[':
			p.depth++
			if c == '[' && p.arrayDepth == 0 {
				p.arrayDepth = p.depth
			}
			if c == '{' && p.arrayDepth != 0 && p.depth == p.arrayDepth+1 {
				p.objStart = p.off
			}
		case '}', ']':
			if c == '}' && p.objStart >= 0 && p.depth == p.arrayDepth+1 {
				if p.appendTurn(p.buf[p.objStart : p.off+1]) {
					grew = true
				}
				p.objStart = -1
			}
			p.depth--
		}
	}
	return grew
}

// appendTurn parses one closed object from the conversation array. Objects
// that do not decode into a valid turn are skipped rather than failing the
// stream; the strict check happens in Final.
func (p *ScriptParser) appendTurn(raw []byte) bool {
	var t Turn
	if err := json.Unmarshal(raw, &t); err != nil {
		return false
	}
	if !t.Speaker.Valid() || t.Text == "" {
		return false
	}
	p.turns = append(p.turns, t)
	return true
}

// Turns returns a copy of the turns parsed so far, in document order.
func (p *ScriptParser) Turns() []Turn {
	out := make([]Turn, len(p.turns))
	copy(out, p.turns)
	return out
}

// Final strictly parses the full accumulated document and returns the
// finished script. Call only after the model stream has ended.
func (p *ScriptParser) Final() (*Script, error) {
	var s Script
	if err := json.Unmarshal(p.buf, &s); err != nil {
		return nil, fmt.Errorf("model output is not a valid script: %w", err)
	}
	if len(s.Conversation) == 0 {
		return nil, errors.New("model output contains no conversation turns")
	}
	for i, t := range s.Conversation {
		if !t.Speaker.Valid() {
			return nil, fmt.Errorf("turn %d has unknown speaker %q", i, t.Speaker)
		}
		if t.Text == "" {
			return nil, fmt.Errorf("turn %d has empty text", i)
		}
	}
	return &s, nil
}
