package dialogue_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/podforge/podforge/pkg/dialogue"
)

const sampleDoc = `{"conversation":[` +
	`{"speaker":"Speaker1","text":"Wow, solar panels are getting cheap—"},` +
	`{"speaker":"Speaker2","text":"—[sighs] Cheaper, sure. Cheap is a stretch."},` +
	`{"speaker":"Speaker1","text":"그래도 이거 완전 대박이에요! [excited]"}` +
	`]}`

var _ = Describe("ScriptParser", func() {
	var parser *dialogue.ScriptParser

	BeforeEach(func() {
		parser = dialogue.NewScriptParser()
	})

	Describe("Feed", func() {
		Context("when the document arrives in one chunk", func() {
			It("extracts every turn", func() {
				parser.Feed(sampleDoc)

				turns := parser.Turns()
				Expect(turns).To(HaveLen(3))
				Expect(turns[0].Speaker).To(Equal(dialogue.Speaker1))
				Expect(turns[1].Speaker).To(Equal(dialogue.Speaker2))
			})
		})

		Context("when the document arrives byte by byte", func() {
			It("extracts the same turns in the same order", func() {
				for i := 0; i < len(sampleDoc); i++ {
					parser.Feed(sampleDoc[i : i+1])
				}

				whole := dialogue.NewScriptParser()
				whole.Feed(sampleDoc)

				Expect(parser.Turns()).To(Equal(whole.Turns()))
			})

			It("only reports growth when a turn closes", func() {
				grown := 0
				for i := 0; i < len(sampleDoc); i++ {
					if parser.Feed(sampleDoc[i : i+1]) {
						grown++
					}
				}

				Expect(grown).To(Equal(3))
			})
		})

		Context("when a prefix of the document is fed", func() {
			It("yields only the turns that have fully closed", func() {
				// Cut inside the second turn's text.
				cut := len(`{"conversation":[{"speaker":"Speaker1","text":"Wow, solar panels are getting cheap—"},{"speaker":"Speaker2","text":"—[si`)
				parser.Feed(sampleDoc[:cut])

				Expect(parser.Turns()).To(HaveLen(1))

				parser.Feed(sampleDoc[cut:])
				Expect(parser.Turns()).To(HaveLen(3))
			})
		})

		Context("when text contains braces and escaped quotes", func() {
			It("does not treat string contents as structure", func() {
				doc := `{"conversation":[{"speaker":"Speaker1","text":"he said \"use {braces}\" and [laughs]"}]}`
				parser.Feed(doc)

				turns := parser.Turns()
				Expect(turns).To(HaveLen(1))
				Expect(turns[0].Text).To(ContainSubstring(`{braces}`))
			})
		})

		Context("when an object in the array is not a valid turn", func() {
			It("skips it and keeps parsing", func() {
				doc := `{"conversation":[` +
					`{"speaker":"Speaker1","text":"first"},` +
					`{"speaker":"Narrator","text":"not a valid role"},` +
					`{"speaker":"Speaker2","text":"second"}` +
					`]}`
				parser.Feed(doc)

				turns := parser.Turns()
				Expect(turns).To(HaveLen(2))
				Expect(turns[0].Text).To(Equal("first"))
				Expect(turns[1].Text).To(Equal("second"))
			})
		})
	})

	Describe("Turns", func() {
		It("returns a copy that later feeds do not mutate", func() {
			parser.Feed(`{"conversation":[{"speaker":"Speaker1","text":"first"}`)
			snapshot := parser.Turns()

			parser.Feed(`,{"speaker":"Speaker2","text":"second"}]}`)

			Expect(snapshot).To(HaveLen(1))
			Expect(parser.Turns()).To(HaveLen(2))
		})
	})

	Describe("Final", func() {
		It("returns the full script for a complete document", func() {
			parser.Feed(sampleDoc)

			script, err := parser.Final()
			Expect(err).NotTo(HaveOccurred())
			Expect(script.Conversation).To(HaveLen(3))
			Expect(script.Conversation).To(Equal(parser.Turns()))
		})

		It("fails on a truncated document", func() {
			parser.Feed(sampleDoc[:len(sampleDoc)-5])

			_, err := parser.Final()
			Expect(err).To(HaveOccurred())
		})

		It("fails on an empty conversation", func() {
			parser.Feed(`{"conversation":[]}`)

			_, err := parser.Final()
			Expect(err).To(HaveOccurred())
		})
	})
})

var _ = Describe("ScriptSchema", func() {
	It("produces an inlined object schema constraining both fields", func() {
		var schema map[string]any
		Expect(json.Unmarshal(dialogue.ScriptSchema(), &schema)).To(Succeed())

		Expect(schema["type"]).To(Equal("object"))
		props, ok := schema["properties"].(map[string]any)
		Expect(ok).To(BeTrue())
		Expect(props).To(HaveKey("conversation"))
		Expect(string(dialogue.ScriptSchema())).NotTo(ContainSubstring("$ref"))
	})
})

var _ = Describe("StreamEvent", func() {
	It("marks complete and error as terminal", func() {
		Expect(dialogue.CompleteEvent(nil).Terminal()).To(BeTrue())
		Expect(dialogue.ErrorEvent("boom").Terminal()).To(BeTrue())
		Expect(dialogue.PartialEvent(nil).Terminal()).To(BeFalse())
	})

	It("round-trips through the wire encoding", func() {
		ev := dialogue.PartialEvent([]dialogue.Turn{{Speaker: dialogue.Speaker1, Text: "hi"}})
		data, err := json.Marshal(ev)
		Expect(err).NotTo(HaveOccurred())

		var decoded dialogue.StreamEvent
		Expect(json.Unmarshal(data, &decoded)).To(Succeed())
		Expect(decoded.Type).To(Equal(dialogue.EventPartial))
		Expect(decoded.Data.Conversation).To(HaveLen(1))
	})
})
