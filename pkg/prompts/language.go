// Package prompts holds the localized prompt-template catalog used to request
// podcast conversations. Templates are pure data: every language maps to a
// fixed parameter set and nothing else branches on language.
package prompts

// Language is a catalog key, e.g. "english" or "korean".
type Language string

const (
	Korean   Language = "korean"
	English  Language = "english"
	Chinese  Language = "chinese"
	Japanese Language = "japanese"
	Spanish  Language = "spanish"
	French   Language = "french"
	German   Language = "german"
)

// DefaultLanguage is used when the caller does not select a language.
const DefaultLanguage = English

// Option describes a selectable language for catalog listings.
type Option struct {
	Code       Language `json:"code"`
	Label      string   `json:"label"`
	NativeName string   `json:"nativeName"`
}

// Supported lists the catalog languages in display order.
var Supported = []Option{
	{Code: Korean, Label: "Korean", NativeName: "한국어"},
	{Code: English, Label: "English", NativeName: "English"},
	{Code: Chinese, Label: "Chinese", NativeName: "中文"},
	{Code: Japanese, Label: "Japanese", NativeName: "日本語"},
	{Code: Spanish, Label: "Spanish", NativeName: "Español"},
	{Code: French, Label: "French", NativeName: "Français"},
	{Code: German, Label: "German", NativeName: "Deutsch"},
}

// Normalize maps a raw language string to a catalog key, falling back to the
// default language for unknown or empty values.
func Normalize(raw string) Language {
	lang := Language(raw)
	if _, ok := catalog[lang]; ok {
		return lang
	}
	return DefaultLanguage
}
