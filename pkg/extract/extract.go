// Package extract turns uploaded files into plain text suitable for dialogue
// generation. Text-like files pass through directly, PDF, DOCX, and
// spreadsheet documents are parsed, and images are described by a
// vision-capable model.
package extract

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/podforge/podforge/pkg/llm"
)

// ErrUnsupportedType marks an upload whose MIME type we cannot extract from.
var ErrUnsupportedType = errors.New("unsupported file type")

// titleThreshold is the minimum content length before we bother asking the
// model for a title instead of reusing the filename.
const titleThreshold = 100

var textTypes = map[string]bool{
	"text/plain":    true,
	"text/markdown": true,
	"text/csv":      true,
}

// Result is the extracted text of one uploaded file.
type Result struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Extractor converts uploads to text, delegating image description and title
// generation to the chat model.
type Extractor struct {
	llm    *llm.Client
	logger *zap.Logger
}

// New creates an Extractor backed by the given chat client.
func New(client *llm.Client, logger *zap.Logger) *Extractor {
	return &Extractor{llm: client, logger: logger}
}

// Extract converts one uploaded file into title and text content. contentType
// may carry parameters ("text/plain; charset=utf-8"); filename is used as the
// title fallback. Returns ErrUnsupportedType for types it cannot handle.
func (e *Extractor) Extract(ctx context.Context, filename, contentType string, data []byte) (*Result, error) {
	mediaType := contentType
	if parsed, _, err := mime.ParseMediaType(contentType); err == nil {
		mediaType = parsed
	}
	mediaType = strings.ToLower(mediaType)
	if mediaType == "" || mediaType == "application/octet-stream" {
		mediaType = typeByExtension[strings.ToLower(filepath.Ext(filename))]
	}

	var content string
	var err error
	switch {
	case textTypes[mediaType] || strings.HasPrefix(mediaType, "text/"):
		if !utf8.Valid(data) {
			return nil, fmt.Errorf("file %q is not valid UTF-8 text", filename)
		}
		content = string(data)

	case strings.HasPrefix(mediaType, "image/"):
		content, err = e.describeImage(ctx, data)
		if err != nil {
			return nil, fmt.Errorf("describe image: %w", err)
		}

	case mediaType == mimePDF:
		content, err = extractPDF(data)
		if err != nil {
			return nil, err
		}

	case mediaType == mimeDocx:
		content, err = extractDocx(data)
		if err != nil {
			return nil, err
		}

	case mediaType == mimeXlsx || mediaType == mimeXls:
		content, err = extractWorkbook(data)
		if err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, mediaType)
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("file %q has no extractable content", filename)
	}

	title := e.titleFor(ctx, filename, content)

	e.logger.Debug("extracted upload",
		zap.String("filename", filename),
		zap.String("media_type", mediaType),
		zap.Int("content_length", len(content)),
	)

	return &Result{Title: title, Content: content}, nil
}

// describeImage asks the vision model for a detailed textual description of
// the image so the dialogue stage has something to talk about.
func (e *Extractor) describeImage(ctx context.Context, data []byte) (string, error) {
	encoded := base64.StdEncoding.EncodeToString(data)
	resp, err := e.llm.Chat(ctx, llm.ChatRequest{
		Messages: []llm.Message{{
			Role: "user",
			Content: "Describe this image in detail: its subject, any visible text, " +
				"and the overall context. Write several paragraphs of plain prose.",
			Images: []string{encoded},
		}},
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Message.Content), nil
}

// titleFor generates a short title from the content, falling back to the
// filename (sans extension) when the content is trivial or the model fails.
func (e *Extractor) titleFor(ctx context.Context, filename, content string) string {
	fallback := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if fallback == "" {
		fallback = "Untitled"
	}
	if len(content) < titleThreshold {
		return fallback
	}

	snippet := content
	if len(snippet) > 2000 {
		snippet = snippet[:2000]
	}
	resp, err := e.llm.Chat(ctx, llm.ChatRequest{
		Messages: []llm.Message{{
			Role: "user",
			Content: "Write a concise title (at most ten words, no quotes) for the " +
				"following text:\n\n" + snippet,
		}},
	})
	if err != nil {
		e.logger.Warn("title generation failed, using filename", zap.Error(err))
		return fallback
	}

	title := strings.Trim(strings.TrimSpace(resp.Message.Content), `"'`)
	if title == "" {
		return fallback
	}
	return title
}
