package server

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/podforge/podforge/pkg/extract"
)

// handleProcessFile extracts text from an uploaded file. Text files pass
// through; images are described by the vision model.
func (s *Server) handleProcessFile(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return s.errorJSON(c, fiber.StatusBadRequest, "a file upload named 'file' is required", err)
	}

	maxBytes := int64(s.config.MaxUploadMB) * 1024 * 1024
	if header.Size > maxBytes {
		return s.errorJSON(c, fiber.StatusBadRequest, "file is too large", nil)
	}

	f, err := header.Open()
	if err != nil {
		return s.errorJSON(c, fiber.StatusInternalServerError, "failed to read upload", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes))
	if err != nil {
		return s.errorJSON(c, fiber.StatusInternalServerError, "failed to read upload", err)
	}

	result, err := s.extractor.Extract(c.Context(), header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedType) {
			return s.errorJSON(c, fiber.StatusBadRequest, "unsupported file type", err)
		}
		s.logger.Error("file extraction failed", zap.String("filename", header.Filename), zap.Error(err))
		return s.errorJSON(c, fiber.StatusInternalServerError, "failed to extract content from file", err)
	}

	return c.JSON(result)
}
