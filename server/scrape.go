package server

import (
	"encoding/json"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type scrapeRequest struct {
	URL string `json:"url"`
}

// handleScrape fetches a URL and returns its readable title and text.
func (s *Server) handleScrape(c *fiber.Ctx) error {
	var req scrapeRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return s.errorJSON(c, fiber.StatusBadRequest, "invalid request body", err)
	}

	parsed, err := url.Parse(req.URL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return s.errorJSON(c, fiber.StatusBadRequest, "a valid http or https url is required", nil)
	}

	result, err := s.scraper.Scrape(c.Context(), req.URL)
	if err != nil {
		s.logger.Error("scrape failed", zap.String("url", req.URL), zap.Error(err))
		return s.errorJSON(c, fiber.StatusInternalServerError, "failed to extract content from url", err)
	}

	return c.JSON(result)
}
