// Package scrape fetches a web page and extracts its readable article text.
package scrape

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"go.uber.org/zap"
)

// maxBodyBytes caps how much of a page is read; article pages beyond this are
// almost certainly not worth converting.
const maxBodyBytes = 10 << 20

// Result is the extracted content of one page.
type Result struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Scraper fetches URLs and extracts their main article content.
type Scraper struct {
	httpClient *http.Client
	logger     *zap.Logger
}

// New creates a Scraper.
func New(logger *zap.Logger) *Scraper {
	return &Scraper{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// Scrape fetches rawURL and returns its readable title and text content.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*Result, error) {
	pageURL, err := url.Parse(rawURL)
	if err != nil || (pageURL.Scheme != "http" && pageURL.Scheme != "https") || pageURL.Host == "" {
		return nil, fmt.Errorf("invalid url %q", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; podforge/1.0)")
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch url: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	article, err := readability.FromReader(bytes.NewReader(body), pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text: %w", err)
	}

	content := strings.TrimSpace(article.TextContent)
	if content == "" {
		return nil, fmt.Errorf("no readable content at %s", pageURL)
	}

	title := strings.TrimSpace(article.Title)
	if title == "" {
		title = fallbackTitle(body)
	}
	if title == "" {
		title = pageURL.Host
	}

	s.logger.Debug("scraped page",
		zap.String("url", pageURL.String()),
		zap.String("title", title),
		zap.Int("content_length", len(content)),
	)

	return &Result{Title: title, Content: content}, nil
}

// fallbackTitle pulls a title out of raw HTML when readability finds none.
// Prefers og:title, then the document title element.
func fallbackTitle(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		if t := strings.TrimSpace(og); t != "" {
			return t
		}
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
