package server

import "github.com/gofiber/fiber/v2"

// errorBody is the uniform error payload. Details carries the underlying
// error text and is omitted in production.
type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// errorJSON writes a structured error response.
func (s *Server) errorJSON(c *fiber.Ctx, status int, msg string, err error) error {
	body := errorBody{Error: msg}
	if err != nil && !s.config.production() {
		body.Details = err.Error()
	}
	return c.Status(status).JSON(body)
}
