package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/parts-pile/fitment/ui"
)

// CustomErrorHandler renders application errors as HTML. API and htmx
// callers swap the response into an existing document, so they get a bare
// fragment; everything else gets a full page.
func CustomErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	c.Status(code)
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTML)
	if strings.HasPrefix(c.Path(), "/api/") || strings.HasPrefix(c.Path(), "/search") {
		return ui.ErrorFragment(code, err.Error()).Render(c)
	}
	return ui.ErrorPage(code, err.Error()).Render(c)
}
