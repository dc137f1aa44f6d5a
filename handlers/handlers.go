package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"

	"github.com/parts-pile/fitment/config"
	"github.com/parts-pile/fitment/fitment"
	"github.com/parts-pile/fitment/marketplace"
)

// MetadataClient is the slice of the marketplace client the handlers call.
type MetadataClient interface {
	PropertyValues(ctx context.Context, categoryID string, filters []fitment.Property, propertyName string) ([]string, error)
	FindAllCompatibilities(ctx context.Context, categoryID string, branches [][]fitment.Property, propertyNames []string) []marketplace.BranchResult
}

// Handler holds the injected configuration and upstream client. Request
// logic reads nothing from process state outside this struct.
type Handler struct {
	cfg    *config.Config
	client MetadataClient
}

func New(cfg *config.Config, client MetadataClient) *Handler {
	return &Handler{cfg: cfg, client: client}
}

// render sets the content type to HTML and renders the component.
func render(c *fiber.Ctx, component g.Node) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTML)
	return component.Render(c.Response().BodyWriter())
}
