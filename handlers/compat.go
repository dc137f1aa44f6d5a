package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"

	"github.com/parts-pile/fitment/fitment"
	"github.com/parts-pile/fitment/ui"
)

type compatibilityRequest struct {
	CategoryID      string             `json:"categoryId"`
	PropertyFilters []fitment.Property `json:"propertyFilters"`
	PropertyNames   []string           `json:"propertyNames"`
}

// HandleGetCompatibilities runs a compatibility lookup and responds with an
// HTML fragment: the merged table, or a no-data message when upstream
// matched nothing.
func (h *Handler) HandleGetCompatibilities(c *fiber.Ctx) error {
	if h.cfg.APIToken == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "marketplace API token is not configured")
	}

	var req compatibilityRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	categoryID := req.CategoryID
	if categoryID == "" {
		categoryID = h.cfg.CategoryID
	}

	result, err := h.lookup(c.Context(), categoryID, req.PropertyFilters, req.PropertyNames)
	if err != nil {
		return err
	}
	return render(c, result)
}

// lookup fans the filters out across the multi-valued dimension, merges
// whatever branches succeed, and builds the result fragment. Branch failures
// are logged and dropped; only a total failure surfaces to the caller.
func (h *Handler) lookup(ctx context.Context, categoryID string, filters []fitment.Property, propertyNames []string) (g.Node, error) {
	query := fitment.Normalize(filters, h.cfg.FanoutProperty)
	branches := query.Branches()

	results := h.client.FindAllCompatibilities(ctx, categoryID, branches, propertyNames)

	recordSets := make([][]fitment.Record, 0, len(results))
	failed := 0
	for i, res := range results {
		if res.Err != nil {
			failed++
			log.Printf("[compat] branch %d/%d failed: %v", i+1, len(results), res.Err)
			continue
		}
		recordSets = append(recordSets, res.Records)
	}
	if failed > 0 && failed == len(results) {
		return nil, fiber.NewError(fiber.StatusBadGateway, "the compatibility service is unavailable")
	}

	records := fitment.Merge(recordSets)
	subject := ui.QuerySubject(filters, query.FanValues)
	if len(records) == 0 {
		return ui.NoCompatibilityData(subject), nil
	}
	return ui.CompatibilityTable(subject, h.cfg.TableColumns, filters, records), nil
}
