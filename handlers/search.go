package handlers

import (
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/parts-pile/fitment/fitment"
	"github.com/parts-pile/fitment/ui"
)

// HandleHome serves the search page.
func (h *Handler) HandleHome(c *fiber.Ctx) error {
	return render(c, ui.SearchPage(searchYears()))
}

// searchYears covers next year's models back to the oldest the marketplace
// catalog carries.
func searchYears() []string {
	years := []string{}
	for y := time.Now().Year() + 1; y >= 1981; y-- {
		years = append(years, strconv.Itoa(y))
	}
	return years
}

type searchForm struct {
	Years []string `form:"years"`
	Make  string   `form:"make"`
	Model string   `form:"model"`
}

// HandleSearchMakes fills the make selector for the first chosen year. The
// selector degrades to its placeholder when upstream is unavailable.
func (h *Handler) HandleSearchMakes(c *fiber.Ctx) error {
	var form searchForm
	if err := c.BodyParser(&form); err != nil || len(form.Years) == 0 {
		return render(c, ui.MakeOptions(nil))
	}

	makes, err := h.client.PropertyValues(c.Context(), h.cfg.CategoryID,
		[]fitment.Property{{Name: "Year", Value: form.Years[0]}}, "Make")
	if err != nil {
		log.Printf("[search] make options for year %s failed: %v", form.Years[0], err)
		return render(c, ui.MakeOptions(nil))
	}
	return render(c, ui.MakeOptions(makes))
}

// HandleSearchModels fills the model selector for the first chosen year and
// the chosen make.
func (h *Handler) HandleSearchModels(c *fiber.Ctx) error {
	var form searchForm
	if err := c.BodyParser(&form); err != nil || len(form.Years) == 0 || form.Make == "" {
		return render(c, ui.ModelOptions(nil))
	}

	models, err := h.client.PropertyValues(c.Context(), h.cfg.CategoryID,
		[]fitment.Property{
			{Name: "Year", Value: form.Years[0]},
			{Name: "Make", Value: form.Make},
		}, "Model")
	if err != nil {
		log.Printf("[search] model options for %s %s failed: %v", form.Years[0], form.Make, err)
		return render(c, ui.ModelOptions(nil))
	}
	return render(c, ui.ModelOptions(models))
}

// HandleSearch runs the lookup for the search form. Each selected year
// becomes its own Year filter, so picking several years fans out.
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	if h.cfg.APIToken == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "marketplace API token is not configured")
	}

	var form searchForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid search form")
	}

	filters := []fitment.Property{}
	for _, year := range form.Years {
		if year != "" {
			filters = append(filters, fitment.Property{Name: "Year", Value: year})
		}
	}
	if form.Make != "" {
		filters = append(filters, fitment.Property{Name: "Make", Value: form.Make})
	}
	if form.Model != "" {
		filters = append(filters, fitment.Property{Name: "Model", Value: form.Model})
	}

	result, err := h.lookup(c.Context(), h.cfg.CategoryID, filters, h.cfg.TableColumns)
	if err != nil {
		return err
	}
	return render(c, result)
}
