package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/parts-pile/fitment/fitment"
)

type makesRequest struct {
	Year string `json:"year"`
}

type modelsRequest struct {
	Year string `json:"year"`
	Make string `json:"make"`
}

// HandleGetMakes lists the makes the marketplace knows for a model year.
func (h *Handler) HandleGetMakes(c *fiber.Ctx) error {
	if h.cfg.APIToken == "" {
		return c.Status(401).JSON(fiber.Map{"error": "marketplace API token is not configured"})
	}

	var req makesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Year == "" {
		return c.Status(400).JSON(fiber.Map{"error": "year is required"})
	}

	makes, err := h.client.PropertyValues(c.Context(), h.cfg.CategoryID,
		[]fitment.Property{{Name: "Year", Value: req.Year}}, "Make")
	if err != nil {
		log.Printf("[vehicle] makes lookup for year %s failed: %v", req.Year, err)
		return c.Status(502).JSON(fiber.Map{"error": "the compatibility service is unavailable"})
	}

	return c.JSON(fiber.Map{"makes": makes})
}

// HandleGetModels lists the models for a model year and make.
func (h *Handler) HandleGetModels(c *fiber.Ctx) error {
	if h.cfg.APIToken == "" {
		return c.Status(401).JSON(fiber.Map{"error": "marketplace API token is not configured"})
	}

	var req modelsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Year == "" || req.Make == "" {
		return c.Status(400).JSON(fiber.Map{"error": "year and make are required"})
	}

	models, err := h.client.PropertyValues(c.Context(), h.cfg.CategoryID,
		[]fitment.Property{
			{Name: "Year", Value: req.Year},
			{Name: "Make", Value: req.Make},
		}, "Model")
	if err != nil {
		log.Printf("[vehicle] models lookup for %s %s failed: %v", req.Year, req.Make, err)
		return c.Status(502).JSON(fiber.Map{"error": "the compatibility service is unavailable"})
	}

	return c.JSON(fiber.Map{"models": models})
}
