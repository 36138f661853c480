package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/treescount/treedash/internal/pkg/census"
	"github.com/treescount/treedash/internal/pkg/chart"
	"github.com/treescount/treedash/internal/pkg/treestats"
)

// HandleHealthChartPNG renders the health-proportion chart as a PNG export.
func HandleHealthChartPNG(c *fiber.Ctx) error {
	t := census.GetTable()
	if t == nil {
		return datasetUnavailable(c)
	}
	sel, err := querySelection(c, t)
	if err != nil {
		return badRequest(c, err.Error())
	}

	proportions := treestats.HealthProportions(t.Filter(sel.Borough, sel.Species))
	png, err := chart.HealthPNG(proportions, sel.Borough, sel.Species)
	if err != nil {
		log.Printf("failed to render health chart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Chart rendering failed"})
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// HandleStewardshipChartPNG renders the stacked stewardship chart as a PNG.
func HandleStewardshipChartPNG(c *fiber.Ctx) error {
	t := census.GetTable()
	if t == nil {
		return datasetUnavailable(c)
	}
	sel, err := querySelection(c, t)
	if err != nil {
		return badRequest(c, err.Error())
	}

	impact := treestats.Stewardship(t.Filter(sel.Borough, sel.Species))
	png, err := chart.StewardshipPNG(impact, sel.Borough, sel.Species)
	if err != nil {
		log.Printf("failed to render stewardship chart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Chart rendering failed"})
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
