package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/treescount/treedash/internal/pkg/census"
)

type selection struct {
	Borough string
	Species string
}

// defaultSelection mirrors the initial dropdown state: the first sorted
// option of each selector.
func defaultSelection(t *census.Table) selection {
	var sel selection
	if boroughs := t.Boroughs(); len(boroughs) > 0 {
		sel.Borough = boroughs[0]
	}
	if species := t.Species(); len(species) > 0 {
		sel.Species = species[0]
	}
	return sel
}

// querySelection reads the borough/species query params and validates them
// against the loaded table. Missing params fall back to the defaults;
// unknown values are an error (the JSON API answers 400, the page falls
// back to the defaults instead).
func querySelection(c *fiber.Ctx, t *census.Table) (selection, error) {
	sel := defaultSelection(t)
	if borough := c.Query("borough"); borough != "" {
		sel.Borough = borough
	}
	if species := c.Query("species"); species != "" {
		sel.Species = species
	}

	if sel.Borough != "" && !t.HasBorough(sel.Borough) {
		return sel, fmt.Errorf("unknown borough %q", sel.Borough)
	}
	if sel.Species != "" && !t.HasSpecies(sel.Species) {
		return sel, fmt.Errorf("unknown species %q", sel.Species)
	}
	return sel, nil
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": message})
}

func datasetUnavailable(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "service_unavailable", "message": "Census dataset not loaded"})
}
