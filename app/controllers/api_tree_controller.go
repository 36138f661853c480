package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/treescount/treedash/internal/pkg/census"
	"github.com/treescount/treedash/internal/pkg/treestats"
)

// HandlePing answers the API liveness check.
func HandlePing(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ping": "pong"})
}

// HandleDatasetInfo reports provenance of the loaded census snapshot.
func HandleDatasetInfo(c *fiber.Ctx) error {
	t := census.GetTable()
	if t == nil {
		return datasetUnavailable(c)
	}
	return c.JSON(fiber.Map{
		"snapshot_id": t.SnapshotID(),
		"loaded_at":   t.LoadedAt().UTC().Format(time.RFC3339),
		"rows":        t.Len(),
	})
}

// HandleBoroughs returns the sorted distinct borough options.
func HandleBoroughs(c *fiber.Ctx) error {
	t := census.GetTable()
	if t == nil {
		return datasetUnavailable(c)
	}
	return c.JSON(fiber.Map{"boroughs": t.Boroughs()})
}

// HandleSpecies returns the sorted distinct species options.
func HandleSpecies(c *fiber.Ctx) error {
	t := census.GetTable()
	if t == nil {
		return datasetUnavailable(c)
	}
	return c.JSON(fiber.Map{"species": t.Species()})
}

// HandleHealthProportions returns the Good/Fair/Poor breakdown of the
// selection. An empty selection result is not an error: the proportions are
// all zero and the chart renders degenerate.
func HandleHealthProportions(c *fiber.Ctx) error {
	t := census.GetTable()
	if t == nil {
		return datasetUnavailable(c)
	}
	sel, err := querySelection(c, t)
	if err != nil {
		return badRequest(c, err.Error())
	}

	rows := t.Filter(sel.Borough, sel.Species)
	total := 0
	for _, r := range rows {
		total += r.Count
	}
	return c.JSON(fiber.Map{
		"borough":     sel.Borough,
		"species":     sel.Species,
		"total":       total,
		"proportions": treestats.HealthProportions(rows),
	})
}

// HandleStewardship returns the per-steward-bucket health breakdown of the
// selection, one series per health state with raw counts for hover text.
func HandleStewardship(c *fiber.Ctx) error {
	t := census.GetTable()
	if t == nil {
		return datasetUnavailable(c)
	}
	sel, err := querySelection(c, t)
	if err != nil {
		return badRequest(c, err.Error())
	}

	impact := treestats.Stewardship(t.Filter(sel.Borough, sel.Species))
	return c.JSON(fiber.Map{
		"borough": sel.Borough,
		"species": sel.Species,
		"buckets": impact.Buckets,
		"series":  impact.Series,
	})
}
