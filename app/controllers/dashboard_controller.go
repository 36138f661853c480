package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/treescount/treedash/internal/pkg/census"
	"github.com/treescount/treedash/internal/pkg/env"
	"github.com/treescount/treedash/internal/pkg/viewmodel"
)

// HandleDashboard renders the dashboard page. Unknown selections fall back
// to the default (first sorted) options instead of erroring; the dropdowns
// only ever submit valid values anyway.
func HandleDashboard(c *fiber.Ctx) error {
	t := census.GetTable()
	if t == nil {
		return datasetUnavailable(c)
	}

	sel, err := querySelection(c, t)
	if err != nil {
		sel = defaultSelection(t)
	}

	vm := viewmodel.Dashboard{
		Title:           "Trees in NYC",
		Boroughs:        t.Boroughs(),
		Species:         t.Species(),
		SelectedBorough: sel.Borough,
		SelectedSpecies: sel.Species,
		SnapshotID:      t.SnapshotID(),
		RowCount:        t.Len(),
		IsDev:           env.IsDev(),
	}
	return c.Render("dashboard", vm)
}
