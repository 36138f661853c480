package apiv1

import (
	"github.com/gofiber/fiber/v2"

	// Delegate to the controllers so the JSON shapes stay consistent with
	// the rest of the app.
	"github.com/treescount/treedash/app/controllers"
)

// APIServer carries the v1 JSON API handlers.
type APIServer struct{}

// NewAPIServer creates a new API server instance
func NewAPIServer() *APIServer {
	return &APIServer{}
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	return controllers.HandlePing(c)
}

// GetDataset reports snapshot provenance for the loaded census table.
func (s *APIServer) GetDataset(c *fiber.Ctx) error {
	return controllers.HandleDatasetInfo(c)
}

// GetBoroughs returns the borough selector options.
func (s *APIServer) GetBoroughs(c *fiber.Ctx) error {
	return controllers.HandleBoroughs(c)
}

// GetSpecies returns the species selector options.
func (s *APIServer) GetSpecies(c *fiber.Ctx) error {
	return controllers.HandleSpecies(c)
}

// GetHealth returns the health-proportion chart data for a selection.
func (s *APIServer) GetHealth(c *fiber.Ctx) error {
	return controllers.HandleHealthProportions(c)
}

// GetStewardship returns the stewardship-impact chart data for a selection.
func (s *APIServer) GetStewardship(c *fiber.Ctx) error {
	return controllers.HandleStewardship(c)
}

// RegisterHandlers mounts the v1 routes, mirroring public/docs/v1/openapi.yml.
func RegisterHandlers(r fiber.Router, s *APIServer) {
	r.Get("/ping", s.GetPing)
	r.Get("/dataset", s.GetDataset)
	r.Get("/boroughs", s.GetBoroughs)
	r.Get("/species", s.GetSpecies)
	r.Get("/health", s.GetHealth)
	r.Get("/stewardship", s.GetStewardship)
}
