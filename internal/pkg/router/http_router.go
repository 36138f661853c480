package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/treescount/treedash/app/controllers"
	"github.com/treescount/treedash/internal/pkg/constants"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// Dashboard page; borough/species query params drive the selection
	app.Get(constants.DashboardRoute, controllers.HandleDashboard)

	// PNG chart exports
	app.Get(constants.HealthChartRoute, controllers.HandleHealthChartPNG)
	app.Get(constants.StewardshipChartRoute, controllers.HandleStewardshipChartPNG)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
