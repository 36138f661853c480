package constants

// Static route constants
const (
	DashboardRoute        = "/"
	HealthChartRoute      = "/charts/health.png"
	StewardshipChartRoute = "/charts/stewardship.png"
)
