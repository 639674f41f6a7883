// file: internals/features/dashboard/route/dashboard_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardController "academico_backend/internals/features/dashboard/controller"
	authMw "academico_backend/internals/middlewares/auth"
)

func DashboardRoutes(api fiber.Router, db *gorm.DB) {
	ctl := dashboardController.NewDashboardController(db)

	dashboard := api.Group("/dashboard", authMw.IsCoordinator("ver el tablero"))
	dashboard.Get("/stats", ctl.Stats)
	dashboard.Get("/filtros-reporte", ctl.ReportFilters)
	dashboard.Get("/reporte-general", ctl.GeneralReport)
}
