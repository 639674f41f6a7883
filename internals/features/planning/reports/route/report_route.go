// file: internals/features/planning/reports/route/report_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportController "academico_backend/internals/features/planning/reports/controller"
	authMw "academico_backend/internals/middlewares/auth"
)

func ReportRoutes(api fiber.Router, db *gorm.DB) {
	ctl := reportController.NewReportController(db)

	// payload aplanado para el PDF, colgado del plan
	api.Get("/plans/:id/pdf-data", ctl.BuildPdfData)

	reports := api.Group("/reports")
	reports.Get("/", ctl.List)

	reports.Post("/", authMw.IsTeacher("generar reportes"), ctl.Generate)
	reports.Post("/bulk-conclusions", authMw.IsCoordinator("anotar conclusiones"), ctl.BulkSaveConclusions)
	reports.Delete("/:id", authMw.IsAdmin("eliminar reportes"), ctl.Delete)
}
