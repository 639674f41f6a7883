// file: internals/route/details/planning_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardRoute "academico_backend/internals/features/dashboard/route"
	enrollmentRoute "academico_backend/internals/features/enrollment/route"
	assignmentRoute "academico_backend/internals/features/planning/assignments/route"
	planRoute "academico_backend/internals/features/planning/plans/route"
	reportRoute "academico_backend/internals/features/planning/reports/route"
)

// PlanningRoutes monta matrículas, planes, reportes, asignaciones y tablero.
func PlanningRoutes(api fiber.Router, db *gorm.DB) {
	enrollmentRoute.EnrollmentRoutes(api, db)
	planRoute.PlanRoutes(api, db)
	reportRoute.ReportRoutes(api, db)
	assignmentRoute.AssignmentRoutes(api, db)
	dashboardRoute.DashboardRoutes(api, db)
}
