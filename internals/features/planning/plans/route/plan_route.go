// file: internals/features/planning/plans/route/plan_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	planController "academico_backend/internals/features/planning/plans/controller"
	authMw "academico_backend/internals/middlewares/auth"
)

func PlanRoutes(api fiber.Router, db *gorm.DB) {
	ctl := planController.NewPlanController(db)

	// Ruta histórica que consume el front antes de enviar el formulario.
	api.Get("/planificaciones/verificar/:subject_id", ctl.Verify)

	plans := api.Group("/plans")
	plans.Get("/", ctl.List)
	plans.Get("/:id", ctl.Get)

	plans.Post("/", authMw.IsTeacher("crear planes"), ctl.Create)
	plans.Post("/:id/details", authMw.IsTeacher("agregar detalles de plan"), ctl.AddDetail)
	plans.Delete("/:id", authMw.IsAdmin("eliminar planes"), ctl.Delete)
}
