// file: internals/features/academic/periods/route/period_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	periodController "academico_backend/internals/features/academic/periods/controller"
	authMw "academico_backend/internals/middlewares/auth"
)

func PeriodRoutes(r fiber.Router, db *gorm.DB) {
	ctl := periodController.NewPeriodController(db)

	g := r.Group("/periods")
	g.Get("/", ctl.List)
	g.Get("/active", ctl.Active)
	g.Post("/", authMw.IsAdmin("períodos"), ctl.Create)
	g.Put("/:id", authMw.IsAdmin("períodos"), ctl.Update)
	g.Delete("/:id", authMw.IsAdmin("períodos"), ctl.Delete)
}
