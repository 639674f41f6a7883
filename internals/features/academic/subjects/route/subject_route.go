// file: internals/features/academic/subjects/route/subject_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectController "academico_backend/internals/features/academic/subjects/controller"
	authMw "academico_backend/internals/middlewares/auth"
)

func SubjectRoutes(r fiber.Router, db *gorm.DB) {
	ctl := subjectController.NewSubjectController(db)

	g := r.Group("/subjects")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
	g.Post("/", authMw.IsAdmin("asignaturas"), ctl.Create)
	g.Post("/import", authMw.IsAdmin("asignaturas"), ctl.Import)
	g.Put("/:id", authMw.IsAdmin("asignaturas"), ctl.Update)
	g.Delete("/:id", authMw.IsAdmin("asignaturas"), ctl.Delete)
}
