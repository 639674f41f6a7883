// file: internals/features/people/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "academico_backend/internals/features/people/students/controller"
	authMw "academico_backend/internals/middlewares/auth"
)

func StudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentController.NewStudentController(db)

	g := r.Group("/students")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
	g.Post("/", authMw.IsAdmin("estudiantes"), ctl.Create)
	g.Post("/import", authMw.IsAdmin("estudiantes"), ctl.Import)
	g.Put("/:id", authMw.IsAdmin("estudiantes"), ctl.Update)
	g.Delete("/:id", authMw.IsAdmin("estudiantes"), ctl.Delete)
}
