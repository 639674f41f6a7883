// file: internals/features/enrollment/route/enrollment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollController "academico_backend/internals/features/enrollment/controller"
	authMw "academico_backend/internals/middlewares/auth"
)

func EnrollmentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := enrollController.NewEnrollmentController(db)

	g := r.Group("/enrollments")
	g.Get("/", ctl.ListByPeriod)
	g.Post("/", authMw.IsAdmin("matrículas"), ctl.Enroll)
	g.Post("/:id/details", authMw.IsAdmin("matrículas"), ctl.AddDetail)
	g.Put("/details/:detail_id/grade", authMw.IsTeacher("notas"), ctl.SetGrade)
	g.Get("/:id", ctl.Get)
	g.Delete("/:id", authMw.IsAdmin("matrículas"), ctl.Delete)
}
