// file: internals/features/planning/assignments/route/assignment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentController "academico_backend/internals/features/planning/assignments/controller"
	authMw "academico_backend/internals/middlewares/auth"
)

func AssignmentRoutes(api fiber.Router, db *gorm.DB) {
	ctl := assignmentController.NewAssignmentController(db)

	assignments := api.Group("/assignments")
	assignments.Get("/", ctl.List)
	assignments.Get("/aux-data", ctl.AuxData)

	assignments.Post("/", authMw.IsAdmin("crear asignaciones"), ctl.Assign)
	assignments.Delete("/:id", authMw.IsAdmin("eliminar asignaciones"), ctl.Unassign)
}
