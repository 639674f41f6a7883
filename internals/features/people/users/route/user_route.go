// file: internals/features/people/users/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "academico_backend/internals/features/people/users/controller"
	authMw "academico_backend/internals/middlewares/auth"
)

func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userController.NewUserController(db)

	users := r.Group("/users", authMw.IsAdmin("administrar usuarios"))
	users.Get("/", ctl.List)
	users.Get("/:id", ctl.Get)
	users.Post("/", ctl.Create)
	users.Put("/:id", ctl.Update)
	users.Delete("/:id", ctl.Delete)
}
