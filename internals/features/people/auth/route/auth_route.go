// file: internals/features/people/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "academico_backend/internals/features/people/auth/controller"
	"academico_backend/internals/middlewares"
)

// AuthPublicRoutes cuelga del grupo público: solo el login.
func AuthPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)
	api.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
}

// AuthPrivateRoutes cuelga del grupo autenticado.
func AuthPrivateRoutes(api fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)
	api.Get("/me", ctl.Me)
	api.Post("/change-password", ctl.ChangePassword)
}
