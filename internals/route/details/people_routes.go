// file: internals/route/details/people_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "academico_backend/internals/features/people/auth/route"
	studentRoute "academico_backend/internals/features/people/students/route"
	userRoute "academico_backend/internals/features/people/users/route"
)

// PeoplePublicRoutes: login (con su rate limiter propio).
func PeoplePublicRoutes(api fiber.Router, db *gorm.DB) {
	authRoute.AuthPublicRoutes(api, db)
}

// PeoplePrivateRoutes: sesión, usuarios y estudiantes.
func PeoplePrivateRoutes(api fiber.Router, db *gorm.DB) {
	authRoute.AuthPrivateRoutes(api, db)
	userRoute.UserRoutes(api, db)
	studentRoute.StudentRoutes(api, db)
}
