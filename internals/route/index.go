// file: internals/route/index.go
package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMw "academico_backend/internals/middlewares/auth"
	routeDetails "academico_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api")
	routeDetails.PeoplePublicRoutes(public, db)

	// ===================== PRIVATE (JWT) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/a",
		authMw.AuthJWT(authMw.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	log.Println("[INFO] Mounting People routes...")
	routeDetails.PeoplePrivateRoutes(private, db)

	log.Println("[INFO] Mounting Academic routes...")
	routeDetails.AcademicRoutes(private, db)

	log.Println("[INFO] Mounting Planning routes...")
	routeDetails.PlanningRoutes(private, db)
}
