// file: internals/features/academic/catalogs/route/catalog_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	catalogController "academico_backend/internals/features/academic/catalogs/controller"
	authMw "academico_backend/internals/middlewares/auth"
)

// Lectura: cualquier rol autenticado. Escritura: solo admin.
func CatalogRoutes(r fiber.Router, db *gorm.DB) {
	ctl := catalogController.NewCatalogController(db)

	g := r.Group("/catalogs")
	g.Get("/:kind", ctl.List)
	g.Post("/:kind", authMw.IsAdmin("catálogos"), ctl.Create)
	g.Put("/:kind/:id", authMw.IsAdmin("catálogos"), ctl.Update)
	g.Delete("/:kind/:id", authMw.IsAdmin("catálogos"), ctl.Delete)
}
