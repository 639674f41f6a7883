// file: internals/features/academic/softskills/route/soft_skill_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	skillController "academico_backend/internals/features/academic/softskills/controller"
	authMw "academico_backend/internals/middlewares/auth"
)

func SoftSkillRoutes(r fiber.Router, db *gorm.DB) {
	ctl := skillController.NewSoftSkillController(db)

	g := r.Group("/soft-skills")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
	g.Post("/", authMw.IsAdmin("habilidades blandas"), ctl.Create)
	g.Put("/:id", authMw.IsAdmin("habilidades blandas"), ctl.Update)
	g.Delete("/:id", authMw.IsAdmin("habilidades blandas"), ctl.Delete)
	g.Post("/:id/activities", authMw.IsAdmin("habilidades blandas"), ctl.AddActivity)
	g.Delete("/:id/activities/:activity_id", authMw.IsAdmin("habilidades blandas"), ctl.DeleteActivity)
}
