// file: internals/route/details/academic_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	catalogRoute "academico_backend/internals/features/academic/catalogs/route"
	periodRoute "academico_backend/internals/features/academic/periods/route"
	softSkillRoute "academico_backend/internals/features/academic/softskills/route"
	subjectRoute "academico_backend/internals/features/academic/subjects/route"
)

// AcademicRoutes monta catálogos, períodos, habilidades y asignaturas.
func AcademicRoutes(api fiber.Router, db *gorm.DB) {
	catalogRoute.CatalogRoutes(api, db)
	periodRoute.PeriodRoutes(api, db)
	softSkillRoute.SoftSkillRoutes(api, db)
	subjectRoute.SubjectRoutes(api, db)
}
