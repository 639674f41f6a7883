package seeds

import (
	"gorm.io/gorm"

	catalogs "academico_backend/internals/seeds/academic/catalogs"
	periods "academico_backend/internals/seeds/academic/periods"
	softskills "academico_backend/internals/seeds/academic/softskills"
	users "academico_backend/internals/seeds/people/users"
)

// RunAllSeeds es idempotente: cada seeder busca por clave natural antes
// de insertar, correr dos veces no duplica nada.
func RunAllSeeds(db *gorm.DB) {
	//* Catálogos
	catalogs.SeedCareersFromJSON(db, "internals/seeds/academic/catalogs/data_careers.json")
	catalogs.SeedCyclesFromJSON(db, "internals/seeds/academic/catalogs/data_cycles.json")
	catalogs.SeedCurricularUnitsFromJSON(db, "internals/seeds/academic/catalogs/data_curricular_units.json")

	//* Habilidades blandas
	softskills.SeedSoftSkillsFromJSON(db, "internals/seeds/academic/softskills/data_soft_skills.json")

	//* Período vigente
	periods.SeedPeriodsFromJSON(db, "internals/seeds/academic/periods/data_periods.json")

	//* Usuario administrador inicial
	users.SeedUsersFromJSON(db, "internals/seeds/people/users/data_users.json")
}
