// file: internals/seeds/seeds_test.go
package seeds

import (
	"testing"

	catalogModel "academico_backend/internals/features/academic/catalogs/model"
	skillModel "academico_backend/internals/features/academic/softskills/model"
	catalogs "academico_backend/internals/seeds/academic/catalogs"
	softskills "academico_backend/internals/seeds/academic/softskills"
	"academico_backend/internals/testutil"
)

// Correr un seeder dos veces no puede duplicar filas.
func TestSeedCareersIsIdempotent(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	catalogs.SeedCareersFromJSON(tx, "academic/catalogs/data_careers.json")
	var first int64
	if err := tx.Model(&catalogModel.CareerModel{}).Count(&first).Error; err != nil {
		t.Fatalf("contar carreras: %v", err)
	}
	if first == 0 {
		t.Fatal("el seeder no insertó ninguna carrera")
	}

	catalogs.SeedCareersFromJSON(tx, "academic/catalogs/data_careers.json")
	var second int64
	if err := tx.Model(&catalogModel.CareerModel{}).Count(&second).Error; err != nil {
		t.Fatalf("contar carreras: %v", err)
	}
	if second != first {
		t.Fatalf("segunda corrida: %d carreras, quería %d", second, first)
	}
}

func TestSeedSoftSkillsIsIdempotent(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	softskills.SeedSoftSkillsFromJSON(tx, "academic/softskills/data_soft_skills.json")
	var skills, activities int64
	if err := tx.Model(&skillModel.SoftSkillModel{}).Count(&skills).Error; err != nil {
		t.Fatalf("contar habilidades: %v", err)
	}
	if err := tx.Model(&skillModel.SkillActivityModel{}).Count(&activities).Error; err != nil {
		t.Fatalf("contar actividades: %v", err)
	}
	if skills == 0 || activities == 0 {
		t.Fatalf("seed incompleto: %d habilidades, %d actividades", skills, activities)
	}

	softskills.SeedSoftSkillsFromJSON(tx, "academic/softskills/data_soft_skills.json")
	var skills2, activities2 int64
	if err := tx.Model(&skillModel.SoftSkillModel{}).Count(&skills2).Error; err != nil {
		t.Fatalf("contar habilidades: %v", err)
	}
	if err := tx.Model(&skillModel.SkillActivityModel{}).Count(&activities2).Error; err != nil {
		t.Fatalf("contar actividades: %v", err)
	}
	if skills2 != skills || activities2 != activities {
		t.Fatalf("segunda corrida duplicó filas: %d/%d vs %d/%d", skills2, activities2, skills, activities)
	}
}
