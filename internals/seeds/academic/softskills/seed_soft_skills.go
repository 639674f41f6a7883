// file: internals/seeds/academic/softskills/seed_soft_skills.go
package softskills

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"academico_backend/internals/features/academic/softskills/model"
)

type softSkillSeed struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Activities  []string `json:"activities"`
}

func SeedSoftSkillsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Leyendo archivo de habilidades:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ No se pudo leer el JSON: %v", err)
	}
	var inputs []softSkillSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ No se pudo decodificar el JSON: %v", err)
	}

	for _, data := range inputs {
		skill := model.SoftSkillModel{Name: data.Name, Description: data.Description}
		if err := db.Where("name = ?", data.Name).FirstOrCreate(&skill).Error; err != nil {
			log.Printf("❌ No se pudo insertar la habilidad '%s': %v", data.Name, err)
			continue
		}
		for _, desc := range data.Activities {
			activity := model.SkillActivityModel{SkillID: skill.ID, Description: desc}
			if err := db.Where("skill_id = ? AND description = ?", skill.ID, desc).
				FirstOrCreate(&activity).Error; err != nil {
				log.Printf("❌ No se pudo insertar la actividad de '%s': %v", data.Name, err)
			}
		}
		log.Printf("✅ Habilidad '%s' lista (%d actividades)", data.Name, len(data.Activities))
	}
}
