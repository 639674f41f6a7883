// file: internals/seeds/academic/catalogs/seed_catalogs.go
package catalogs

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"academico_backend/internals/features/academic/catalogs/model"
)

type nameSeed struct {
	Name string `json:"name"`
}

func readNames(filePath string) []nameSeed {
	log.Println("📥 Leyendo archivo de catálogo:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ No se pudo leer el JSON: %v", err)
	}
	var inputs []nameSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ No se pudo decodificar el JSON: %v", err)
	}
	return inputs
}

func SeedCareersFromJSON(db *gorm.DB, filePath string) {
	for _, data := range readNames(filePath) {
		row := model.CareerModel{Name: data.Name}
		if err := db.Where("name = ?", data.Name).FirstOrCreate(&row).Error; err != nil {
			log.Printf("❌ No se pudo insertar la carrera '%s': %v", data.Name, err)
			continue
		}
		log.Printf("✅ Carrera '%s' lista", data.Name)
	}
}

func SeedCyclesFromJSON(db *gorm.DB, filePath string) {
	for _, data := range readNames(filePath) {
		row := model.CycleModel{Name: data.Name}
		if err := db.Where("name = ?", data.Name).FirstOrCreate(&row).Error; err != nil {
			log.Printf("❌ No se pudo insertar el ciclo '%s': %v", data.Name, err)
			continue
		}
		log.Printf("✅ Ciclo '%s' listo", data.Name)
	}
}

func SeedCurricularUnitsFromJSON(db *gorm.DB, filePath string) {
	for _, data := range readNames(filePath) {
		row := model.CurricularUnitModel{Name: data.Name}
		if err := db.Where("name = ?", data.Name).FirstOrCreate(&row).Error; err != nil {
			log.Printf("❌ No se pudo insertar la unidad '%s': %v", data.Name, err)
			continue
		}
		log.Printf("✅ Unidad curricular '%s' lista", data.Name)
	}
}
