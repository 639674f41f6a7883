// file: internals/seeds/academic/periods/seed_periods.go
package periods

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"academico_backend/internals/features/academic/periods/model"
)

type periodSeed struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

func SeedPeriodsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Leyendo archivo de períodos:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ No se pudo leer el JSON: %v", err)
	}
	var inputs []periodSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ No se pudo decodificar el JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.PeriodModel
		if err := db.Where("name = ?", data.Name).First(&existing).Error; err == nil {
			log.Printf("ℹ️ El período '%s' ya existe, se omite.", data.Name)
			continue
		}
		row := model.PeriodModel{Name: data.Name, Active: data.Active}
		err := db.Transaction(func(tx *gorm.DB) error {
			if data.Active {
				// un solo período activo a la vez
				if err := tx.Model(&model.PeriodModel{}).
					Where("active = ?", true).Update("active", false).Error; err != nil {
					return err
				}
			}
			return tx.Create(&row).Error
		})
		if err != nil {
			log.Printf("❌ No se pudo insertar el período '%s': %v", data.Name, err)
			continue
		}
		log.Printf("✅ Período '%s' insertado", data.Name)
	}
}
