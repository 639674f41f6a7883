// file: internals/seeds/people/users/seed_users.go
package users

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"academico_backend/internals/features/people/users/model"
	authHelper "academico_backend/internals/helpers/auth"
)

type userSeed struct {
	IDNumber  string `json:"id_number"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Leyendo archivo de usuarios:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ No se pudo leer el JSON: %v", err)
	}
	var inputs []userSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ No se pudo decodificar el JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.UserModel
		if err := db.Where("email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ El usuario '%s' ya existe, se omite.", data.Email)
			continue
		}

		hashed, err := authHelper.HashPassword(data.Password)
		if err != nil {
			log.Printf("❌ No se pudo hashear la contraseña de '%s': %v", data.Email, err)
			continue
		}
		row := model.UserModel{
			IDNumber:  data.IDNumber,
			FirstName: data.FirstName,
			LastName:  data.LastName,
			Email:     data.Email,
			Password:  hashed,
			Role:      data.Role,
			// la clave sembrada es provisional
			MustChangePassword: true,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ No se pudo insertar el usuario '%s': %v", data.Email, err)
			continue
		}
		log.Printf("✅ Usuario '%s' (%s) insertado", data.Email, data.Role)
	}
}
