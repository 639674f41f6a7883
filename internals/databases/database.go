package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"academico_backend/internals/configs"
	catalogModel "academico_backend/internals/features/academic/catalogs/model"
	importModel "academico_backend/internals/features/academic/imports/model"
	periodModel "academico_backend/internals/features/academic/periods/model"
	skillModel "academico_backend/internals/features/academic/softskills/model"
	subjectModel "academico_backend/internals/features/academic/subjects/model"
	enrollModel "academico_backend/internals/features/enrollment/model"
	studentModel "academico_backend/internals/features/people/students/model"
	userModel "academico_backend/internals/features/people/users/model"
	assignModel "academico_backend/internals/features/planning/assignments/model"
	planModel "academico_backend/internals/features/planning/plans/model"
	reportModel "academico_backend/internals/features/planning/reports/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Conectando a PostgreSQL...")

	// DSN completo + statement_timeout
	// Nota: con PgBouncer usar el puerto del pooler y dejar PreferSimpleProtocol=true
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=academico&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // compatible con PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Error conectando a la DB: %v", err)
	}
	DB = db
	log.Println("✅ DB conectada.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate crea/actualiza el esquema. Los índices únicos compuestos y los
// FKs con cascada viven en los tags de los modelos; la DB es la fuente de
// verdad de esas restricciones.
func Migrate() {
	if err := MigrateAll(DB); err != nil {
		log.Fatalf("❌ Migración falló: %v", err)
	}
	log.Println("✅ Migraciones aplicadas.")
}

// MigrateAll se comparte con los tests de integración.
func MigrateAll(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return err
	}
	return db.AutoMigrate(
		&catalogModel.CareerModel{},
		&catalogModel.CycleModel{},
		&catalogModel.CurricularUnitModel{},
		&skillModel.SoftSkillModel{},
		&skillModel.SkillActivityModel{},
		&periodModel.PeriodModel{},
		&subjectModel.SubjectModel{},
		&studentModel.StudentModel{},
		&userModel.UserModel{},
		&enrollModel.EnrollmentModel{},
		&enrollModel.EnrollmentDetailModel{},
		&planModel.PlanModel{},
		&planModel.PlanDetailModel{},
		&reportModel.ReportModel{},
		&assignModel.TeachingAssignmentModel{},
		&importModel.ImportLogModel{},
	)
}

func WarmUpQueries() {
	// ping ligero para llenar el pool apenas sube el server
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
