// file: internals/features/academic/catalogs/model/catalog_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Catálogos de referencia: datos compartidos, sin dueño. Se consultan,
// nunca se borran en cascada desde otras entidades.

type CareerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	Name      string    `gorm:"type:varchar(120);not null;uniqueIndex:uq_careers_name;column:name" json:"name"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:updated_at" json:"updated_at"`
}

func (CareerModel) TableName() string { return "careers" }

type CycleModel struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	// numeral romano I–VIII
	Name      string    `gorm:"type:varchar(10);not null;uniqueIndex:uq_cycles_name;column:name" json:"name"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:updated_at" json:"updated_at"`
}

func (CycleModel) TableName() string { return "cycles" }

type CurricularUnitModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	Name      string    `gorm:"type:varchar(120);not null;uniqueIndex:uq_curricular_units_name;column:name" json:"name"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:updated_at" json:"updated_at"`
}

func (CurricularUnitModel) TableName() string { return "curricular_units" }
