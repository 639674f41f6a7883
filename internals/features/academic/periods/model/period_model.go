// file: internals/features/academic/periods/model/period_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type PeriodModel struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	// ej. "2025-A"
	Name      string    `gorm:"type:varchar(40);not null;uniqueIndex:uq_periods_name;column:name" json:"name"`
	Active    bool      `gorm:"not null;default:false;column:active" json:"active"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:updated_at" json:"updated_at"`
}

func (PeriodModel) TableName() string { return "periods" }
