// file: internals/features/academic/subjects/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	catalogModel "academico_backend/internals/features/academic/catalogs/model"
)

type SubjectModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	Name     string    `gorm:"type:varchar(160);not null;uniqueIndex:uq_subjects_name_career;column:name" json:"name"`
	CareerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_subjects_name_career;index;column:career_id" json:"career_id"`
	CycleID  uuid.UUID `gorm:"type:uuid;not null;index;column:cycle_id" json:"cycle_id"`
	UnitID   uuid.UUID `gorm:"type:uuid;not null;index;column:unit_id" json:"unit_id"`

	CreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:updated_at" json:"updated_at"`

	// los catálogos se restringen: no se borran mientras tengan asignaturas
	Career *catalogModel.CareerModel         `gorm:"foreignKey:CareerID;constraint:OnDelete:RESTRICT" json:"career,omitempty"`
	Cycle  *catalogModel.CycleModel          `gorm:"foreignKey:CycleID;constraint:OnDelete:RESTRICT" json:"cycle,omitempty"`
	Unit   *catalogModel.CurricularUnitModel `gorm:"foreignKey:UnitID;constraint:OnDelete:RESTRICT" json:"unit,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }
