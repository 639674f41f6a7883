// file: internals/features/planning/reports/model/report_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	skillModel "academico_backend/internals/features/academic/softskills/model"
	planModel "academico_backend/internals/features/planning/plans/model"
)

// ReportModel: evaluación generada por habilidad dentro de un plan.
// Cascada con el plan y con la habilidad.
type ReportModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	PlanID             uuid.UUID `gorm:"type:uuid;not null;index;column:plan_id" json:"plan_id"`
	SkillID            uuid.UUID `gorm:"type:uuid;not null;index;column:skill_id" json:"skill_id"`
	ProgressConclusion string    `gorm:"type:text;not null;column:progress_conclusion" json:"progress_conclusion"`
	CoordinatorNote    *string   `gorm:"type:text;column:coordinator_note" json:"coordinator_note,omitempty"`
	GeneratedAt        time.Time `gorm:"type:timestamptz;not null;default:now();column:generated_at" json:"generated_at"`

	CreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:updated_at" json:"updated_at"`

	Plan  *planModel.PlanModel       `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE" json:"-"`
	Skill *skillModel.SoftSkillModel `gorm:"foreignKey:SkillID;constraint:OnDelete:CASCADE" json:"skill,omitempty"`
}

func (ReportModel) TableName() string { return "reports" }
