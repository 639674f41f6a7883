// file: internals/features/planning/plans/model/plan_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	subjectModel "academico_backend/internals/features/academic/subjects/model"
	skillModel "academico_backend/internals/features/academic/softskills/model"
	userModel "academico_backend/internals/features/people/users/model"
)

// PlanModel es la planificación del docente para una asignatura en un
// parcial/período/paralelo. (subject_id, term, period_label, section)
// único a nivel de DB: el verificar del front es solo un pre-check.
type PlanModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	SubjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_plans_subject_term_period_section;index;column:subject_id" json:"subject_id"`
	TeacherID uuid.UUID `gorm:"type:uuid;not null;index;column:teacher_id" json:"teacher_id"`
	// parcial 1 | 2
	Term        int    `gorm:"not null;uniqueIndex:uq_plans_subject_term_period_section;column:term" json:"term"`
	PeriodLabel string `gorm:"type:varchar(40);not null;uniqueIndex:uq_plans_subject_term_period_section;column:period_label" json:"period_label"`
	Section     string `gorm:"type:varchar(10);not null;uniqueIndex:uq_plans_subject_term_period_section;column:section" json:"section"`

	CreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:updated_at" json:"updated_at"`

	Subject *subjectModel.SubjectModel `gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE" json:"subject,omitempty"`
	Teacher *userModel.UserModel       `gorm:"foreignKey:TeacherID;constraint:OnDelete:RESTRICT" json:"teacher,omitempty"`

	Details []PlanDetailModel `gorm:"foreignKey:PlanID" json:"details,omitempty"`
}

func (PlanModel) TableName() string { return "plans" }

// PlanDetailModel: una habilidad blanda dentro del plan (uno-a-muchos;
// reemplaza el diseño uno-a-uno anterior). Cascada con el plan.
type PlanDetailModel struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	PlanID          uuid.UUID `gorm:"type:uuid;not null;index;column:plan_id" json:"plan_id"`
	SkillID         uuid.UUID `gorm:"type:uuid;not null;index;column:skill_id" json:"skill_id"`
	ActivitiesText  string    `gorm:"type:text;not null;column:activities_text" json:"activities_text"`
	LearningOutcome string    `gorm:"type:text;not null;column:learning_outcome" json:"learning_outcome"`

	CreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:updated_at" json:"updated_at"`

	Plan  *PlanModel                 `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE" json:"-"`
	Skill *skillModel.SoftSkillModel `gorm:"foreignKey:SkillID;constraint:OnDelete:CASCADE" json:"skill,omitempty"`
}

func (PlanDetailModel) TableName() string { return "plan_details" }
