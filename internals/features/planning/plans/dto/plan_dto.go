// file: internals/features/planning/plans/dto/plan_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"academico_backend/internals/features/planning/plans/model"
)

/* =========================================================
   REQUEST DTO
========================================================= */

type CreatePlanDetailInput struct {
	SkillID         uuid.UUID `json:"skill_id" validate:"required"`
	ActivitiesText  string    `json:"activities_text" validate:"required,min=1"`
	LearningOutcome string    `json:"learning_outcome" validate:"required,min=1"`
}

// CreatePlanRequest admite detalles iniciales: plan + detalles se insertan
// en una sola transacción (nada de filas huérfanas visibles).
type CreatePlanRequest struct {
	SubjectID   uuid.UUID               `json:"subject_id" validate:"required"`
	TeacherID   uuid.UUID               `json:"teacher_id" validate:"required"`
	Term        int                     `json:"term" validate:"required,oneof=1 2"`
	PeriodLabel string                  `json:"period_label" validate:"required,min=1,max=40"`
	Section     string                  `json:"section" validate:"required,min=1,max=10"`
	Details     []CreatePlanDetailInput `json:"details" validate:"omitempty,dive"`
}

func (r *CreatePlanRequest) Normalize() {
	r.PeriodLabel = strings.TrimSpace(r.PeriodLabel)
	r.Section = strings.ToUpper(strings.TrimSpace(r.Section))
}

func (r CreatePlanRequest) ToModel() model.PlanModel {
	return model.PlanModel{
		SubjectID:   r.SubjectID,
		TeacherID:   r.TeacherID,
		Term:        r.Term,
		PeriodLabel: r.PeriodLabel,
		Section:     r.Section,
	}
}

type AddPlanDetailRequest struct {
	SkillID         uuid.UUID `json:"skill_id" validate:"required"`
	ActivitiesText  string    `json:"activities_text" validate:"required,min=1"`
	LearningOutcome string    `json:"learning_outcome" validate:"required,min=1"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type VerifyPlanResponse struct {
	Exists bool `json:"exists"`
}
