// file: internals/features/enrollment/dto/enrollment_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"academico_backend/internals/features/enrollment/model"
)

/* =========================================================
   REQUEST DTO
========================================================= */

type EnrollRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	PeriodID  uuid.UUID `json:"period_id" validate:"required"`
	CycleID   uuid.UUID `json:"cycle_id" validate:"required"`
	Section   string    `json:"section" validate:"required,min=1,max=10"`
}

func (r *EnrollRequest) Normalize() {
	r.Section = strings.ToUpper(strings.TrimSpace(r.Section))
}

func (r EnrollRequest) ToModel() model.EnrollmentModel {
	return model.EnrollmentModel{
		StudentID:      r.StudentID,
		PeriodID:       r.PeriodID,
		CycleID:        r.CycleID,
		Section:        r.Section,
		Status:         "active",
		EnrollmentDate: time.Now(),
	}
}

type AddDetailRequest struct {
	SubjectID uuid.UUID `json:"subject_id" validate:"required"`
	// si no llega, hereda el paralelo de la matrícula
	Section *string `json:"section" validate:"omitempty,min=1,max=10"`
}

type SetGradeRequest struct {
	Grade float64 `json:"grade" validate:"required"`
}

/* =========================================================
   RESPONSE DTO — vista plana para el reporte por período
========================================================= */

type EnrollmentByPeriodRow struct {
	EnrollmentID   uuid.UUID  `json:"enrollment_id"`
	StudentID      uuid.UUID  `json:"student_id"`
	StudentName    string     `json:"student_name"`
	StudentNumber  string     `json:"student_number"`
	CycleName      string     `json:"cycle_name"`
	Section        string     `json:"section"`
	EnrollmentDate time.Time  `json:"enrollment_date"`
	SubjectID      *uuid.UUID `json:"subject_id,omitempty"`
	SubjectName    *string    `json:"subject_name,omitempty"`
	DetailStatus   *string    `json:"detail_status,omitempty"`
	FinalGrade     *float64   `json:"final_grade,omitempty"`
}
