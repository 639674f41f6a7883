// file: internals/features/planning/assignments/dto/assignment_dto.go
package dto

import (
	"github.com/google/uuid"

	periodModel "academico_backend/internals/features/academic/periods/model"
	subjectModel "academico_backend/internals/features/academic/subjects/model"
)

type AssignRequest struct {
	StaffID   uuid.UUID `json:"staff_id" validate:"required"`
	SubjectID uuid.UUID `json:"subject_id" validate:"required"`
	PeriodID  uuid.UUID `json:"period_id" validate:"required"`
}

// StaffOption: lo mínimo que necesita el combo de docentes.
type StaffOption struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}

// AuxDataResponse alimenta el formulario de creación de asignaciones.
type AuxDataResponse struct {
	Subjects []subjectModel.SubjectModel `json:"subjects"`
	Staff    []StaffOption               `json:"staff"`
	Periods  []periodModel.PeriodModel   `json:"periods"`
}
