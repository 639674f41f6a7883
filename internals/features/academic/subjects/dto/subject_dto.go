// file: internals/features/academic/subjects/dto/subject_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"academico_backend/internals/features/academic/subjects/model"
)

/* =========================================================
   REQUEST DTO
========================================================= */

type CreateSubjectRequest struct {
	Name     string    `json:"name" validate:"required,min=1,max=160"`
	CareerID uuid.UUID `json:"career_id" validate:"required"`
	CycleID  uuid.UUID `json:"cycle_id" validate:"required"`
	UnitID   uuid.UUID `json:"unit_id" validate:"required"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r CreateSubjectRequest) ToModel() model.SubjectModel {
	return model.SubjectModel{
		Name:     r.Name,
		CareerID: r.CareerID,
		CycleID:  r.CycleID,
		UnitID:   r.UnitID,
	}
}

type UpdateSubjectRequest struct {
	Name     *string    `json:"name" validate:"omitempty,min=1,max=160"`
	CareerID *uuid.UUID `json:"career_id" validate:"omitempty"`
	CycleID  *uuid.UUID `json:"cycle_id" validate:"omitempty"`
	UnitID   *uuid.UUID `json:"unit_id" validate:"omitempty"`
}

// ImportSubjectRow llega con los nombres en texto libre; el controller los
// resuelve contra los catálogos y reporta fila por fila.
type ImportSubjectRow struct {
	Name   string `json:"name" validate:"required,min=1,max=160"`
	Career string `json:"career" validate:"required,min=1,max=120"`
	Cycle  string `json:"cycle" validate:"required,min=1,max=10"`
	Unit   string `json:"unit" validate:"required,min=1,max=120"`
}

type ImportSubjectsRequest struct {
	Rows []ImportSubjectRow `json:"rows" validate:"required,min=1,dive"`
}
