// file: internals/features/academic/periods/dto/period_dto.go
package dto

import (
	"strings"

	"academico_backend/internals/features/academic/periods/model"
)

type CreatePeriodRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=40"`
	Active *bool  `json:"active" validate:"omitempty"`
}

func (r *CreatePeriodRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r CreatePeriodRequest) ToModel() model.PeriodModel {
	m := model.PeriodModel{Name: r.Name}
	if r.Active != nil {
		m.Active = *r.Active
	}
	return m
}

type UpdatePeriodRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=40"`
	Active *bool   `json:"active" validate:"omitempty"`
}
