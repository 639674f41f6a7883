// file: internals/features/academic/softskills/dto/soft_skill_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"academico_backend/internals/features/academic/softskills/model"
)

/* =========================================================
   REQUEST DTO
========================================================= */

type CreateSoftSkillRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=120"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

func (r *CreateSoftSkillRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
}

func (r CreateSoftSkillRequest) ToModel() model.SoftSkillModel {
	return model.SoftSkillModel{
		Name:        r.Name,
		Description: r.Description,
	}
}

type UpdateSoftSkillRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=120"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

type CreateSkillActivityRequest struct {
	Description string `json:"description" validate:"required,min=1,max=2000"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type SoftSkillResponse struct {
	ID          uuid.UUID                `json:"id"`
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	Activities  []SkillActivityResponse  `json:"activities,omitempty"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

type SkillActivityResponse struct {
	ID          uuid.UUID `json:"id"`
	SkillID     uuid.UUID `json:"skill_id"`
	Description string    `json:"description"`
}

func FromSoftSkillModel(m model.SoftSkillModel, acts []model.SkillActivityModel) SoftSkillResponse {
	out := SoftSkillResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	for _, a := range acts {
		out.Activities = append(out.Activities, SkillActivityResponse{
			ID:          a.ID,
			SkillID:     a.SkillID,
			Description: a.Description,
		})
	}
	return out
}
