// file: internals/features/academic/catalogs/dto/catalog_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   REQUEST DTO
========================================================= */

type CreateCatalogRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

func (r *CreateCatalogRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

type UpdateCatalogRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

func (r *UpdateCatalogRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type CatalogResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
