// file: internals/features/people/users/dto/user_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"academico_backend/internals/features/people/users/model"
)

/* =========================================================
   REQUEST DTO
========================================================= */

type CreateUserRequest struct {
	IDNumber  string     `json:"id_number" validate:"required,min=5,max=20"`
	FirstName string     `json:"first_name" validate:"required,min=1,max=120"`
	LastName  string     `json:"last_name" validate:"required,min=1,max=120"`
	Email     string     `json:"email" validate:"required,email,max=160"`
	Password  string     `json:"password" validate:"required,min=8,max=72"`
	Role      string     `json:"role" validate:"required,oneof=admin coordinator teacher"`
	CareerID  *uuid.UUID `json:"career_id" validate:"omitempty"`
}

func (r *CreateUserRequest) Normalize() {
	r.IDNumber = strings.TrimSpace(r.IDNumber)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
}

type UpdateUserRequest struct {
	IDNumber  *string    `json:"id_number" validate:"omitempty,min=5,max=20"`
	FirstName *string    `json:"first_name" validate:"omitempty,min=1,max=120"`
	LastName  *string    `json:"last_name" validate:"omitempty,min=1,max=120"`
	Email     *string    `json:"email" validate:"omitempty,email,max=160"`
	Role      *string    `json:"role" validate:"omitempty,oneof=admin coordinator teacher"`
	CareerID  *uuid.UUID `json:"career_id" validate:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

/* =========================================================
   RESPONSE DTO — nunca expone el hash
========================================================= */

type UserResponse struct {
	ID                 uuid.UUID  `json:"id"`
	IDNumber           string     `json:"id_number"`
	FirstName          string     `json:"first_name"`
	LastName           string     `json:"last_name"`
	Email              string     `json:"email"`
	Role               string     `json:"role"`
	CareerID           *uuid.UUID `json:"career_id,omitempty"`
	MustChangePassword bool       `json:"must_change_password"`
	EmailVerifiedAt    *time.Time `json:"email_verified_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

func FromUserModel(m model.UserModel) UserResponse {
	return UserResponse{
		ID:                 m.ID,
		IDNumber:           m.IDNumber,
		FirstName:          m.FirstName,
		LastName:           m.LastName,
		Email:              m.Email,
		Role:               m.Role,
		CareerID:           m.CareerID,
		MustChangePassword: m.MustChangePassword,
		EmailVerifiedAt:    m.EmailVerifiedAt,
		CreatedAt:          m.CreatedAt,
	}
}

type LoginResponse struct {
	AccessToken        string       `json:"access_token"`
	MustChangePassword bool         `json:"must_change_password"`
	User               UserResponse `json:"user"`
}
