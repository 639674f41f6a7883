// file: internals/features/people/students/dto/student_dto.go
package dto

import (
	"strings"

	"academico_backend/internals/features/people/students/model"
	helper "academico_backend/internals/helpers"
)

/* =========================================================
   REQUEST DTO
========================================================= */

type CreateStudentRequest struct {
	IDNumber  string  `json:"id_number" validate:"required,min=5,max=20"`
	FirstName string  `json:"first_name" validate:"required,min=1,max=120"`
	LastName  string  `json:"last_name" validate:"required,min=1,max=120"`
	Email     *string `json:"email" validate:"omitempty,email,max=160"`
	Career    string  `json:"career" validate:"omitempty,max=160"`
}

func (r *CreateStudentRequest) Normalize() {
	r.IDNumber = strings.TrimSpace(r.IDNumber)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Career = strings.TrimSpace(r.Career)
	r.Email = helper.TrimPtr(r.Email)
}

func (r CreateStudentRequest) ToModel() model.StudentModel {
	return model.StudentModel{
		IDNumber:  r.IDNumber,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Career:    r.Career,
	}
}

type UpdateStudentRequest struct {
	IDNumber  *string `json:"id_number" validate:"omitempty,min=5,max=20"`
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=120"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=120"`
	Email     *string `json:"email" validate:"omitempty,email,max=160"`
	Career    *string `json:"career" validate:"omitempty,max=160"`
}

// ImportStudentRow: filas de la carga masiva (mismo contrato por-fila que
// el import de asignaturas).
type ImportStudentRow struct {
	IDNumber  string  `json:"id_number" validate:"required,min=5,max=20"`
	FirstName string  `json:"first_name" validate:"required,min=1,max=120"`
	LastName  string  `json:"last_name" validate:"required,min=1,max=120"`
	Email     *string `json:"email" validate:"omitempty,email,max=160"`
	Career    string  `json:"career" validate:"omitempty,max=160"`
}

type ImportStudentsRequest struct {
	Rows []ImportStudentRow `json:"rows" validate:"required,min=1,dive"`
}
