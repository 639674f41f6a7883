// file: internals/features/people/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type StudentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	IDNumber  string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_students_id_number;column:id_number" json:"id_number"`
	FirstName string    `gorm:"type:varchar(120);not null;column:first_name" json:"first_name"`
	LastName  string    `gorm:"type:varchar(120);not null;column:last_name" json:"last_name"`
	// unique-or-null: Postgres permite varios NULL bajo el índice único
	Email *string `gorm:"type:varchar(160);uniqueIndex:uq_students_email;column:email" json:"email,omitempty"`
	// texto libre, llega así desde los imports
	Career string `gorm:"type:varchar(160);column:career" json:"career"`

	CreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:updated_at" json:"updated_at"`
}

func (StudentModel) TableName() string { return "students" }
