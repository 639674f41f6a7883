// file: internals/features/people/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	catalogModel "academico_backend/internals/features/academic/catalogs/model"
)

// UserModel es el personal del departamento (admin/coordinator/teacher).
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	IDNumber  string    `gorm:"type:varchar(20);not null;column:id_number" json:"id_number"`
	FirstName string    `gorm:"type:varchar(120);not null;column:first_name" json:"first_name"`
	LastName  string    `gorm:"type:varchar(120);not null;column:last_name" json:"last_name"`
	Email     string    `gorm:"type:varchar(160);not null;uniqueIndex:uq_users_email;column:email" json:"email"`
	Password  string    `gorm:"type:varchar(200);not null;column:password" json:"-"`
	// admin | coordinator | teacher
	Role               string     `gorm:"type:varchar(20);not null;default:'teacher';index;column:role" json:"role"`
	CareerID           *uuid.UUID `gorm:"type:uuid;index;column:career_id" json:"career_id,omitempty"`
	MustChangePassword bool       `gorm:"not null;default:true;column:must_change_password" json:"must_change_password"`
	EmailVerifiedAt    *time.Time `gorm:"type:timestamptz;column:email_verified_at" json:"email_verified_at,omitempty"`

	CreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:updated_at" json:"updated_at"`

	Career *catalogModel.CareerModel `gorm:"foreignKey:CareerID;constraint:OnDelete:SET NULL" json:"career,omitempty"`
}

func (UserModel) TableName() string { return "users" }
