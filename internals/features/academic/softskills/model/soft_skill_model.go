// file: internals/features/academic/softskills/model/soft_skill_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type SoftSkillModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	Name        string    `gorm:"type:varchar(120);not null;uniqueIndex:uq_soft_skills_name;column:name" json:"name"`
	Description string    `gorm:"type:text;column:description" json:"description"`
	CreatedAt   time.Time `gorm:"type:timestamptz;not null;default:now();column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"type:timestamptz;not null;default:now();column:updated_at" json:"updated_at"`
}

func (SoftSkillModel) TableName() string { return "soft_skills" }

type SkillActivityModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	SkillID     uuid.UUID `gorm:"type:uuid;not null;index;column:skill_id" json:"skill_id"`
	Description string    `gorm:"type:text;not null;column:description" json:"description"`
	CreatedAt   time.Time `gorm:"type:timestamptz;not null;default:now();column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"type:timestamptz;not null;default:now();column:updated_at" json:"updated_at"`

	Skill *SoftSkillModel `gorm:"foreignKey:SkillID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SkillActivityModel) TableName() string { return "skill_activities" }
