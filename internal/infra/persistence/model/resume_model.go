package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResumeModel mirrors the 'resumes' table.
type ResumeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ResumeModel) TableName() string {
	return "resumes"
}

// BeforeCreate assigns a time-ordered UUID when none is set.
func (m *ResumeModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}

// All lists the models managed by AutoMigrate, parents first.
func All() []any {
	return []any{&UserModel{}, &ResumeModel{}}
}
