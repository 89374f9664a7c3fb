package model

import "github.com/google/uuid"

// Team is the tenant boundary. Every project, role, and key belongs to one.
type Team struct {
	ID   uuid.UUID `gorm:"column:id;primaryKey;type:uuid" json:"id" validate:"required"`
	Name string    `gorm:"column:name" json:"name" validate:"required"`
}

func (Team) TableName() string {
	return "teams"
}
