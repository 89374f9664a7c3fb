package model

import "github.com/google/uuid"

// Project is a team's workspace for images.
type Project struct {
	ID       uuid.UUID `gorm:"column:id;primaryKey;type:uuid" json:"id" validate:"required"`
	TeamID   uuid.UUID `gorm:"column:team_id;type:uuid" json:"team_id" validate:"required"`
	Name     string    `gorm:"column:name" json:"name" validate:"required"`
	BasePath string    `gorm:"column:base_path" json:"base_path"`
}

func (Project) TableName() string {
	return "projects"
}
