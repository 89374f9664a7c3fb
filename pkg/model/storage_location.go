package model

import "github.com/google/uuid"

// StorageLocation describes a place images can be read from or written to.
// ProjectID is nil for team-wide locations.
type StorageLocation struct {
	ID           uuid.UUID  `gorm:"column:id;primaryKey;type:uuid" json:"id" validate:"required"`
	TeamID       uuid.UUID  `gorm:"column:team_id;type:uuid" json:"team_id" validate:"required"`
	ProjectID    *uuid.UUID `gorm:"column:project_id;type:uuid" json:"project_id"`
	Name         string     `gorm:"column:name" json:"name" validate:"required"`
	Provider     string     `gorm:"column:provider" json:"provider" validate:"required"`
	BaseLocation string     `gorm:"column:base_location" json:"base_location" validate:"required"`
	Public       bool       `gorm:"column:public" json:"public"`
}

func (StorageLocation) TableName() string {
	return "storage_locations"
}
