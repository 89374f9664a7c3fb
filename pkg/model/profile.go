package model

import "github.com/google/uuid"

// ConversionProfile describes how uploaded images are converted.
// ProjectID is nil for team-wide profiles.
type ConversionProfile struct {
	ID        uuid.UUID  `gorm:"column:id;primaryKey;type:uuid" json:"id" validate:"required"`
	TeamID    uuid.UUID  `gorm:"column:team_id;type:uuid" json:"team_id" validate:"required"`
	ProjectID *uuid.UUID `gorm:"column:project_id;type:uuid" json:"project_id"`
	Name      string     `gorm:"column:name" json:"name" validate:"required"`
}

func (ConversionProfile) TableName() string {
	return "conversion_profiles"
}

// UploadProfile ties a project to source/destination storage and a
// conversion profile.
type UploadProfile struct {
	ID                           uuid.UUID `gorm:"column:id;primaryKey;type:uuid" json:"id" validate:"required"`
	TeamID                       uuid.UUID `gorm:"column:team_id;type:uuid" json:"team_id" validate:"required"`
	ProjectID                    uuid.UUID `gorm:"column:project_id;type:uuid" json:"project_id" validate:"required"`
	Name                         string    `gorm:"column:name" json:"name" validate:"required"`
	SourceStorageLocationID      uuid.UUID `gorm:"column:source_storage_location_id;type:uuid" json:"source_storage_location_id" validate:"required"`
	DestinationStorageLocationID uuid.UUID `gorm:"column:destination_storage_location_id;type:uuid" json:"destination_storage_location_id" validate:"required"`
	ConversionProfileID          uuid.UUID `gorm:"column:conversion_profile_id;type:uuid" json:"conversion_profile_id" validate:"required"`
}

func (UploadProfile) TableName() string {
	return "upload_profiles"
}
