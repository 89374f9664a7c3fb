package model

import "github.com/google/uuid"

// User represents an account identity.
type User struct {
	ID    uuid.UUID `gorm:"column:id;primaryKey;type:uuid" json:"id" validate:"required"`
	Email string    `gorm:"column:email" json:"email" validate:"required,email"`
	Name  string    `gorm:"column:name" json:"name" validate:"required"`
}

func (User) TableName() string {
	return "users"
}
