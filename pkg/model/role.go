package model

import "github.com/google/uuid"

// Role is a named bundle of permissions within a team.
type Role struct {
	ID     uuid.UUID `gorm:"column:id;primaryKey;type:uuid" json:"id" validate:"required"`
	TeamID uuid.UUID `gorm:"column:team_id;type:uuid" json:"team_id" validate:"required"`
	Name   string    `gorm:"column:name" json:"name" validate:"required"`
}

func (Role) TableName() string {
	return "roles"
}

// RolePermission grants a single permission to a role.
type RolePermission struct {
	RoleID     uuid.UUID `gorm:"column:role_id;type:uuid" json:"role_id" validate:"required"`
	Permission string    `gorm:"column:permission" json:"permission" validate:"required"`
}

func (RolePermission) TableName() string {
	return "role_permissions"
}

// UserRole assigns a role to a user within a team.
type UserRole struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid" json:"user_id" validate:"required"`
	TeamID uuid.UUID `gorm:"column:team_id;type:uuid" json:"team_id" validate:"required"`
	RoleID uuid.UUID `gorm:"column:role_id;type:uuid" json:"role_id" validate:"required"`
}

func (UserRole) TableName() string {
	return "user_roles"
}
