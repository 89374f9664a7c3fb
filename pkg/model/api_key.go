package model

import (
	"time"

	"github.com/google/uuid"
)

// APIKey is a credential record. Hash is a one-way digest derived from the
// full plaintext key; the random component of the key is never stored.
type APIKey struct {
	ID                      uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	Name                    string    `gorm:"column:name"`
	Prefix                  string    `gorm:"column:prefix"`
	Hash                    []byte    `gorm:"column:hash"`
	TeamID                  uuid.UUID `gorm:"column:team_id;type:uuid"`
	UserID                  uuid.UUID `gorm:"column:user_id;type:uuid"`
	InheritsUserPermissions bool      `gorm:"column:inherits_user_permissions"`
	Created                 time.Time `gorm:"column:created"`
	Expires                 time.Time `gorm:"column:expires"`
}

func (APIKey) TableName() string {
	return "api_keys"
}
