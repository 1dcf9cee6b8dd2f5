package models

import "time"

// UserModel is read-only here: accounts are managed by the identity
// service, this core only resolves callers.
type UserModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	FullName  string
	Email     string `gorm:"uniqueIndex"`
	Phone     string
	Role      string
	Suspended bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
