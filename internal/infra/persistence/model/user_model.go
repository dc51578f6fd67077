// Package model contains the GORM table mappings for the persistence layer.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID                string    `gorm:"type:uuid;primary_key"`
	Name              string    `gorm:"type:varchar(100);unique;not null"`
	PasswordHash      string    `gorm:"type:char(128);not null"`
	PasswordSalt      string    `gorm:"type:varchar(64);not null"`
	LastAuthenticated time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
