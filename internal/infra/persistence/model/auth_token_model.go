package model

import "time"

// AuthTokenModel mirrors the 'auth_tokens' table. Created is stored at
// second precision; the derived token value is recomputed from the row's
// identity columns during validation, so the column must round-trip exactly.
type AuthTokenModel struct {
	ID           string    `gorm:"type:uuid;primary_key"`
	UserID       string    `gorm:"type:uuid;not null;index"`
	Token        string    `gorm:"type:char(128);unique;not null"`
	Created      time.Time `gorm:"type:timestamp(0);not null"`
	LastAccessed time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AuthTokenModel) TableName() string {
	return "auth_tokens"
}
