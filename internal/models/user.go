package models

import "time"

type User struct {
	ID           string     `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName    string     `gorm:"not null" json:"firstName"`
	LastName     string     `gorm:"not null" json:"lastName"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	UserTypes    StringList `gorm:"type:jsonb;not null" json:"userType"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Avatar       string     `json:"avatar,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
