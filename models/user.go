package models

import (
	"time"
)

// User is an authenticated identity. Orders denormalize the name and
// email at submission time, so later profile edits never rewrite history.
type User struct {
	ID           uint      `json:"uid" gorm:"primaryKey"`
	Name         string    `json:"displayName" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	PhotoURL     string    `json:"photoURL"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
