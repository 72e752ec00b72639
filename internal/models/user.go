package models

import (
	"strings"

	"gorm.io/gorm"
)

// User represents a registered user. All other resources belong to
// exactly one user.
type User struct {
	DefaultModel
	Nombre       string `json:"nombre"`
	Email        string `json:"email" gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`
}

func (User) TableName() string {
	return "usuarios"
}

// BeforeSave trims whitespace and normalizes the email address.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Nombre = strings.TrimSpace(u.Nombre)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	return nil
}
