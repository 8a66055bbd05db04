package entity

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `json:"email" gorm:"uniqueIndex"`
	Password string `json:"-"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Role     string `json:"role"` // customer | admin

	// Login lockout bookkeeping.
	FailedLogins int        `json:"-"`
	LockedUntil  *time.Time `json:"-"`

	// Password reset flow.
	ResetToken       string     `json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`
}
