package entity

import (
	"gorm.io/gorm"
)

// Cart is keyed by CustomerID: either the authenticated user's email or the
// anonymous token stored in the customerId cookie. One cart per key.
type Cart struct {
	gorm.Model
	CustomerID string `json:"customerId" gorm:"uniqueIndex"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
