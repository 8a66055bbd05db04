package entity

import (
	"gorm.io/gorm"
)

// At most one row per (cart, product); adding the same product again bumps
// Quantity instead of inserting a second row.
type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId" gorm:"index"`
	Cart   Cart `json:"-"`

	ProductID uint    `json:"productId" gorm:"index"`
	Product   Product `json:"product"`

	Quantity int `json:"quantity"`
}
