package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"-"`

	// Unit price snapshot at purchase time.
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
