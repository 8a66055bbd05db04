package entity

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Username   string    `json:"username" gorm:"index"`
	FullName   string    `json:"fullName"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	PostalCode string    `json:"postalCode"`
	City       string    `json:"city"`
	Note       string    `json:"note"`
	OrderedAt  time.Time `json:"orderedAt"`
	Total      float64   `json:"total"`
	PaymentRef string    `json:"paymentRef"`

	Items []OrderItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
