package entity

import (
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Active      bool    `json:"active"`
	Featured    bool    `json:"featured"` // shown on the home page

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"category"`
}
