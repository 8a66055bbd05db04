package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name string `json:"name"`
	Url  string `json:"url" gorm:"uniqueIndex"`

	Products []Product `json:"-"`
}
