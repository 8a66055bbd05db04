package repository

import (
	"store/entity"

	"gorm.io/gorm"
)

type ProductRepository struct{ DB *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository { return &ProductRepository{DB: db} }

// ProductFilter narrows List. Zero values mean "no filter".
type ProductFilter struct {
	CategoryURL string
	CategoryID  uint
	Query       string // case-insensitive substring on name/description
	ActiveOnly  bool
	Featured    bool
}

func (r *ProductRepository) FindByID(id uint) (*entity.Product, error) {
	var p entity.Product
	err := r.DB.Preload("Category").First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) List(f ProductFilter) ([]entity.Product, error) {
	q := r.DB.Model(&entity.Product{}).Preload("Category")

	if f.ActiveOnly {
		q = q.Where("active = ?", true)
	}
	if f.Featured {
		q = q.Where("featured = ?", true)
	}
	if f.CategoryID != 0 {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.CategoryURL != "" {
		q = q.Select("products.*").
			Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.url = ?", f.CategoryURL)
	}
	if f.Query != "" {
		like := "%" + f.Query + "%"
		q = q.Where("LOWER(products.name) LIKE LOWER(?) OR LOWER(products.description) LIKE LOWER(?)", like, like)
	}

	var products []entity.Product
	err := q.Find(&products).Error
	return products, err
}

// Similar returns up to limit other active products from the same category.
func (r *ProductRepository) Similar(p *entity.Product, limit int) ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.
		Where("active = ? AND category_id = ? AND id <> ?", true, p.CategoryID, p.ID).
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) Update(p *entity.Product) error {
	return r.DB.Save(p).Error
}

func (r *ProductRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Product{}, id).Error
}
