package repository

import (
	"errors"

	"store/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// FindWithItems returns the cart for an owner key with items and product data
// resolved. gorm.ErrRecordNotFound when no cart exists yet.
func (r *CartRepository) FindWithItems(tx *gorm.DB, customerID string) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("customer_id = ?", customerID).
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Product.Category").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetOrCreate loads the owner's cart, creating an empty one when missing.
func (r *CartRepository) GetOrCreate(tx *gorm.DB, customerID string) (*entity.Cart, error) {
	c, err := r.FindWithItems(tx, customerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = &entity.Cart{CustomerID: customerID}
		if err := tx.Create(c).Error; err != nil {
			return nil, err
		}
		return c, nil
	}
	return c, err
}

// UpsertItem bumps the quantity of an existing (cart, product) row or inserts
// a new one.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID, productID uint, qty int) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND product_id = ?", cartID, productID).First(&exist).Error
	if err == nil {
		exist.Quantity += qty
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return tx.Create(&entity.CartItem{CartID: cartID, ProductID: productID, Quantity: qty}).Error
}

// DecrementItem lowers the quantity of a (cart, product) row, deleting the row
// once it reaches zero or below. Absent rows are left alone.
func (r *CartRepository) DecrementItem(tx *gorm.DB, cartID, productID uint, qty int) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND product_id = ?", cartID, productID).First(&exist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	exist.Quantity -= qty
	if exist.Quantity <= 0 {
		return tx.Unscoped().Delete(&exist).Error
	}
	return tx.Save(&exist).Error
}

// DeleteCart removes the cart and its items for good, freeing the owner key
// for a future cart.
func (r *CartRepository) DeleteCart(tx *gorm.DB, cartID uint) error {
	if err := tx.Unscoped().Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().Delete(&entity.Cart{}, cartID).Error
}

// ClearItems empties the cart but keeps the cart row.
func (r *CartRepository) ClearItems(tx *gorm.DB, cartID uint) error {
	return tx.Unscoped().Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error
}
