package services

import (
	"errors"

	"store/entity"
	"store/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartService tracks a shopper's selected items under an owner key: the
// authenticated username, or the anonymous token from the customerId cookie.
//
// Add and Remove deliberately treat an unknown product id as a no-op instead
// of an error, so stale product links never break the cart page.
type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	ProductRepo *repository.ProductRepository

	// Displayed total = subtotal * TaxRate.
	TaxRate float64
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, pr *repository.ProductRepository, taxRate float64) *CartService {
	return &CartService{DB: db, CartRepo: cr, ProductRepo: pr, TaxRate: taxRate}
}

// NewOwnerToken mints a fresh anonymous owner key. The HTTP layer is expected
// to hand it back to the browser as a long-lived customerId cookie.
func (s *CartService) NewOwnerToken() string {
	return uuid.NewString()
}

// Get returns the owner's cart with product data resolved, creating an empty
// cart on first access. Only persistence failures surface.
func (s *CartService) Get(ownerKey string) (*entity.Cart, error) {
	return s.CartRepo.GetOrCreate(s.DB, ownerKey)
}

// Add puts qty units of a product into the owner's cart, merging with an
// existing line for the same product. Unknown products are ignored.
func (s *CartService) Add(ownerKey string, productID uint, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}

	product, err := s.ProductRepo.FindByID(productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetOrCreate(tx, ownerKey)
		if err != nil {
			return err
		}
		return s.CartRepo.UpsertItem(tx, cart.ID, product.ID, qty)
	})
}

// Remove takes qty units of a product out of the owner's cart. Dropping to
// zero or below deletes the line. Unknown products and absent lines are
// no-ops; removal past zero is not an error.
func (s *CartService) Remove(ownerKey string, productID uint, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}

	_, err := s.ProductRepo.FindByID(productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetOrCreate(tx, ownerKey)
		if err != nil {
			return err
		}
		return s.CartRepo.DecrementItem(tx, cart.ID, productID, qty)
	})
}

// Clear empties the owner's cart.
func (s *CartService) Clear(ownerKey string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.FindWithItems(tx, ownerKey)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return s.CartRepo.ClearItems(tx, cart.ID)
	})
}

// MergeIntoUser folds the anonymous cart into the authenticated user's cart
// at login: shared products sum their quantities, the rest move over, and the
// anonymous cart is deleted. Runs in one transaction so a failure leaves no
// partial merge behind.
func (s *CartService) MergeIntoUser(anonKey, userKey string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		anonCart, err := s.CartRepo.FindWithItems(tx, anonKey)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // nothing bought before login
		}
		if err != nil {
			return err
		}

		userCart, err := s.CartRepo.GetOrCreate(tx, userKey)
		if err != nil {
			return err
		}

		for _, item := range anonCart.Items {
			if err := s.CartRepo.UpsertItem(tx, userCart.ID, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		return s.CartRepo.DeleteCart(tx, anonCart.ID)
	})
}

// Subtotal is the raw sum of unit price times quantity over the cart's items.
func (s *CartService) Subtotal(cart *entity.Cart) float64 {
	var sum float64
	for _, item := range cart.Items {
		sum += item.Product.Price * float64(item.Quantity)
	}
	return sum
}

// Total applies the tax multiplier to the subtotal.
func (s *CartService) Total(cart *entity.Cart) float64 {
	return s.Subtotal(cart) * s.TaxRate
}
