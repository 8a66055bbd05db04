package services

import (
	"fmt"
	"strconv"
	"time"

	"store/entity"
	"store/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB        *gorm.DB
	OrderRepo *repository.OrderRepository
	CartRepo  *repository.CartRepository
	Cart      *CartService
	Gateway   PaymentGateway
}

func NewOrderService(db *gorm.DB, or *repository.OrderRepository, cr *repository.CartRepository, cart *CartService, gw PaymentGateway) *OrderService {
	return &OrderService{DB: db, OrderRepo: or, CartRepo: cr, Cart: cart, Gateway: gw}
}

type CheckoutIn struct {
	FullName   string `json:"fullName" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Address    string `json:"address" binding:"required"`
	PostalCode string `json:"postalCode" binding:"required"`
	City       string `json:"city" binding:"required"`
	Note       string `json:"note"`
	Card       CardIn `json:"card" binding:"required"`
}

// Checkout charges the gateway for the cart's subtotal and, on success,
// writes the order with unit-price snapshots and deletes the cart in a single
// transaction. A declined charge leaves the cart untouched.
func (s *OrderService) Checkout(username string, in *CheckoutIn) (*entity.Order, error) {
	cart, err := s.Cart.Get(username)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	charge := &ChargeRequest{
		Price:      s.Cart.Subtotal(cart),
		PaidPrice:  s.Cart.Subtotal(cart),
		Card:       in.Card,
		BuyerName:  in.FullName,
		BuyerPhone: in.Phone,
		City:       in.City,
		ZipCode:    in.PostalCode,
		Address:    in.Address,
	}
	for _, item := range cart.Items {
		charge.BasketItems = append(charge.BasketItems, ChargeItem{
			ID:       strconv.FormatUint(uint64(item.ID), 10),
			Name:     item.Product.Name,
			Category: item.Product.Category.Name,
			Price:    item.Product.Price,
		})
	}

	result, err := s.Gateway.Charge(charge)
	if err != nil {
		return nil, err
	}
	if !result.Succeeded() {
		return nil, fmt.Errorf("%w: %s", ErrPaymentDeclined, result.ErrorMessage)
	}

	order := &entity.Order{
		Username:   username,
		FullName:   in.FullName,
		Phone:      in.Phone,
		Address:    in.Address,
		PostalCode: in.PostalCode,
		City:       in.City,
		Note:       in.Note,
		OrderedAt:  time.Now(),
		Total:      s.Cart.Total(cart),
		PaymentRef: result.PaymentID,
	}
	for _, item := range cart.Items {
		order.Items = append(order.Items, entity.OrderItem{
			ProductID: item.ProductID,
			Price:     item.Product.Price,
			Quantity:  item.Quantity,
		})
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.OrderRepo.Create(tx, order); err != nil {
			return err
		}
		return s.CartRepo.DeleteCart(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) History(username string) ([]entity.Order, error) {
	return s.OrderRepo.ListByUsername(username)
}

func (s *OrderService) AdminList() ([]entity.Order, error) {
	return s.OrderRepo.ListAll()
}

func (s *OrderService) AdminDetail(id uint) (*entity.Order, error) {
	return s.OrderRepo.FindByID(id)
}
