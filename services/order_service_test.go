package services

import (
	"testing"

	"store/entity"
	"store/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeGateway struct {
	result  *ChargeResult
	err     error
	lastReq *ChargeRequest
}

func (f *fakeGateway) Charge(req *ChargeRequest) (*ChargeResult, error) {
	f.lastReq = req
	return f.result, f.err
}

func newOrderService(t *testing.T, gw PaymentGateway) (*OrderService, *CartService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	cartRepo := repository.NewCartRepository(db)
	cartSvc := NewCartService(db, cartRepo, repository.NewProductRepository(db), 1.2)
	orderSvc := NewOrderService(db, repository.NewOrderRepository(db), cartRepo, cartSvc, gw)
	return orderSvc, cartSvc, db
}

func checkoutIn() *CheckoutIn {
	return &CheckoutIn{
		FullName:   "Alice Doe",
		Phone:      "5550001",
		Address:    "1 Main St",
		PostalCode: "34000",
		City:       "Istanbul",
		Card: CardIn{
			HolderName:  "Alice Doe",
			Number:      "5528790000000008",
			ExpireMonth: "12",
			ExpireYear:  "2030",
			CVC:         "123",
		},
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc, _, _ := newOrderService(t, &fakeGateway{result: &ChargeResult{Status: "success"}})

	_, err := svc.Checkout("alice@example.com", checkoutIn())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutSuccess(t *testing.T) {
	gw := &fakeGateway{result: &ChargeResult{Status: "success", PaymentID: "pay-1"}}
	svc, cartSvc, db := newOrderService(t, gw)

	p := seedProduct(t, db, "Galaxy S24", 100)
	require.NoError(t, cartSvc.Add("alice@example.com", p.ID, 2))

	order, err := svc.Checkout("alice@example.com", checkoutIn())
	require.NoError(t, err)

	// Gateway is charged the raw subtotal; the stored total carries the markup.
	assert.InDelta(t, 200, gw.lastReq.Price, 1e-9)
	assert.InDelta(t, 240, order.Total, 1e-9)
	assert.Equal(t, "pay-1", order.PaymentRef)
	require.Len(t, order.Items, 1)
	assert.Equal(t, p.ID, order.Items[0].ProductID)
	assert.Equal(t, float64(100), order.Items[0].Price)
	assert.Equal(t, 2, order.Items[0].Quantity)

	// The cart is destroyed by a completed checkout.
	var count int64
	require.NoError(t, db.Model(&entity.Cart{}).Where("customer_id = ?", "alice@example.com").Count(&count).Error)
	assert.Equal(t, int64(0), count)

	// And the order is readable back with its items.
	history, err := svc.History("alice@example.com")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, order.ID, history[0].ID)
}

func TestCheckoutDeclinedKeepsCart(t *testing.T) {
	gw := &fakeGateway{result: &ChargeResult{Status: "failure", ErrorMessage: "insufficient funds"}}
	svc, cartSvc, _ := newOrderService(t, gw)

	db := svc.DB
	p := seedProduct(t, db, "Galaxy S24", 100)
	require.NoError(t, cartSvc.Add("alice@example.com", p.ID, 1))

	_, err := svc.Checkout("alice@example.com", checkoutIn())
	assert.ErrorIs(t, err, ErrPaymentDeclined)
	assert.ErrorContains(t, err, "insufficient funds")

	cart, err := cartSvc.Get("alice@example.com")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1, "a declined charge must not touch the cart")

	var orders int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&orders).Error)
	assert.Equal(t, int64(0), orders)
}
