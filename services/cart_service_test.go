package services

import (
	"fmt"
	"testing"

	"store/entity"
	"store/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.Product{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func newCartService(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	svc := NewCartService(db, repository.NewCartRepository(db), repository.NewProductRepository(db), 1.2)
	return svc, db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64) *entity.Product {
	t.Helper()

	category := entity.Category{Name: "Phones", Url: "phones-" + name}
	require.NoError(t, db.Create(&category).Error)

	p := entity.Product{Name: name, Price: price, Active: true, CategoryID: category.ID}
	require.NoError(t, db.Create(&p).Error)
	return &p
}

func TestGetCreatesCartLazily(t *testing.T) {
	svc, _ := newCartService(t)

	cart, err := svc.Get("anon-token")
	require.NoError(t, err)
	assert.Equal(t, "anon-token", cart.CustomerID)
	assert.Empty(t, cart.Items)

	again, err := svc.Get("anon-token")
	require.NoError(t, err)
	assert.Equal(t, cart.ID, again.ID, "second Get must return the same cart, not a new one")
}

func TestAddAccumulatesQuantity(t *testing.T) {
	svc, db := newCartService(t)
	p := seedProduct(t, db, "Galaxy S24", 100)

	require.NoError(t, svc.Add("alice", p.ID, 2))
	require.NoError(t, svc.Add("alice", p.ID, 3))
	require.NoError(t, svc.Add("alice", p.ID, 1))

	cart, err := svc.Get("alice")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1, "same product must stay a single line")
	assert.Equal(t, 6, cart.Items[0].Quantity)
}

func TestAddUnknownProductIsNoOp(t *testing.T) {
	svc, db := newCartService(t)
	p := seedProduct(t, db, "iPhone 15", 100)
	require.NoError(t, svc.Add("alice", p.ID, 1))

	require.NoError(t, svc.Add("alice", 9999, 5))

	cart, err := svc.Get("alice")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, p.ID, cart.Items[0].ProductID)
	assert.Equal(t, float64(100), svc.Subtotal(cart))
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	svc, db := newCartService(t)
	p := seedProduct(t, db, "Charger", 10)

	assert.ErrorIs(t, svc.Add("alice", p.ID, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, svc.Add("alice", p.ID, -2), ErrInvalidQuantity)

	cart, err := svc.Get("alice")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestRemoveDecrementsAndDeletesAtZero(t *testing.T) {
	svc, db := newCartService(t)
	p := seedProduct(t, db, "Mouse", 25)

	require.NoError(t, svc.Add("alice", p.ID, 3))
	require.NoError(t, svc.Remove("alice", p.ID, 1))

	cart, err := svc.Get("alice")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)

	// Removing more than present deletes the line, never negative.
	require.NoError(t, svc.Remove("alice", p.ID, 5))

	cart, err = svc.Get("alice")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestRemoveIsIdempotent(t *testing.T) {
	svc, db := newCartService(t)
	p := seedProduct(t, db, "Keyboard", 50)

	// Absent line: no error, nothing changes.
	require.NoError(t, svc.Remove("alice", p.ID, 1))
	// Unknown product: same.
	require.NoError(t, svc.Remove("alice", 9999, 1))

	cart, err := svc.Get("alice")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestSubtotalAndTotal(t *testing.T) {
	svc, db := newCartService(t)
	p := seedProduct(t, db, "Galaxy S24", 100)

	cart, err := svc.Get("alice")
	require.NoError(t, err)
	assert.Equal(t, float64(0), svc.Subtotal(cart))
	assert.Equal(t, float64(0), svc.Total(cart))

	require.NoError(t, svc.Add("alice", p.ID, 2))

	cart, err = svc.Get("alice")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.InDelta(t, 200, svc.Subtotal(cart), 1e-9)
	assert.InDelta(t, 240, svc.Total(cart), 1e-9)

	// Past-zero removal empties the cart and the totals with it.
	require.NoError(t, svc.Remove("alice", p.ID, 5))
	cart, err = svc.Get("alice")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, float64(0), svc.Subtotal(cart))
	assert.Equal(t, float64(0), svc.Total(cart))
}

func TestTotalUsesConfiguredRate(t *testing.T) {
	svc, db := newCartService(t)
	svc.TaxRate = 1.08
	p := seedProduct(t, db, "Charger", 100)

	require.NoError(t, svc.Add("alice", p.ID, 1))

	cart, err := svc.Get("alice")
	require.NoError(t, err)
	assert.InDelta(t, 108, svc.Total(cart), 1e-9)
}

func TestMergeIntoUser(t *testing.T) {
	svc, db := newCartService(t)
	a := seedProduct(t, db, "A", 10)
	b := seedProduct(t, db, "B", 20)
	cProd := seedProduct(t, db, "C", 30)

	// anonymous {A:2, B:1}
	require.NoError(t, svc.Add("anon-token", a.ID, 2))
	require.NoError(t, svc.Add("anon-token", b.ID, 1))
	// user {B:3, C:1}
	require.NoError(t, svc.Add("alice", b.ID, 3))
	require.NoError(t, svc.Add("alice", cProd.ID, 1))

	require.NoError(t, svc.MergeIntoUser("anon-token", "alice"))

	cart, err := svc.Get("alice")
	require.NoError(t, err)
	require.Len(t, cart.Items, 3)

	byProduct := map[uint]int{}
	for _, item := range cart.Items {
		byProduct[item.ProductID] = item.Quantity
	}
	assert.Equal(t, 2, byProduct[a.ID])
	assert.Equal(t, 4, byProduct[b.ID])
	assert.Equal(t, 1, byProduct[cProd.ID])

	// The anonymous cart is gone for good.
	var count int64
	require.NoError(t, db.Model(&entity.Cart{}).Where("customer_id = ?", "anon-token").Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestMergeWithoutAnonymousCartIsNoOp(t *testing.T) {
	svc, db := newCartService(t)
	p := seedProduct(t, db, "A", 10)
	require.NoError(t, svc.Add("alice", p.ID, 1))

	require.NoError(t, svc.MergeIntoUser("never-issued", "alice"))

	cart, err := svc.Get("alice")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestMergeCreatesUserCartWhenMissing(t *testing.T) {
	svc, db := newCartService(t)
	p := seedProduct(t, db, "A", 10)
	require.NoError(t, svc.Add("anon-token", p.ID, 2))

	require.NoError(t, svc.MergeIntoUser("anon-token", "fresh-user"))

	cart, err := svc.Get("fresh-user")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestClear(t *testing.T) {
	svc, db := newCartService(t)
	p := seedProduct(t, db, "A", 10)
	require.NoError(t, svc.Add("alice", p.ID, 2))

	require.NoError(t, svc.Clear("alice"))
	// Clearing an owner with no cart at all is fine too.
	require.NoError(t, svc.Clear("nobody"))

	cart, err := svc.Get("alice")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}
