package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"store/middlewares"
	"store/repository"
	"store/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeEmail struct{ sent []string }

func (f *fakeEmail) Send(to, subject, body string) error {
	f.sent = append(f.sent, to)
	return nil
}

func newAuthRouter(t *testing.T) (*gin.Engine, *services.CartService, *services.AuthService, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)
	cartSvc := services.NewCartService(db, repository.NewCartRepository(db), repository.NewProductRepository(db), 1.2)
	authSvc := services.NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
	ctrl := NewAuthController(authSvc, cartSvc, &fakeEmail{}, "http://localhost:8000")

	r := gin.New()
	r.POST("/auth/login", ctrl.Login)
	r.POST("/auth/register", ctrl.Register)

	return r, cartSvc, authSvc, db
}

func TestLoginMergesAnonymousCart(t *testing.T) {
	r, cartSvc, authSvc, db := newAuthRouter(t)
	p := seedTestProduct(t, db, 100)

	_, err := authSvc.Register("alice@example.com", "hunter2!", "Alice Doe", "")
	require.NoError(t, err)

	// Shopping before login, under the cookie token.
	require.NoError(t, cartSvc.Add("anon-token", p.ID, 2))
	// And an older cart from a previous login.
	require.NoError(t, cartSvc.Add("alice@example.com", p.ID, 1))

	body, _ := json.Marshal(gin.H{"email": "alice@example.com", "password": "hunter2!"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: middlewares.CookieName, Value: "anon-token"})
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Quantities are summed and the anonymous cart is gone.
	cart, err := cartSvc.Get("alice@example.com")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)

	// The cookie is dropped after the merge.
	dropped := false
	for _, c := range w.Result().Cookies() {
		if c.Name == middlewares.CookieName && c.MaxAge < 0 {
			dropped = true
		}
	}
	assert.True(t, dropped, "login must clear the anonymous cookie")
}

func TestLoginWithoutCookieSkipsMerge(t *testing.T) {
	r, cartSvc, authSvc, db := newAuthRouter(t)
	p := seedTestProduct(t, db, 100)

	_, err := authSvc.Register("alice@example.com", "hunter2!", "Alice Doe", "")
	require.NoError(t, err)
	require.NoError(t, cartSvc.Add("alice@example.com", p.ID, 1))

	body, _ := json.Marshal(gin.H{"email": "alice@example.com", "password": "hunter2!"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	cart, err := cartSvc.Get("alice@example.com")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestLoginBadCredentials(t *testing.T) {
	r, _, authSvc, _ := newAuthRouter(t)

	_, err := authSvc.Register("alice@example.com", "hunter2!", "Alice Doe", "")
	require.NoError(t, err)

	body, _ := json.Marshal(gin.H{"email": "alice@example.com", "password": "wrong"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
