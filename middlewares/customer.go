package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
)

// CookieName holds the anonymous shopper's cart token.
const CookieName = "customerId"

// TokenMinter mints fresh anonymous owner keys (the cart service).
type TokenMinter interface {
	NewOwnerToken() string
}

// CustomerContext resolves the cart owner key for routes that work both
// logged-in and anonymous: the JWT username wins, then the customerId cookie,
// and failing both a fresh token is minted and set as a long-lived cookie so
// the next request lands on the same cart.
func CustomerContext(secret string, minter TokenMinter, cookieTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseBearer(c, secret); ok {
			c.Set("userId", claims.UserID)
			c.Set("username", claims.Username)
			c.Set("role", claims.Role)
			c.Set("ownerKey", claims.Username)
			c.Next()
			return
		}

		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			token = minter.NewOwnerToken()
			c.SetCookie(CookieName, token, int(cookieTTL.Seconds()), "/", "", false, true)
		}
		c.Set("ownerKey", token)

		c.Next()
	}
}
