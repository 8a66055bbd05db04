package services

import "errors"

var (
	// Cart
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// Checkout
	ErrEmptyCart       = errors.New("cart is empty")
	ErrPaymentDeclined = errors.New("payment declined")

	// Accounts
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountLocked      = errors.New("account locked")
	ErrEmailTaken         = errors.New("email already registered")
	ErrResetTokenInvalid  = errors.New("invalid or expired reset token")
)
