package controllers

import (
	"errors"
	"fmt"

	"store/middlewares"
	"store/pkg/resp"
	"store/services"
	"store/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=7"`
	FullName string `json:"fullName" binding:"required"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Svc     *services.AuthService
	CartSvc *services.CartService
	Email   services.EmailService
	BaseURL string
}

func NewAuthController(svc *services.AuthService, cartSvc *services.CartService, email services.EmailService, baseURL string) *AuthController {
	return &AuthController{Svc: svc, CartSvc: cartSvc, Email: email, BaseURL: baseURL}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Svc.Register(req.Email, req.Password, req.FullName, req.Phone)
	if errors.Is(err, services.ErrEmailTaken) {
		resp.BadRequest(c, err.Error())
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, user)
}

// POST /auth/login
//
// On success the anonymous cookie cart, if any, is merged into the user's
// cart and the cookie is dropped — this is the only place the merge runs.
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.Login(req.Email, req.Password)
	if errors.Is(err, services.ErrAccountLocked) {
		resp.Forbidden(c, "account locked, try again in a few minutes")
		return
	}
	if errors.Is(err, services.ErrInvalidCredentials) {
		resp.Unauthorized(c, err.Error())
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	if anonToken, cerr := c.Cookie(middlewares.CookieName); cerr == nil && anonToken != "" {
		if err := a.CartSvc.MergeIntoUser(anonToken, user.Email); err != nil {
			resp.ServerError(c, err)
			return
		}
		c.SetCookie(middlewares.CookieName, "", -1, "/", "", false, true)
	}

	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Svc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}

// PATCH /auth/me
func (a *AuthController) UpdateMe(c *gin.Context) {
	var req struct {
		FullName string `json:"fullName"`
		Phone    string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.FullName != "" {
		updates["full_name"] = req.FullName
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}

	user, err := a.Svc.UpdateProfile(utils.CurrentUserID(c), updates)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}

// POST /auth/change-password
func (a *AuthController) ChangePassword(c *gin.Context) {
	var req struct {
		OldPassword string `json:"oldPassword" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required,min=7"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := a.Svc.ChangePassword(utils.CurrentUserID(c), req.OldPassword, req.NewPassword)
	if errors.Is(err, services.ErrInvalidCredentials) {
		resp.BadRequest(c, "wrong password")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// POST /auth/forgot-password
func (a *AuthController) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, token, err := a.Svc.CreateResetToken(req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// don't leak which emails exist
		resp.OK(c, gin.H{"sent": true})
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", a.BaseURL, token)
	body := fmt.Sprintf("<a href='%s'>Reset your password</a>", link)
	if err := a.Email.Send(user.Email, "Password Reset", body); err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"sent": true})
}

// POST /auth/reset-password
func (a *AuthController) ResetPassword(c *gin.Context) {
	var req struct {
		Token    string `json:"token" binding:"required"`
		Password string `json:"password" binding:"required,min=7"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := a.Svc.ResetPassword(req.Token, req.Password)
	if errors.Is(err, services.ErrResetTokenInvalid) {
		resp.BadRequest(c, err.Error())
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}
