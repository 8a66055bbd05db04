package controllers

import (
	"errors"

	"store/pkg/resp"
	"store/services"
	"store/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

type cartItemIn struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	cart, err := h.Svc.Get(utils.OwnerKey(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"cart":     cart,
		"subtotal": h.Svc.Subtotal(cart),
		"total":    h.Svc.Total(cart),
	})
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var req cartItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	err := h.Svc.Add(utils.OwnerKey(c), req.ProductID, req.Quantity)
	if errors.Is(err, services.ErrInvalidQuantity) {
		resp.BadRequest(c, err.Error())
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"added": true})
}

// DELETE /cart/items
func (h *CartController) Remove(c *gin.Context) {
	var req cartItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := h.Svc.Remove(utils.OwnerKey(c), req.ProductID, req.Quantity); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": true})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(utils.OwnerKey(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
