package controllers

import (
	"errors"
	"strconv"

	"store/pkg/resp"
	"store/services"
	"store/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// POST /orders/checkout
func (h *OrderController) Checkout(c *gin.Context) {
	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.Checkout(utils.CurrentUsername(c), &req)
	if errors.Is(err, services.ErrEmptyCart) {
		resp.BadRequest(c, err.Error())
		return
	}
	if errors.Is(err, services.ErrPaymentDeclined) {
		resp.BadRequest(c, err.Error())
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, gin.H{"orderId": order.ID, "total": order.Total})
}

// GET /profile/orders
func (h *OrderController) History(c *gin.Context) {
	orders, err := h.Svc.History(utils.CurrentUsername(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /admin/orders
func (h *OrderController) AdminList(c *gin.Context) {
	orders, err := h.Svc.AdminList()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /admin/orders/:id
func (h *OrderController) AdminDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	order, oerr := h.Svc.AdminDetail(uint(id))
	if errors.Is(oerr, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "order not found")
		return
	}
	if oerr != nil {
		resp.ServerError(c, oerr)
		return
	}
	resp.OK(c, order)
}
