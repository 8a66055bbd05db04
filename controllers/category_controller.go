package controllers

import (
	"errors"
	"strconv"

	"store/pkg/resp"
	"store/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryController struct{ Svc *services.CatalogService }

func NewCategoryController(s *services.CatalogService) *CategoryController {
	return &CategoryController{Svc: s}
}

// GET /categories
func (h *CategoryController) List(c *gin.Context) {
	categories, err := h.Svc.Categories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, categories)
}

// GET /admin/categories (with product counts)
func (h *CategoryController) AdminList(c *gin.Context) {
	summaries, err := h.Svc.CategorySummaries()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, summaries)
}

// POST /admin/categories
func (h *CategoryController) Create(c *gin.Context) {
	var req services.CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	category, err := h.Svc.CreateCategory(&req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, category)
}

// PATCH /admin/categories/:id
func (h *CategoryController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	var req services.CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	category, uerr := h.Svc.UpdateCategory(uint(id), &req)
	if errors.Is(uerr, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "category not found")
		return
	}
	if uerr != nil {
		resp.ServerError(c, uerr)
		return
	}
	resp.OK(c, category)
}

// DELETE /admin/categories/:id
func (h *CategoryController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	if err := h.Svc.DeleteCategory(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
