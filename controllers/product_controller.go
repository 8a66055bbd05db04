package controllers

import (
	"errors"
	"strconv"

	"store/pkg/resp"
	"store/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductController struct{ Svc *services.CatalogService }

func NewProductController(s *services.CatalogService) *ProductController {
	return &ProductController{Svc: s}
}

// GET /products?category=&q=
func (h *ProductController) List(c *gin.Context) {
	products, err := h.Svc.Browse(c.Query("category"), c.Query("q"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, products)
}

// GET /products/featured
func (h *ProductController) Featured(c *gin.Context) {
	products, err := h.Svc.Featured()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, products)
}

// GET /products/:id
func (h *ProductController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	product, similar, err := h.Svc.GetProduct(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "product not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"product": product, "similar": similar})
}

// GET /admin/products?categoryId=
func (h *ProductController) AdminList(c *gin.Context) {
	var categoryID uint
	if v := c.Query("categoryId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			resp.BadRequest(c, "invalid categoryId")
			return
		}
		categoryID = uint(id)
	}

	products, err := h.Svc.AdminProducts(categoryID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, products)
}

// POST /admin/products
func (h *ProductController) Create(c *gin.Context) {
	var req services.ProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	product, err := h.Svc.CreateProduct(&req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, product)
}

// PATCH /admin/products/:id
func (h *ProductController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	var req services.ProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	product, uerr := h.Svc.UpdateProduct(uint(id), &req)
	if errors.Is(uerr, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "product not found")
		return
	}
	if uerr != nil {
		resp.ServerError(c, uerr)
		return
	}
	resp.OK(c, product)
}

// DELETE /admin/products/:id
func (h *ProductController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	if err := h.Svc.DeleteProduct(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
