package controllers

import (
	"net/http"

	"github.com/Austinkuria/E-commerce-Site/app/services"
	"github.com/Austinkuria/E-commerce-Site/pkg/ctx"
)

type ProductController struct {
	service *services.CatalogService
}

func NewProductController() *ProductController {
	return &ProductController{service: services.NewCatalogService()}
}

// Index returns one page of the catalogue.
func (pc *ProductController) Index(c *ctx.Context) {
	page := c.QueryInt("page", 1)
	perPage := c.QueryInt("per_page", 20)

	products, pagination, err := pc.service.List(page, perPage)
	if err != nil {
		fail(c, err)
		return
	}

	c.Success(map[string]interface{}{
		"products":   products,
		"pagination": pagination,
	})
}

// Show returns a single product.
func (pc *ProductController) Show(c *ctx.Context) {
	id, err := c.ParamUint("id")
	if err != nil {
		c.Error(http.StatusBadRequest, err.Error())
		return
	}

	product, err := pc.service.Find(id)
	if err != nil {
		fail(c, err)
		return
	}

	c.Success(map[string]interface{}{
		"product":   product,
		"image_url": pc.service.ImageURL(product),
	})
}

// Store creates a product (admin only).
func (pc *ProductController) Store(c *ctx.Context) {
	var in services.ProductInput
	if !c.BindJSON(&in) {
		return
	}

	product, err := pc.service.Create(in)
	if err != nil {
		fail(c, err)
		return
	}
	c.Created(product)
}

// Update overwrites a product (admin only).
func (pc *ProductController) Update(c *ctx.Context) {
	id, err := c.ParamUint("id")
	if err != nil {
		c.Error(http.StatusBadRequest, err.Error())
		return
	}

	var in services.ProductInput
	if !c.BindJSON(&in) {
		return
	}

	product, err := pc.service.Update(id, in)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(product)
}

// UploadImage stores a product image on the configured disk (admin only).
func (pc *ProductController) UploadImage(c *ctx.Context) {
	id, err := c.ParamUint("id")
	if err != nil {
		c.Error(http.StatusBadRequest, err.Error())
		return
	}

	file, header, err := c.FormFile("image")
	if err != nil {
		c.Error(http.StatusBadRequest, "The image file is required.")
		return
	}
	defer file.Close()

	product, err := pc.service.AttachImage(id, file, header)
	if err != nil {
		fail(c, err)
		return
	}

	c.Success(map[string]interface{}{
		"product":   product,
		"image_url": pc.service.ImageURL(product),
	})
}
