package services

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path"
	"time"

	"gorm.io/gorm"

	"github.com/Austinkuria/E-commerce-Site/app/models"
	"github.com/Austinkuria/E-commerce-Site/app/repositories"
	"github.com/Austinkuria/E-commerce-Site/pkg/orm"
	"github.com/Austinkuria/E-commerce-Site/pkg/storage"
)

// ProductInput is the validated admin product form.
type ProductInput struct {
	Name        string  `json:"name"        validate:"required,max=255"`
	Description string  `json:"description" validate:"nullable,max=5000"`
	Price       float64 `json:"price"       validate:"required,gte=0"`
	Stock       int     `json:"stock"       validate:"gte=0"`
	SKU         string  `json:"sku"         validate:"required,max=100"`
}

// CatalogService exposes the product catalogue and its admin operations.
type CatalogService struct {
	products *repositories.ProductRepository
}

func NewCatalogService() *CatalogService {
	return &CatalogService{products: repositories.NewProductRepository()}
}

// List returns one page of the catalogue.
func (s *CatalogService) List(page, perPage int) ([]models.Product, orm.Pagination, error) {
	return s.products.All(page, perPage)
}

// ListAll returns the whole catalogue, cache-backed. Used by the GraphQL
// query endpoint where the client does its own filtering.
func (s *CatalogService) ListAll() ([]models.Product, error) {
	return s.products.AllCached()
}

// Find returns a single product.
func (s *CatalogService) Find(id uint) (models.Product, error) {
	product, err := s.products.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return product, ErrNotFound
	}
	return product, err
}

// Create adds a product to the catalogue.
func (s *CatalogService) Create(in ProductInput) (models.Product, error) {
	product := models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		SKU:         in.SKU,
	}
	err := s.products.Create(&product)
	return product, err
}

// Update overwrites a product's editable fields.
func (s *CatalogService) Update(id uint, in ProductInput) (models.Product, error) {
	product, err := s.Find(id)
	if err != nil {
		return product, err
	}

	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.Stock = in.Stock
	product.SKU = in.SKU

	err = s.products.Update(&product)
	return product, err
}

// AttachImage stores an uploaded product image on the configured disk and
// records its path on the product.
func (s *CatalogService) AttachImage(id uint, file multipart.File, header *multipart.FileHeader) (models.Product, error) {
	product, err := s.Find(id)
	if err != nil {
		return product, err
	}

	ext := path.Ext(header.Filename)
	key := fmt.Sprintf("products/%d/%d%s", product.ID, time.Now().UnixNano(), ext)

	if err := storage.PutStream(key, file); err != nil {
		return product, err
	}

	if product.ImagePath != "" {
		storage.Delete(product.ImagePath) //nolint:errcheck
	}

	product.ImagePath = key
	err = s.products.Update(&product)
	return product, err
}

// ImageURL resolves a product's stored image path to a public URL.
func (s *CatalogService) ImageURL(product models.Product) string {
	if product.ImagePath == "" {
		return ""
	}
	return storage.URL(product.ImagePath)
}
