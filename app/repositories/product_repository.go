package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/Austinkuria/E-commerce-Site/app/models"
	"github.com/Austinkuria/E-commerce-Site/pkg/cache"
	"github.com/Austinkuria/E-commerce-Site/pkg/orm"
)

// catalogCacheKey caches the full product list for the storefront.
const catalogCacheKey = "shop:products:all"

// ProductRepository handles database operations for Product.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// All returns one page of the catalogue, newest first.
func (r *ProductRepository) All(page, perPage int) ([]models.Product, orm.Pagination, error) {
	var products []models.Product
	pagination, err := orm.DB().Model(&models.Product{}).Order("created_at desc").
		Paginate(page, perPage, &products)
	return products, pagination, err
}

// AllCached returns the full catalogue, served from Redis when warm.
func (r *ProductRepository) AllCached() ([]models.Product, error) {
	var products []models.Product
	err := orm.DB().Model(&models.Product{}).Order("created_at desc").
		Cache(catalogCacheKey, 5*time.Minute, &products)
	return products, err
}

// FindByID looks up a product by primary key.
func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	var product models.Product
	err := orm.DB().Model(&models.Product{}).Where("id = ?", id).First(&product)
	return product, err
}

// Create persists a new product and invalidates the catalogue cache.
func (r *ProductRepository) Create(product *models.Product) error {
	if err := orm.DB().Create(product); err != nil {
		return err
	}
	cache.Forget(catalogCacheKey) //nolint:errcheck
	return nil
}

// Update persists changes to a product and invalidates the catalogue cache.
func (r *ProductRepository) Update(product *models.Product) error {
	if err := orm.DB().Save(product); err != nil {
		return err
	}
	cache.Forget(catalogCacheKey) //nolint:errcheck
	return nil
}

// DecrementStock atomically reserves qty units of a product inside tx.
// The guarded UPDATE only touches the row when enough stock remains, so two
// concurrent checkouts can never both take the last unit. Returns false when
// the product is out of stock (zero rows affected).
func (r *ProductRepository) DecrementStock(tx *gorm.DB, productID uint, qty int) (bool, error) {
	res := tx.Model(&models.Product{}).
		Where("id = ? AND stock >= ?", productID, qty).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
