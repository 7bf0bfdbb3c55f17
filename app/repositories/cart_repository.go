package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Austinkuria/E-commerce-Site/app/models"
	"github.com/Austinkuria/E-commerce-Site/pkg/orm"
)

// CartRepository handles database operations for Cart and CartItem.
type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

// FindByUser returns the user's cart with items and products preloaded.
// Returns gorm.ErrRecordNotFound when the user has no cart yet.
func (r *CartRepository) FindByUser(userID uint) (models.Cart, error) {
	var cart models.Cart
	err := orm.DB().Model(&models.Cart{}).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("cart_items.id") }).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&cart)
	return cart, err
}

// FindOrCreateByUser returns the user's cart, creating an empty one first if
// none exists.
func (r *CartRepository) FindOrCreateByUser(userID uint) (models.Cart, error) {
	cart, err := r.FindByUser(userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return cart, err
	}

	cart = models.Cart{UserID: userID}
	if err := orm.DB().Create(&cart); err != nil {
		return cart, err
	}
	return cart, nil
}

// FindItem returns the cart line for a product, if present.
func (r *CartRepository) FindItem(cartID, productID uint) (models.CartItem, error) {
	var item models.CartItem
	err := orm.DB().Model(&models.CartItem{}).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&item)
	return item, err
}

// SaveItem inserts or updates a cart line.
func (r *CartRepository) SaveItem(item *models.CartItem) error {
	return orm.DB().Save(item)
}

// DeleteItem removes a cart line.
func (r *CartRepository) DeleteItem(cartID, productID uint) error {
	return orm.DB().Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&models.CartItem{})
}

// ClearItems removes every line from a cart inside tx. Used by checkout so
// the cart only empties when the order commits.
func (r *CartRepository) ClearItems(tx *gorm.DB, cartID uint) error {
	return tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}

// FindStale returns non-empty carts untouched since the cutoff, for the
// abandoned-cart reminder sweep.
func (r *CartRepository) FindStale(cutoff time.Time) ([]models.Cart, error) {
	var carts []models.Cart
	err := orm.DB().Model(&models.Cart{}).
		Preload("Items").
		Where("updated_at < ?", cutoff).
		Where("EXISTS (SELECT 1 FROM cart_items WHERE cart_items.cart_id = carts.id)").
		Get(&carts)
	return carts, err
}
