package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Austinkuria/E-commerce-Site/app/models"
	"github.com/Austinkuria/E-commerce-Site/pkg/database"
)

func TestCartAddItem(t *testing.T) {
	setupDB(t)
	user := seedUser(t, "add@example.com")
	product := seedProduct(t, "Mug", 300, 10)

	svc := NewCartService()

	view, err := svc.AddItem(user.ID, product.ID, 2)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	require.Equal(t, 2, view.Items[0].Quantity)
	require.Equal(t, 600.0, view.Subtotal)
	require.Equal(t, 50.0, view.ShippingFee)
	require.Equal(t, 650.0, view.Total)
}

func TestCartAddSameProductBumpsQuantity(t *testing.T) {
	setupDB(t)
	user := seedUser(t, "bump@example.com")
	product := seedProduct(t, "Mug", 300, 10)

	svc := NewCartService()

	_, err := svc.AddItem(user.ID, product.ID, 2)
	require.NoError(t, err)

	view, err := svc.AddItem(user.ID, product.ID, 3)
	require.NoError(t, err)
	require.Len(t, view.Items, 1, "same product must stay a single line")
	require.Equal(t, 5, view.Items[0].Quantity)
}

func TestCartAddItemRejectsOverStock(t *testing.T) {
	setupDB(t)
	user := seedUser(t, "over@example.com")
	product := seedProduct(t, "Mug", 300, 3)

	svc := NewCartService()

	_, err := svc.AddItem(user.ID, product.ID, 2)
	require.NoError(t, err)

	// 2 already in cart + 2 more would exceed the 3 in stock.
	_, err = svc.AddItem(user.ID, product.ID, 2)
	require.ErrorIs(t, err, ErrOutOfStock)

	view, err := svc.Get(user.ID)
	require.NoError(t, err)
	require.Equal(t, 2, view.Items[0].Quantity, "failed add must not change the cart")
}

func TestCartAddUnknownProduct(t *testing.T) {
	setupDB(t)
	user := seedUser(t, "unknown@example.com")

	svc := NewCartService()

	_, err := svc.AddItem(user.ID, 999, 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCartUpdateItemQuantity(t *testing.T) {
	setupDB(t)
	user := seedUser(t, "update@example.com")
	product := seedProduct(t, "Mug", 300, 10)

	svc := NewCartService()

	_, err := svc.AddItem(user.ID, product.ID, 2)
	require.NoError(t, err)

	view, err := svc.UpdateItem(user.ID, product.ID, +5)
	require.NoError(t, err)
	require.Equal(t, 7, view.Items[0].Quantity)

	view, err = svc.UpdateItem(user.ID, product.ID, -6)
	require.NoError(t, err)
	require.Equal(t, 1, view.Items[0].Quantity)

	// Driving the quantity to zero removes the line entirely.
	view, err = svc.UpdateItem(user.ID, product.ID, -1)
	require.NoError(t, err)
	require.Empty(t, view.Items)
}

func TestCartUpdateItemOverStock(t *testing.T) {
	setupDB(t)
	user := seedUser(t, "updateover@example.com")
	product := seedProduct(t, "Mug", 300, 3)

	svc := NewCartService()

	_, err := svc.AddItem(user.ID, product.ID, 3)
	require.NoError(t, err)

	_, err = svc.UpdateItem(user.ID, product.ID, +1)
	require.ErrorIs(t, err, ErrOutOfStock)

	view, err := svc.Get(user.ID)
	require.NoError(t, err)
	require.Equal(t, 3, view.Items[0].Quantity, "failed update must not change the cart")
}

func TestCartUpdateBelowZeroRemovesLine(t *testing.T) {
	setupDB(t)
	user := seedUser(t, "underflow@example.com")
	product := seedProduct(t, "Mug", 300, 10)

	svc := NewCartService()

	_, err := svc.AddItem(user.ID, product.ID, 2)
	require.NoError(t, err)

	view, err := svc.UpdateItem(user.ID, product.ID, -5)
	require.NoError(t, err)
	require.Empty(t, view.Items, "quantity can never go negative")
}

func TestCartRemoveItem(t *testing.T) {
	setupDB(t)
	user := seedUser(t, "remove@example.com")
	mug := seedProduct(t, "Mug", 300, 10)
	tee := seedProduct(t, "Tee", 800, 10)

	svc := NewCartService()

	_, err := svc.AddItem(user.ID, mug.ID, 1)
	require.NoError(t, err)
	_, err = svc.AddItem(user.ID, tee.ID, 1)
	require.NoError(t, err)

	view, err := svc.RemoveItem(user.ID, mug.ID)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	require.Equal(t, tee.ID, view.Items[0].ProductID)

	// Removing a line that is no longer there is a silent no-op.
	view, err = svc.RemoveItem(user.ID, mug.ID)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
}

func TestCartReAddAfterRemove(t *testing.T) {
	setupDB(t)
	user := seedUser(t, "readd@example.com")
	product := seedProduct(t, "Mug", 300, 10)

	svc := NewCartService()

	_, err := svc.AddItem(user.ID, product.ID, 2)
	require.NoError(t, err)

	_, err = svc.RemoveItem(user.ID, product.ID)
	require.NoError(t, err)

	// The (cart, product) pair must be free again immediately; a leftover
	// row would trip the unique index.
	view, err := svc.AddItem(user.ID, product.ID, 1)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	require.Equal(t, 1, view.Items[0].Quantity)
}

func TestCartAddItemRejectsNonPositiveQuantity(t *testing.T) {
	setupDB(t)
	user := seedUser(t, "nonpositive@example.com")
	product := seedProduct(t, "Mug", 300, 10)

	svc := NewCartService()

	_, err := svc.AddItem(user.ID, product.ID, 0)
	require.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.AddItem(user.ID, product.ID, -3)
	require.ErrorIs(t, err, ErrInvalidQuantity)

	view, err := svc.Get(user.ID)
	require.NoError(t, err)
	require.Empty(t, view.Items, "rejected adds must not touch the cart")
}

func TestCartUpdateItemProductGone(t *testing.T) {
	setupDB(t)
	user := seedUser(t, "gone@example.com")
	product := seedProduct(t, "Mug", 300, 10)

	svc := NewCartService()

	_, err := svc.AddItem(user.ID, product.ID, 1)
	require.NoError(t, err)

	// Product disappears from the catalogue while sitting in the cart.
	require.NoError(t, database.DB.Delete(&models.Product{}, product.ID).Error)

	_, err = svc.UpdateItem(user.ID, product.ID, +1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCartGetWithoutCart(t *testing.T) {
	setupDB(t)
	user := seedUser(t, "empty@example.com")

	svc := NewCartService()

	view, err := svc.Get(user.ID)
	require.NoError(t, err)
	require.Empty(t, view.Items)
	require.Zero(t, view.Subtotal)
	require.Zero(t, view.ShippingFee, "no fee on an empty cart")
	require.Zero(t, view.Total)
}

func TestCartTotalsFollowLivePrices(t *testing.T) {
	setupDB(t)
	user := seedUser(t, "reprice@example.com")
	product := seedProduct(t, "Mug", 300, 10)

	svc := NewCartService()

	_, err := svc.AddItem(user.ID, product.ID, 2)
	require.NoError(t, err)

	// Catalogue price changes while the item sits in the cart.
	product.Price = 500
	require.NoError(t, NewCatalogService().products.Update(&product))

	view, err := svc.Get(user.ID)
	require.NoError(t, err)
	require.Equal(t, 1000.0, view.Subtotal, "cart totals use the live price")
}
