package services

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Austinkuria/E-commerce-Site/app/models"
	"github.com/Austinkuria/E-commerce-Site/pkg/database"
	"github.com/Austinkuria/E-commerce-Site/pkg/event"
)

func TestCheckoutEmptyCart(t *testing.T) {
	setupDB(t)
	user := seedUser(t, "empty@example.com")

	svc := NewCheckoutService()

	_, err := svc.PlaceOrder(user.ID, validCheckout())
	require.ErrorIs(t, err, ErrCartEmpty)
}

func TestCheckoutPlacesOrder(t *testing.T) {
	setupDB(t)
	user := seedUser(t, "buyer@example.com")
	mug := seedProduct(t, "Mug", 300, 5)
	tee := seedProduct(t, "Tee", 800, 5)

	carts := NewCartService()
	_, err := carts.AddItem(user.ID, mug.ID, 1)
	require.NoError(t, err)
	_, err = carts.AddItem(user.ID, tee.ID, 1)
	require.NoError(t, err)

	var placed []interface{}
	event.Listen("order.placed", func(payload interface{}) { placed = append(placed, payload) })

	svc := NewCheckoutService()
	order, err := svc.PlaceOrder(user.ID, validCheckout())
	require.NoError(t, err)

	require.Equal(t, 1100.0, order.Subtotal)
	require.Equal(t, 100.0, order.ShippingFee)
	require.Equal(t, 1200.0, order.Total)
	require.Equal(t, models.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 2)

	// Payment placeholder row is created with the order.
	require.Equal(t, "cod", order.Payment.Method)
	require.Equal(t, 1200.0, order.Payment.Amount)
	require.Equal(t, "N/A", order.Payment.TransactionID)
	require.Equal(t, "pending", order.Payment.Status)

	// Stock was reserved.
	var gotMug, gotTee models.Product
	require.NoError(t, database.DB.First(&gotMug, mug.ID).Error)
	require.NoError(t, database.DB.First(&gotTee, tee.ID).Error)
	require.Equal(t, 4, gotMug.Stock)
	require.Equal(t, 4, gotTee.Stock)

	// Cart was emptied in the same transaction.
	view, err := carts.Get(user.ID)
	require.NoError(t, err)
	require.Empty(t, view.Items)
}

func TestCheckoutCartReusableForNextOrder(t *testing.T) {
	setupDB(t)
	user := seedUser(t, "repeat@example.com")
	mug := seedProduct(t, "Mug", 300, 10)

	carts := NewCartService()
	_, err := carts.AddItem(user.ID, mug.ID, 2)
	require.NoError(t, err)

	svc := NewCheckoutService()
	_, err = svc.PlaceOrder(user.ID, validCheckout())
	require.NoError(t, err)

	// Buying the same product again must start a fresh line, not collide
	// with the cleared one.
	view, err := carts.AddItem(user.ID, mug.ID, 3)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	require.Equal(t, 3, view.Items[0].Quantity)

	order, err := svc.PlaceOrder(user.ID, validCheckout())
	require.NoError(t, err)
	require.Equal(t, 900.0, order.Subtotal)
}

func TestCheckoutRollsBackWhenAnyLineIsShort(t *testing.T) {
	setupDB(t)
	user := seedUser(t, "short@example.com")
	mug := seedProduct(t, "Mug", 300, 5)
	tee := seedProduct(t, "Tee", 800, 5)

	carts := NewCartService()
	_, err := carts.AddItem(user.ID, mug.ID, 2)
	require.NoError(t, err)
	_, err = carts.AddItem(user.ID, tee.ID, 3)
	require.NoError(t, err)

	// Another sale drains the tee below what the cart needs.
	require.NoError(t, database.DB.Model(&models.Product{}).
		Where("id = ?", tee.ID).Update("stock", 1).Error)

	svc := NewCheckoutService()
	_, err = svc.PlaceOrder(user.ID, validCheckout())
	require.ErrorIs(t, err, ErrOutOfStock)

	// The mug decrement rolled back with everything else.
	var gotMug models.Product
	require.NoError(t, database.DB.First(&gotMug, mug.ID).Error)
	require.Equal(t, 5, gotMug.Stock)

	var orderCount int64
	require.NoError(t, database.DB.Model(&models.Order{}).Count(&orderCount).Error)
	require.Zero(t, orderCount, "no partial order may exist")

	view, err := carts.Get(user.ID)
	require.NoError(t, err)
	require.Len(t, view.Items, 2, "cart survives a failed checkout")
}

func TestCheckoutFreezesUnitPrices(t *testing.T) {
	setupDB(t)
	user := seedUser(t, "freeze@example.com")
	mug := seedProduct(t, "Mug", 300, 5)

	carts := NewCartService()
	_, err := carts.AddItem(user.ID, mug.ID, 2)
	require.NoError(t, err)

	svc := NewCheckoutService()
	order, err := svc.PlaceOrder(user.ID, validCheckout())
	require.NoError(t, err)

	// Catalogue price doubles after the sale.
	require.NoError(t, database.DB.Model(&models.Product{}).
		Where("id = ?", mug.ID).Update("price", 600).Error)

	got, err := NewOrderService().Find(order.ID, user.ID)
	require.NoError(t, err)
	require.Equal(t, 300.0, got.Items[0].UnitPrice)
	require.Equal(t, 600.0, got.Subtotal)
}

func TestCheckoutSavesShippingProfile(t *testing.T) {
	setupDB(t)
	user := seedUser(t, "profile@example.com")
	mug := seedProduct(t, "Mug", 300, 5)

	carts := NewCartService()
	_, err := carts.AddItem(user.ID, mug.ID, 1)
	require.NoError(t, err)

	in := validCheckout()
	in.SaveDetails = true

	svc := NewCheckoutService()
	_, err = svc.PlaceOrder(user.ID, in)
	require.NoError(t, err)

	var profile models.Profile
	require.NoError(t, database.DB.Where("user_id = ?", user.ID).First(&profile).Error)
	require.Equal(t, in.Address, profile.Address)
	require.Equal(t, in.City, profile.City)
}

func TestConcurrentCheckoutLastUnit(t *testing.T) {
	setupDB(t)
	first := seedUser(t, "first@example.com")
	second := seedUser(t, "second@example.com")
	mug := seedProduct(t, "Mug", 300, 1)

	carts := NewCartService()
	_, err := carts.AddItem(first.ID, mug.ID, 1)
	require.NoError(t, err)
	_, err = carts.AddItem(second.ID, mug.ID, 1)
	require.NoError(t, err)

	svc := NewCheckoutService()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, uid := range []uint{first.ID, second.ID} {
		wg.Add(1)
		go func(i int, uid uint) {
			defer wg.Done()
			_, errs[i] = svc.PlaceOrder(uid, validCheckout())
		}(i, uid)
	}
	wg.Wait()

	var succeeded, rejected int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrOutOfStock):
			rejected++
		default:
			t.Fatalf("unexpected checkout error: %v", err)
		}
	}
	require.Equal(t, 1, succeeded, "exactly one checkout wins the last unit")
	require.Equal(t, 1, rejected, "the loser is told the product ran out")

	var got models.Product
	require.NoError(t, database.DB.First(&got, mug.ID).Error)
	require.Equal(t, 0, got.Stock, "stock never goes negative")

	var orderCount int64
	require.NoError(t, database.DB.Model(&models.Order{}).Count(&orderCount).Error)
	require.EqualValues(t, 1, orderCount)
}
