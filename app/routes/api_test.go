package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Austinkuria/E-commerce-Site/app/models"
	"github.com/Austinkuria/E-commerce-Site/internal/kernel"
	"github.com/Austinkuria/E-commerce-Site/pkg/database"
	"github.com/Austinkuria/E-commerce-Site/pkg/event"
)

// setupAPI points the global connection at a fresh in-memory sqlite database
// and returns the fully assembled HTTP handler.
func setupAPI(t *testing.T) http.Handler {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=10000&_txlock=immediate", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Profile{},
		&models.Product{},
		&models.Cart{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{}, &models.Payment{},
	))

	database.DB = db
	event.Flush()

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return kernel.BuildHandler()
}

type apiEnvelope struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func do(t *testing.T, h http.Handler, method, path, token string, body any) (*httptest.ResponseRecorder, apiEnvelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env apiEnvelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	}
	return rec, env
}

func signup(t *testing.T, h http.Handler, email string) string {
	t.Helper()

	rec, env := do(t, h, http.MethodPost, "/api/signup", "", map[string]string{
		"name":                  "Test Shopper",
		"email":                 email,
		"password":              "super-secret",
		"password_confirmation": "super-secret",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func TestShopperFlow(t *testing.T) {
	h := setupAPI(t)

	product := models.Product{Name: "Ceramic Mug", Price: 300, Stock: 5, SKU: "MUG-001"}
	require.NoError(t, database.DB.Create(&product).Error)

	token := signup(t, h, "flow@example.com")

	// Catalogue is public.
	rec, _ := do(t, h, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Fill the cart.
	rec, env := do(t, h, http.MethodPost, "/api/cart/items", token, map[string]any{
		"product_id": product.ID,
		"quantity":   2,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var cart struct {
		Subtotal    float64 `json:"subtotal"`
		ShippingFee float64 `json:"shipping_fee"`
		Total       float64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	require.Equal(t, 600.0, cart.Subtotal)
	require.Equal(t, 50.0, cart.ShippingFee)
	require.Equal(t, 650.0, cart.Total)

	// Place the order.
	rec, env = do(t, h, http.MethodPost, "/api/checkout", token, map[string]any{
		"address":        "12 Riverside Drive, Westlands",
		"city":           "Nairobi",
		"postal_code":    "00100",
		"phone":          "+254712345678",
		"payment_method": "cod",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var order struct {
		Total  float64 `json:"total"`
		Status string  `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &order))
	require.Equal(t, 650.0, order.Total)
	require.Equal(t, models.OrderStatusPending, order.Status)

	// Stock came down and the cart is empty again.
	var fresh models.Product
	require.NoError(t, database.DB.First(&fresh, product.ID).Error)
	require.Equal(t, 3, fresh.Stock)

	rec, env = do(t, h, http.MethodGet, "/api/cart", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	require.Equal(t, 0.0, cart.Total)

	// Order history shows the purchase.
	rec, env = do(t, h, http.MethodGet, "/api/orders", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &orders))
	require.Len(t, orders, 1)
}

func TestCartRequiresAuth(t *testing.T) {
	h := setupAPI(t)

	rec, _ := do(t, h, http.MethodGet, "/api/cart", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoutesRejectShoppers(t *testing.T) {
	h := setupAPI(t)

	token := signup(t, h, "shopper@example.com")

	rec, _ := do(t, h, http.MethodPost, "/api/admin/products", token, map[string]any{
		"name": "Sneaky Product", "price": 1, "stock": 1,
	})
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCheckoutValidatesShippingForm(t *testing.T) {
	h := setupAPI(t)

	product := models.Product{Name: "Tote", Price: 600, Stock: 3, SKU: "TOTE-001"}
	require.NoError(t, database.DB.Create(&product).Error)

	token := signup(t, h, "forms@example.com")

	rec, _ := do(t, h, http.MethodPost, "/api/cart/items", token, map[string]any{
		"product_id": product.ID, "quantity": 1,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// Missing address and an unknown payment method.
	rec, env := do(t, h, http.MethodPost, "/api/checkout", token, map[string]any{
		"city":           "Nairobi",
		"postal_code":    "00100",
		"payment_method": "barter",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Contains(t, env.Errors, "address")
	require.Contains(t, env.Errors, "payment_method")

	// Nothing was ordered, stock untouched.
	var count int64
	require.NoError(t, database.DB.Model(&models.Order{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestCheckoutEmptyCart(t *testing.T) {
	h := setupAPI(t)

	token := signup(t, h, "empty@example.com")

	rec, env := do(t, h, http.MethodPost, "/api/checkout", token, map[string]any{
		"address":        "12 Riverside Drive",
		"city":           "Nairobi",
		"postal_code":    "00100",
		"payment_method": "cod",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Equal(t, "Your cart is empty.", env.Message)
}
