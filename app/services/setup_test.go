package services

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Austinkuria/E-commerce-Site/app/models"
	"github.com/Austinkuria/E-commerce-Site/pkg/database"
	"github.com/Austinkuria/E-commerce-Site/pkg/event"
)

// setupDB points the global connection at a fresh in-memory sqlite database.
// cache=shared keeps the database alive across pooled connections, and
// _txlock=immediate makes concurrent write transactions queue instead of
// deadlocking on lock upgrades.
func setupDB(t *testing.T) {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=10000&_txlock=immediate", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{}, &models.Profile{},
		&models.Product{},
		&models.Cart{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{}, &models.Payment{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	database.DB = db
	event.Flush()

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
}

func seedProduct(t *testing.T, name string, price float64, stock int) models.Product {
	t.Helper()
	p := models.Product{Name: name, Price: price, Stock: stock, SKU: "SKU-" + name}
	if err := database.DB.Create(&p).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}

func seedUser(t *testing.T, email string) models.User {
	t.Helper()
	u := models.User{Name: "Test Shopper", Email: email, Password: "x", Role: "user"}
	if err := database.DB.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func validCheckout() CheckoutInput {
	return CheckoutInput{
		Address:       "12 Riverside Drive, Westlands",
		City:          "Nairobi",
		PostalCode:    "00100",
		Phone:         "+254712345678",
		PaymentMethod: "cod",
	}
}
