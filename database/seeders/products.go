package seeders

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Austinkuria/E-commerce-Site/app/models"
	"github.com/Austinkuria/E-commerce-Site/pkg/auth"
)

func init() {
	Register("admin-user", SeedAdminUser)
	Register("products", SeedProducts)
}

// SeedAdminUser creates the default admin account if it does not exist.
// Change the password after first login.
func SeedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", "admin@shop.local").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword("change-me-now")
	if err != nil {
		return err
	}

	// Every user gets a profile row at creation, the admin included.
	return db.Transaction(func(tx *gorm.DB) error {
		admin := models.User{
			Name:     "Shop Admin",
			Email:    "admin@shop.local",
			Password: hash,
			Role:     "admin",
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}
		return tx.Create(&models.Profile{UserID: admin.ID}).Error
	})
}

// SeedProducts loads a small demo catalogue. Upserts on SKU so the seeder
// is safe to re-run.
func SeedProducts(db *gorm.DB) error {
	products := []models.Product{
		{Name: "Ceramic Mug", Description: "350ml stoneware mug, dishwasher safe.", Price: 300, Stock: 120, SKU: "MUG-001", Rating: 4, Reviews: 31},
		{Name: "Canvas Tote Bag", Description: "Heavy-duty cotton tote, 40x35cm.", Price: 600, Stock: 80, SKU: "TOTE-001", Rating: 5, Reviews: 12},
		{Name: "Notebook A5", Description: "Dotted, 160 pages, lay-flat binding.", Price: 450, Stock: 200, SKU: "NOTE-001", Rating: 4, Reviews: 58},
		{Name: "Water Bottle 1L", Description: "Insulated stainless steel, keeps cold 24h.", Price: 1200, Stock: 60, SKU: "BOTL-001", Rating: 3, Reviews: 9},
		{Name: "Desk Lamp", Description: "LED lamp with three brightness levels.", Price: 2500, Stock: 35, SKU: "LAMP-001"},
		{Name: "Mechanical Keyboard", Description: "87-key, hot-swappable switches.", Price: 7800, Stock: 15, SKU: "KEYB-001", Rating: 5, Reviews: 44},
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "sku"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "description", "price"}),
	}).Create(&products).Error
}
