package database

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lumina-dine/table-order/models"
)

// Seed provisions the demo tables and menu. Idempotent: existing records are
// matched by their unique code or name and left alone, so it is safe to run
// on every startup.
func Seed(db *gorm.DB) error {
	tables := []models.Table{
		{Label: "Table 1", QRCode: "table-1"},
		{Label: "Table 2", QRCode: "table-2"},
	}
	for i := range tables {
		if err := db.Where(models.Table{QRCode: tables[i].QRCode}).
			FirstOrCreate(&tables[i]).Error; err != nil {
			return err
		}
	}

	items := []models.MenuItem{
		{
			Name:        "Bruschetta",
			Description: "Grilled bread rubbed with garlic and topped with olive oil and salt.",
			Price:       decimal.RequireFromString("8.50"),
			Category:    "Starters",
			IsAvailable: true,
		},
		{
			Name:        "Margherita Pizza",
			Description: "Tomato sauce, mozzarella, and basil.",
			Price:       decimal.RequireFromString("12.00"),
			Category:    "Mains",
			IsAvailable: true,
		},
		{
			Name:        "Carbonara Pasta",
			Description: "Spaghetti with cured pork, hard cheese, eggs, and black pepper.",
			Price:       decimal.RequireFromString("14.50"),
			Category:    "Mains",
			IsAvailable: true,
		},
		{
			Name:        "Coca Cola",
			Description: "Chilled 330ml can.",
			Price:       decimal.RequireFromString("2.50"),
			Category:    "Drinks",
			IsAvailable: true,
		},
	}
	for i := range items {
		if err := db.Where(models.MenuItem{Name: items[i].Name}).
			FirstOrCreate(&items[i]).Error; err != nil {
			return err
		}
	}

	return nil
}
