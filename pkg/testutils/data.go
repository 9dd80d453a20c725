package testutils

import "github.com/shopmate/shopmate/pkg/models"

func floatPtr(v float64) *float64 { return &v }

// TestProducts is a small fixed catalog used across tests.
var TestProducts = []models.Product{
	{
		ID:          "1",
		Name:        "iPhone 12",
		Category:    "electronics",
		Description: "smartphone",
		Price:       799.00,
		Rating:      floatPtr(4.5),
	},
	{
		ID:          "2",
		Name:        "Desk Lamp",
		Category:    "home",
		Description: "lamp",
		Price:       34.99,
	},
	{
		ID:          "3",
		Name:        "Running Shoes",
		Category:    "footwear",
		Description: "lightweight trainers for daily runs",
		Price:       89.95,
		Discount:    10,
		Rating:      floatPtr(4.2),
	},
	{
		ID:          "4",
		Name:        "Chef Knife",
		Category:    "kitchen",
		Description: "8 inch stainless steel blade",
		Price:       49.50,
	},
}
