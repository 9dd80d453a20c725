package testutils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/shopmate/shopmate/pkg/models"
)

// GenerateFixtureData writes a fake product catalog to outputDir for
// manual testing against the assistant endpoint.
func GenerateFixtureData(fixtureCount int, outputDir string) error {
	products := make([]models.Product, fixtureCount)
	for i := range products {
		info := gofakeit.Product()
		category := ""
		if len(info.Categories) > 0 {
			category = info.Categories[0]
		}
		products[i] = models.Product{
			ID:          json.Number(fmt.Sprintf("%d", i+1)),
			Name:        info.Name,
			Category:    category,
			Description: info.Description,
			Price:       info.Price,
			Rating:      floatPtr(gofakeit.Float64Range(1, 5)),
		}
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outputDir, "products.json"), payload, 0o644)
}
