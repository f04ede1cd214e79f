package seed

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/thekidkid/clothing-brand/internal/shared/database/dbgen"
	"github.com/thekidkid/clothing-brand/internal/shared/database/helper"
)

// SeedProducts loads the starter catalog. Inserts are best-effort; a failed
// row is logged and skipped so reruns against a populated table stay quiet.
func SeedProducts(db *sql.DB, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx := context.Background()
	q := dbgen.New(db)

	products := []struct {
		Name        string
		Description string
		Price       string
		Category    string
		Sizes       []string
		Colors      []string
		Tags        []string
		Stock       int32
	}{
		{
			Name:        "Bear Logo T-Shirt",
			Description: "Heavyweight cotton tee with the embroidered bear logo.",
			Price:       "39.99",
			Category:    "T-Shirts",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Black", "White", "Sand"},
			Tags:        []string{"new", "logo"},
			Stock:       120,
		},
		{
			Name:        "Classic Denim Jacket",
			Description: "Stonewashed denim jacket with brass hardware.",
			Price:       "89.99",
			Category:    "Jackets",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Indigo", "Washed Black"},
			Tags:        []string{"denim", "bestseller"},
			Stock:       45,
		},
		{
			Name:        "Urban Hoodie",
			Description: "Fleece-lined pullover hoodie with kangaroo pocket.",
			Price:       "59.99",
			Category:    "Hoodies",
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Colors:      []string{"Charcoal", "Olive", "Cream"},
			Tags:        []string{"fleece"},
			Stock:       80,
		},
		{
			Name:        "Vintage T-Shirt",
			Description: "Garment-dyed tee with a faded print.",
			Price:       "34.99",
			Category:    "T-Shirts",
			Sizes:       []string{"S", "M", "L"},
			Colors:      []string{"Faded Blue", "Rust"},
			Tags:        []string{"vintage"},
			Stock:       60,
		},
		{
			Name:        "Summer Midi Dress",
			Description: "Lightweight linen-blend midi dress.",
			Price:       "74.99",
			Category:    "Dresses",
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors:      []string{"Sage", "Ivory"},
			Tags:        []string{"summer", "new"},
			Stock:       35,
		},
		{
			Name:        "Relaxed Cargo Pants",
			Description: "Relaxed-fit cargo pants with adjustable cuffs.",
			Price:       "64.99",
			Category:    "Pants",
			Sizes:       []string{"28", "30", "32", "34", "36"},
			Colors:      []string{"Khaki", "Black"},
			Tags:        []string{"cargo"},
			Stock:       50,
		},
		{
			Name:        "Canvas Tote Bag",
			Description: "Heavy canvas tote with interior pocket.",
			Price:       "24.99",
			Category:    "Accessories",
			Tags:        []string{"canvas"},
			Stock:       200,
		},
	}

	for _, p := range products {
		_, err := q.CreateProduct(ctx, dbgen.CreateProductParams{
			Name:          p.Name,
			Description:   helper.StringToNull(&p.Description),
			Price:         p.Price,
			Category:      p.Category,
			Sizes:         p.Sizes,
			Colors:        p.Colors,
			Tags:          p.Tags,
			StockQuantity: p.Stock,
		})
		if err != nil {
			logger.Warn("skip seed product", zap.String("name", p.Name), zap.Error(err))
			continue
		}
	}

	logger.Info("product seeding done", zap.Int("count", len(products)))
	return nil
}
