// Package catalogfile loads the static product catalog produced by
// the shop scraper (catalog.json).
package catalogfile

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/niksmo/storefront/internal/core/domain"
)

type catalogProduct struct {
	SKU         string   `json:"sku"`
	Title       string   `json:"title"`
	Price       string   `json:"price"`
	ImageURL    string   `json:"image_url"`
	Categories  []string `json:"categories"`
	Description string   `json:"description"`
}

// Load reads and decodes the catalog file. The returned slice keeps
// the file order, which is the "featured" order of the shop.
// Records without a SKU are skipped: the SKU keys the cart lines.
func Load(path string) ([]domain.Product, error) {
	const op = "catalogfile.Load"
	log := slog.With("op", op)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Error("failed to close catalog file", "err", err)
		}
	}()

	var records []catalogProduct
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("%s: failed to decode: %w", op, err)
	}

	var skipped int
	ps := make([]domain.Product, 0, len(records))
	for _, r := range records {
		if r.SKU == "" {
			skipped++
			continue
		}
		ps = append(ps, domain.Product{
			SKU:         r.SKU,
			Title:       r.Title,
			Price:       r.Price,
			ImageURL:    r.ImageURL,
			Categories:  r.Categories,
			Description: r.Description,
		})
	}

	log.Info("catalog loaded", "nProducts", len(ps), "skipped", skipped)
	return ps, nil
}
