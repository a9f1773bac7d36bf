// internal/catalog/catalog.go
package catalog

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/florelle/orders-backend/internal/models"
)

// Catalog is the static mapping from product name to the items the product
// is composed of. It is loaded once at process start and read-only after
// that, so lookups need no locking.
type Catalog struct {
	products map[string][]string
}

// New builds a catalog from an in-memory mapping.
func New(products map[string][]string) *Catalog {
	if products == nil {
		products = make(map[string][]string)
	}
	return &Catalog{products: products}
}

// Load reads the products file at path. A missing file or malformed content
// degrades to an empty catalog instead of failing startup; orders simply
// stop validating against any product names.
func Load(path string, log *logrus.Logger) *Catalog {
	data, err := os.ReadFile(path)
	if err != nil {
		log.WithError(err).WithField("path", path).Warn("Products file unavailable, using empty catalog")
		return New(nil)
	}

	var doc models.CatalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		log.WithError(err).WithField("path", path).Warn("Products file malformed, using empty catalog")
		return New(nil)
	}

	log.WithFields(logrus.Fields{
		"path":     path,
		"products": len(doc.Products),
	}).Info("Product catalog loaded")
	return New(doc.Products)
}

// Has reports whether name is a known product.
func (c *Catalog) Has(name string) bool {
	_, ok := c.products[name]
	return ok
}

// Items returns the item list for a product. Unknown names yield an empty
// list, never an error.
func (c *Catalog) Items(name string) []string {
	items, ok := c.products[name]
	if !ok {
		return []string{}
	}
	return items
}

// Names returns the known product names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.products))
	for name := range c.products {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ProductsForOrder enriches order lines with their catalog item lists. Lines
// whose product name is not in the catalog are silently dropped.
func (c *Catalog) ProductsForOrder(lines []models.OrderProduct) []models.ProductDetail {
	details := make([]models.ProductDetail, 0, len(lines))
	for _, line := range lines {
		items, ok := c.products[line.Name]
		if !ok {
			continue
		}
		details = append(details, models.ProductDetail{
			Name:     line.Name,
			Quantity: line.Quantity,
			Items:    items,
		})
	}
	return details
}
