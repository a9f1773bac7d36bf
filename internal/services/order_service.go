// internal/services/order_service.go
package services

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/florelle/orders-backend/internal/catalog"
	"github.com/florelle/orders-backend/internal/models"
	"github.com/florelle/orders-backend/internal/storage"
)

// OrderService orchestrates the store and the catalog behind the REST
// surface: reads are enriched with catalog items, writes pass through the
// store's validation, and the summary endpoint runs the range → count →
// expansion pipeline.
type OrderService struct {
	store   *storage.OrderStore
	catalog *catalog.Catalog
	log     *logrus.Logger
}

func NewOrderService(store *storage.OrderStore, cat *catalog.Catalog, log *logrus.Logger) *OrderService {
	return &OrderService{
		store:   store,
		catalog: cat,
		log:     log,
	}
}

// ListOrders returns every order with its products in catalog-enriched form.
// The enrichment is response-only; stored records keep plain name/quantity
// lines.
func (s *OrderService) ListOrders() []models.EnrichedOrder {
	orders := s.store.GetAll()
	enriched := make([]models.EnrichedOrder, 0, len(orders))
	for _, o := range orders {
		enriched = append(enriched, s.enrich(o))
	}
	return enriched
}

// GetOrder returns a single enriched order.
func (s *OrderService) GetOrder(id string) (models.EnrichedOrder, error) {
	order, err := s.store.GetByID(id)
	if err != nil {
		return models.EnrichedOrder{}, err
	}
	return s.enrich(order), nil
}

// CreateOrder stores a validated candidate and returns it with its new id.
func (s *OrderService) CreateOrder(candidate models.Order) (models.Order, error) {
	return s.store.Create(candidate)
}

// UpdateOrder replaces the order with the given id.
func (s *OrderService) UpdateOrder(id string, candidate models.Order) (models.Order, error) {
	return s.store.Update(id, candidate)
}

// DeleteOrder removes and returns the order with the given id.
func (s *OrderService) DeleteOrder(id string) (models.Order, error) {
	return s.store.Delete(id)
}

// ProductSummary aggregates the orders inside [start, end] down to item
// quantities: range filter, per-product count, then catalog expansion.
func (s *OrderService) ProductSummary(start, end time.Time) map[string]int {
	orders := s.store.WithinDateRange(start, end)
	counts := s.store.ExtractProductCounts(orders)
	return s.expandProductCounts(counts)
}

// expandProductCounts maps product counts to item counts through the
// catalog. Each item is *set* to the quantity of the product carrying it,
// so when two products share an item, the product processed last wins; the
// quantities are not summed. Clients have pinned this behavior, so product
// names are walked in sorted order to keep "last" deterministic.
func (s *OrderService) expandProductCounts(counts map[string]int) map[string]int {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	expanded := make(map[string]int)
	for _, name := range names {
		for _, item := range s.catalog.Items(name) {
			expanded[item] = counts[name]
		}
	}
	return expanded
}

func (s *OrderService) enrich(order models.Order) models.EnrichedOrder {
	return models.EnrichedOrder{
		ID:       order.ID,
		Date:     order.Date,
		Products: s.catalog.ProductsForOrder(order.Products),
		Address:  order.Address,
		Status:   order.Status,
	}
}
