// internal/storage/order_store.go
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/florelle/orders-backend/internal/catalog"
	"github.com/florelle/orders-backend/internal/models"
	"github.com/florelle/orders-backend/internal/validation"
)

// OrderStore owns the order list and its backing JSON file. The in-memory
// slice is the source of truth for reads; every mutation rewrites the file
// wholesale before it becomes visible in memory, so a failed write leaves
// both sides untouched.
type OrderStore struct {
	mu      sync.RWMutex
	path    string
	orders  []models.Order
	catalog *catalog.Catalog
	log     *logrus.Logger
}

// NewOrderStore opens the store over the orders file at path. A missing or
// unreadable file starts the store empty; the file is (re)created on the
// first mutation.
func NewOrderStore(path string, cat *catalog.Catalog, log *logrus.Logger) *OrderStore {
	s := &OrderStore{
		path:    path,
		orders:  []models.Order{},
		catalog: cat,
		log:     log,
	}
	s.load()
	return s
}

func (s *OrderStore) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.log.WithError(err).WithField("path", s.path).Warn("Orders file unavailable, starting with empty store")
		return
	}

	var doc models.OrdersDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		s.log.WithError(err).WithField("path", s.path).Warn("Orders file malformed, starting with empty store")
		return
	}
	if doc.Orders != nil {
		s.orders = doc.Orders
	}

	s.log.WithFields(logrus.Fields{
		"path":   s.path,
		"orders": len(s.orders),
	}).Info("Order store loaded")
}

// persist writes the candidate order list to the backing file via a temp
// file and rename, so the file never holds a partial document.
func (s *OrderStore) persist(orders []models.Order) error {
	data, err := json.MarshalIndent(models.OrdersDocument{Orders: orders}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal orders: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write orders file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace orders file: %w", err)
	}
	return nil
}

// GetAll returns a snapshot of the current order list. The order values are
// not deep-copied; callers must not mutate them.
func (s *OrderStore) GetAll() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// GetByID finds an order by id. Linear scan; the dataset is dashboard-sized.
func (s *OrderStore) GetByID(id string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

// Create validates the candidate, assigns it a fresh id, persists and
// returns the stored record.
func (s *OrderStore) Create(candidate models.Order) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r := validation.IsValidOrder(s.catalog, &candidate); !r.Valid {
		return models.Order{}, &InvalidOrderError{Reason: r.Message}
	}

	candidate.ID = generateID()

	next := make([]models.Order, len(s.orders), len(s.orders)+1)
	copy(next, s.orders)
	next = append(next, candidate)

	if err := s.persist(next); err != nil {
		s.log.WithError(err).Error("Failed to persist created order")
		return models.Order{}, err
	}
	s.orders = next

	s.log.WithField("order_id", candidate.ID).Info("Order created")
	return candidate, nil
}

// Update replaces the order with the given id wholesale, preserving the id.
// The not-found check runs before validation, matching the original
// behavior.
func (s *OrderStore) Update(id string, candidate models.Order) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.Order{}, ErrOrderNotFound
	}

	if r := validation.IsValidOrder(s.catalog, &candidate); !r.Valid {
		return models.Order{}, &InvalidOrderError{Reason: r.Message}
	}

	candidate.ID = id

	next := make([]models.Order, len(s.orders))
	copy(next, s.orders)
	next[idx] = candidate

	if err := s.persist(next); err != nil {
		s.log.WithError(err).Error("Failed to persist updated order")
		return models.Order{}, err
	}
	s.orders = next

	s.log.WithField("order_id", id).Info("Order updated")
	return candidate, nil
}

// Delete removes the order with the given id and returns the removed record.
func (s *OrderStore) Delete(id string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.Order{}, ErrOrderNotFound
	}
	removed := s.orders[idx]

	next := make([]models.Order, 0, len(s.orders)-1)
	next = append(next, s.orders[:idx]...)
	next = append(next, s.orders[idx+1:]...)

	if err := s.persist(next); err != nil {
		s.log.WithError(err).Error("Failed to persist order deletion")
		return models.Order{}, err
	}
	s.orders = next

	s.log.WithField("order_id", id).Info("Order deleted")
	return removed, nil
}

// WithinDateRange returns the orders whose date falls inside [start, end],
// inclusive on both ends. Orders whose stored date no longer parses are
// skipped. An inverted range matches nothing.
func (s *OrderStore) WithinDateRange(start, end time.Time) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]models.Order, 0)
	for _, o := range s.orders {
		d, ok := validation.ParseDate(o.Date)
		if !ok {
			continue
		}
		if !d.Before(start) && !d.After(end) {
			matched = append(matched, o)
		}
	}
	return matched
}

// ExtractProductCounts tallies the total ordered quantity per product name
// across the given orders.
func (s *OrderStore) ExtractProductCounts(orders []models.Order) map[string]int {
	counts := make(map[string]int)
	for _, o := range orders {
		for _, p := range o.Products {
			counts[p.Name] += p.Quantity
		}
	}
	return counts
}

// indexOf must be called with the lock held.
func (s *OrderStore) indexOf(id string) int {
	for i, o := range s.orders {
		if o.ID == id {
			return i
		}
	}
	return -1
}

// generateID keeps the legacy order_<millis>_<suffix> shape the dashboard
// displays, with a UUID fragment instead of the old random integer so
// collisions are practically impossible.
func generateID() string {
	return fmt.Sprintf("order_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
