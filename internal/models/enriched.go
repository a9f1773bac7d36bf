// internal/models/enriched.go
package models

// ProductDetail is an order line enriched with the constituent items of the
// product, as listed in the catalog. Built for API responses only, never
// persisted.
type ProductDetail struct {
	Name     string   `json:"name"`
	Quantity int      `json:"quantity"`
	Items    []string `json:"items"`
}

// EnrichedOrder is the read view of an order returned by the list and detail
// endpoints: same shape as Order with the products replaced by their
// catalog-enriched form.
type EnrichedOrder struct {
	ID       string          `json:"id"`
	Date     string          `json:"date"`
	Products []ProductDetail `json:"products"`
	Address  *Address        `json:"address"`
	Status   OrderStatus     `json:"status"`
}
