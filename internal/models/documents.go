// internal/models/documents.go
package models

// OrdersDocument is the on-disk shape of the orders file. The whole document
// is rewritten on every mutation.
type OrdersDocument struct {
	Orders []Order `json:"orders"`
}

// CatalogDocument is the on-disk shape of the products file: product name to
// the list of items the product is made of.
type CatalogDocument struct {
	Products map[string][]string `json:"products"`
}
