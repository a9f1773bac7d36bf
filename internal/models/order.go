// internal/models/order.go
package models

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCanceled  OrderStatus = "canceled"
)

// OrderStatuses lists every accepted status, in the order they are
// reported in validation messages.
var OrderStatuses = []OrderStatus{
	StatusPending,
	StatusShipped,
	StatusDelivered,
	StatusCanceled,
}

// StatusNames returns the status vocabulary as plain strings.
func StatusNames() []string {
	names := make([]string, 0, len(OrderStatuses))
	for _, s := range OrderStatuses {
		names = append(names, string(s))
	}
	return names
}

// OrderProduct is a single order line: a catalog product and how many of it
// were ordered.
type OrderProduct struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Address is the delivery address of an order. All four fields are required.
type Address struct {
	Street  string `json:"street" validate:"required"`
	Country string `json:"country" validate:"required"`
	City    string `json:"city" validate:"required"`
	ZipCode string `json:"zipCode" validate:"required"`
}

// Order is a customer purchase record. The ID is assigned by the store on
// creation and preserved across updates; updates replace the whole record.
type Order struct {
	ID       string         `json:"id"`
	Date     string         `json:"date"`
	Products []OrderProduct `json:"products"`
	Address  *Address       `json:"address"`
	Status   OrderStatus    `json:"status"`
}
