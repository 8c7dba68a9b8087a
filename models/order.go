package models

// OrderRequest is the client payload for order creation. All three
// fields are required; the first absent one fails the request.
type OrderRequest struct {
	// ProductID references a catalog product.
	ProductID *int `json:"product_id"`

	// Quantity is the number of units ordered.
	Quantity *int `json:"quantity"`

	// CustomerEmail is the address the (simulated) confirmation email
	// is sent to.
	CustomerEmail *string `json:"customer_email"`
}

// Order is the synthetic order record returned on successful creation.
// Nothing is persisted: every call produces a fresh identifier with no
// uniqueness or idempotency guarantee across calls.
type Order struct {
	// OrderID is the generated order identifier.
	OrderID string `json:"order_id"`

	// Status is always "pending"; no downstream processing exists to
	// move an order out of this state.
	Status string `json:"status"`

	// CreatedAt is the UTC creation timestamp in RFC 3339 format.
	CreatedAt string `json:"created_at"`
}
