package models

// Product is a single catalog item. The catalog is a fixed in-memory
// set; products are never created, updated, or deleted at runtime.
type Product struct {
	// ID is the numeric product identifier.
	ID int `json:"id"`

	// Name is the display name of the product.
	Name string `json:"name"`

	// Price is the unit price in the store currency.
	Price float64 `json:"price"`
}

// ProductList is the response payload of the product listing endpoint.
type ProductList struct {
	// Products holds every catalog item.
	Products []Product `json:"products"`

	// Count is the number of entries in Products. Provided for
	// convenience so clients can validate the response without
	// iterating the slice.
	Count int `json:"count"`
}
