package models

// Product is an inventory entry. ID is unique within the inventory.
type Product struct {
	// ID is the unique identifier of the product.
	// Seed products use short numeric ids ("1".."8"), new products "p-<uuid>".
	ID string `json:"id"`

	// Name is the display name. Names are not unique.
	Name string `json:"name"`

	// Price is the unit selling price. Never negative.
	Price float64 `json:"price"`

	// Quantity is the on-hand stock. Never negative.
	Quantity int `json:"quantity"`
}

// NewProduct is the input for adding a product; the store assigns the ID.
type NewProduct struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// InventoryUpdate is a partial update of a product's stock and price.
// Nil fields are left unchanged.
type InventoryUpdate struct {
	Quantity *int     `json:"quantity,omitempty"`
	Price    *float64 `json:"price,omitempty"`
}

// Apply returns p with the non-nil fields of u applied.
func (u InventoryUpdate) Apply(p Product) Product {
	if u.Quantity != nil {
		p.Quantity = *u.Quantity
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	return p
}
