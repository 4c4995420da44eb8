package models

import "time"

// Bill represents a committed sale. Bills are never edited or deleted.
type Bill struct {
	// ID is the unique identifier for the bill ("bill-<uuid>").
	ID string `json:"id"`

	// Items are the line items in the order they were billed.
	Items []BillItem `json:"items"`

	// Total is the amount supplied when the bill was generated.
	// It is expected to equal the sum of price × quantity over Items,
	// but it is stored as given and never recomputed.
	Total float64 `json:"total"`

	// CreatedAt is when the bill was generated.
	CreatedAt time.Time `json:"createdAt"`
}

// BillItem is a snapshot of a product at billing time.
// Name and Price are copied, not referenced.
type BillItem struct {
	// ProductID references the inventory product this item was sold from.
	ProductID string `json:"productId"`

	// Name is the product name at billing time.
	Name string `json:"name"`

	// Price is the unit price at billing time.
	Price float64 `json:"price"`

	// Quantity is the number of units sold.
	Quantity int `json:"quantity"`
}

// Clone returns a deep copy of the bill.
func (b Bill) Clone() Bill {
	b.Items = CloneItems(b.Items)
	return b
}

// CloneItems returns a copy of items. A nil slice stays nil.
func CloneItems(items []BillItem) []BillItem {
	if items == nil {
		return nil
	}
	out := make([]BillItem, len(items))
	copy(out, items)
	return out
}
