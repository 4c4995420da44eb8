// Package seed provides the starter snapshot used when nothing has been persisted yet.
package seed

import (
	"time"

	"github.com/mmynk/photobill/internal/models"
)

// Products is the fixed starter inventory.
var Products = []models.Product{
	{ID: "1", Name: "Milk", Price: 45, Quantity: 20},
	{ID: "2", Name: "Bread", Price: 30, Quantity: 15},
	{ID: "3", Name: "Eggs", Price: 120, Quantity: 10},
	{ID: "4", Name: "Rice (1kg)", Price: 85, Quantity: 25},
	{ID: "5", Name: "Cooking Oil", Price: 180, Quantity: 12},
	{ID: "6", Name: "Sugar (500g)", Price: 55, Quantity: 18},
	{ID: "7", Name: "Tea", Price: 200, Quantity: 8},
	{ID: "8", Name: "Soap", Price: 40, Quantity: 30},
}

// DefaultProfile is the starter store profile.
var DefaultProfile = models.Profile{
	StoreName:      "My Retail Store",
	OwnerName:      "Store Owner",
	OpeningBalance: 5000,
}

// Snapshot returns the starter snapshot with bill timestamps relative to now.
// The result shares no memory with the package variables.
func Snapshot(now time.Time) models.Snapshot {
	inventory := make([]models.Product, len(Products))
	copy(inventory, Products)

	// Newest first.
	bills := []models.Bill{
		{
			ID: "bill-2",
			Items: []models.BillItem{
				{ProductID: "4", Name: "Rice (1kg)", Price: 85, Quantity: 2},
				{ProductID: "5", Name: "Cooking Oil", Price: 180, Quantity: 1},
			},
			Total:     350,
			CreatedAt: now,
		},
		{
			ID: "bill-1",
			Items: []models.BillItem{
				{ProductID: "1", Name: "Milk", Price: 45, Quantity: 2},
				{ProductID: "2", Name: "Bread", Price: 30, Quantity: 1},
				{ProductID: "3", Name: "Eggs", Price: 120, Quantity: 1},
			},
			Total:     240,
			CreatedAt: now.Add(-24 * time.Hour),
		},
	}

	return models.Snapshot{
		Inventory: inventory,
		Bills:     bills,
		Profile:   DefaultProfile,
	}
}

// Default returns the starter snapshot anchored at the current time.
func Default() models.Snapshot {
	return Snapshot(time.Now().UTC().Round(0))
}
