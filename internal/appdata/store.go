// Package appdata owns the in-memory application state: inventory, bills,
// profile, and the pending bill being edited.
//
// Every mutation is applied to memory immediately and is visible to the next
// read. Durability is eventual: the resulting snapshot is handed to a
// background writer and the mutation returns without waiting for it. If the
// process dies before the write lands, the persisted copy lags by at most the
// unwritten mutations.
//
// Preconditions: callers pass non-negative prices and quantities. The store
// does not validate numeric input; the service layer clamps it.
package appdata

import (
	"context"
	"errors"

	"github.com/mmynk/photobill/internal/models"
)

var (
	// ErrLoading is returned by mutations issued before Load has completed.
	ErrLoading = errors.New("app data is still loading")

	// ErrClosed is returned by mutations issued after Close.
	ErrClosed = errors.New("app data store is closed")
)

// Persister loads and saves whole snapshots. storage.Gateway implements it.
type Persister interface {
	// Load returns the persisted snapshot or a fallback. It never fails.
	Load(ctx context.Context) models.Snapshot

	// Save writes the snapshot. Errors are for reporting only.
	Save(ctx context.Context, snapshot models.Snapshot) error
}

// State is a consistent read of everything consumers render.
type State struct {
	Snapshot            models.Snapshot
	PendingBillItems    []models.BillItem
	LastGeneratedBillID string
	Loading             bool
}

// Store is the application data API consumed by the service layer.
type Store interface {
	Loading() bool
	State() State
	Snapshot() models.Snapshot
	Inventory() []models.Product
	Bills() []models.Bill
	Bill(id string) (models.Bill, bool)
	Profile() models.Profile
	PendingBillItems() []models.BillItem
	LastGeneratedBillID() (string, bool)

	SetPendingBillItems(items []models.BillItem) error
	ClearPendingBill() error
	AddBill(items []models.BillItem, total float64) (string, error)
	UpdateInventory(productID string, update models.InventoryUpdate) error
	AddProduct(product models.NewProduct) (models.Product, error)
	UpdateProfile(update models.ProfileUpdate) error
}
