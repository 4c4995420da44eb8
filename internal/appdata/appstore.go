package appdata

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/photobill/internal/metrics"
	"github.com/mmynk/photobill/internal/models"
)

// Ensure AppStore implements Store
var _ Store = (*AppStore)(nil)

// Option configures an AppStore.
type Option func(*AppStore)

// WithClock sets the time source used for bill timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *AppStore) { s.now = now }
}

// WithIDGenerator sets the id source. prefix is "bill" or "p".
func WithIDGenerator(newID func(prefix string) string) Option {
	return func(s *AppStore) { s.newID = newID }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *AppStore) { s.logger = logger }
}

// AppStore is the in-memory application store.
// Operations are serialized by a mutex; none of them waits on storage I/O.
type AppStore struct {
	persister Persister
	writer    *writer
	logger    *slog.Logger
	now       func() time.Time
	newID     func(prefix string) string
	loadOnce  sync.Once

	mu         sync.RWMutex
	loading    bool
	closed     bool
	data       models.Snapshot
	pending    []models.BillItem
	lastBillID string
}

// New creates a store in the loading state. Call Load before mutating.
func New(persister Persister, opts ...Option) *AppStore {
	s := &AppStore{
		persister: persister,
		logger:    slog.Default(),
		now:       func() time.Time { return time.Now().UTC().Round(0) },
		newID:     func(prefix string) string { return prefix + "-" + uuid.NewString() },
		loading:   true,
		data: models.Snapshot{
			Inventory: []models.Product{},
			Bills:     []models.Bill{},
		},
		pending: []models.BillItem{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.writer = newWriter(persister, s.logger)
	return s
}

// Load reads the persisted snapshot (or the seed) and makes the store ready.
// Only the first call does any work.
func (s *AppStore) Load(ctx context.Context) {
	s.loadOnce.Do(func() {
		snapshot := s.persister.Load(ctx)
		if snapshot.Inventory == nil {
			snapshot.Inventory = []models.Product{}
		}
		if snapshot.Bills == nil {
			snapshot.Bills = []models.Bill{}
		}

		s.mu.Lock()
		s.data = snapshot
		s.loading = false
		s.mu.Unlock()

		s.logger.Info("App data loaded",
			"products", len(snapshot.Inventory),
			"bills", len(snapshot.Bills),
		)
	})
}

// Flush waits for the most recent mutation to reach storage.
func (s *AppStore) Flush(ctx context.Context) error {
	return s.writer.flush(ctx)
}

// Close flushes pending writes and rejects further mutations.
func (s *AppStore) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	if err := s.writer.flush(ctx); err != nil {
		return err
	}
	return s.writer.stop(ctx)
}

// Loading reports whether Load has not completed yet.
func (s *AppStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// State returns a consistent copy of the snapshot and the staging fields.
func (s *AppStore) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{
		Snapshot:            s.data.Clone(),
		PendingBillItems:    models.CloneItems(s.pending),
		LastGeneratedBillID: s.lastBillID,
		Loading:             s.loading,
	}
}

// Snapshot returns a copy of the current snapshot.
func (s *AppStore) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// Inventory returns a copy of the products.
func (s *AppStore) Inventory() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.data.Inventory))
	copy(out, s.data.Inventory)
	return out
}

// Bills returns a copy of the bills, newest first.
func (s *AppStore) Bills() []models.Bill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Bill, len(s.data.Bills))
	for i, b := range s.data.Bills {
		out[i] = b.Clone()
	}
	return out
}

// Bill looks up a bill by id.
func (s *AppStore) Bill(id string) (models.Bill, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.data.FindBill(id)
	if !ok {
		return models.Bill{}, false
	}
	return b.Clone(), true
}

// Profile returns the store profile.
func (s *AppStore) Profile() models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Profile
}

// PendingBillItems returns a copy of the staged, uncommitted bill items.
func (s *AppStore) PendingBillItems() []models.BillItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneItems(s.pending)
}

// LastGeneratedBillID returns the id of the last bill generated since the
// pending bill was last cleared.
func (s *AppStore) LastGeneratedBillID() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastBillID, s.lastBillID != ""
}

// SetPendingBillItems replaces the staged items wholesale. Nothing is persisted.
func (s *AppStore) SetPendingBillItems(items []models.BillItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writableLocked(); err != nil {
		return err
	}
	s.pending = models.CloneItems(items)
	if s.pending == nil {
		s.pending = []models.BillItem{}
	}
	return nil
}

// ClearPendingBill empties the staged items and forgets the last bill id.
func (s *AppStore) ClearPendingBill() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writableLocked(); err != nil {
		return err
	}
	s.pending = []models.BillItem{}
	s.lastBillID = ""
	return nil
}

// AddBill commits a bill with the given items and total and returns its id.
//
// total is stored as given; it is not recomputed from items. Each item
// decrements the stock of its product, floored at zero. Items referencing
// unknown products are billed without touching inventory. The new bill is
// prepended, the pending items are cleared, and the bill becomes the last
// generated bill.
func (s *AppStore) AddBill(items []models.BillItem, total float64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writableLocked(); err != nil {
		return "", err
	}

	bill := models.Bill{
		ID:        s.newID("bill"),
		Items:     models.CloneItems(items),
		Total:     total,
		CreatedAt: s.now(),
	}
	if bill.Items == nil {
		bill.Items = []models.BillItem{}
	}

	for _, item := range bill.Items {
		idx := s.data.FindProduct(item.ProductID)
		if idx < 0 {
			continue
		}
		s.data.Inventory[idx].Quantity = max(0, s.data.Inventory[idx].Quantity-item.Quantity)
	}
	s.data.Bills = append([]models.Bill{bill}, s.data.Bills...)

	s.commitLocked("add_bill")

	s.pending = []models.BillItem{}
	s.lastBillID = bill.ID

	s.logger.Info("Bill generated", "bill_id", bill.ID, "items", len(bill.Items), "total", bill.Total)
	return bill.ID, nil
}

// UpdateInventory applies a partial update to the product with productID.
// An unknown productID is a silent no-op.
func (s *AppStore) UpdateInventory(productID string, update models.InventoryUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writableLocked(); err != nil {
		return err
	}

	idx := s.data.FindProduct(productID)
	if idx < 0 {
		s.logger.Debug("UpdateInventory: no such product", "product_id", productID)
		return nil
	}
	s.data.Inventory[idx] = update.Apply(s.data.Inventory[idx])

	s.commitLocked("update_inventory")
	return nil
}

// AddProduct appends a product with a fresh id and returns it.
// Names need not be unique.
func (s *AppStore) AddProduct(product models.NewProduct) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writableLocked(); err != nil {
		return models.Product{}, err
	}

	p := models.Product{
		ID:       s.newID("p"),
		Name:     product.Name,
		Price:    product.Price,
		Quantity: product.Quantity,
	}
	s.data.Inventory = append(s.data.Inventory, p)

	s.commitLocked("add_product")
	return p, nil
}

// UpdateProfile merges the non-nil fields of update into the profile.
func (s *AppStore) UpdateProfile(update models.ProfileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writableLocked(); err != nil {
		return err
	}

	s.data.Profile = update.Apply(s.data.Profile)

	s.commitLocked("update_profile")
	return nil
}

func (s *AppStore) writableLocked() error {
	if s.closed {
		return ErrClosed
	}
	if s.loading {
		return ErrLoading
	}
	return nil
}

// commitLocked hands a copy of the current snapshot to the writer.
func (s *AppStore) commitLocked(operation string) {
	metrics.StoreMutations.WithLabelValues(operation).Inc()
	s.writer.submit(s.data.Clone())
}
