package appdata

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/photobill/internal/models"
	"github.com/mmynk/photobill/internal/seed"
	"github.com/mmynk/photobill/internal/storage"
	"github.com/mmynk/photobill/internal/storage/memory"
)

var testNow = time.Date(2026, 4, 20, 15, 0, 0, 0, time.UTC)

func sequentialIDs() func(string) string {
	var mu sync.Mutex
	n := 0
	return func(prefix string) string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// newTestStore returns a loaded store over an in-memory slot pre-filled with snap.
func newTestStore(t *testing.T, snap *models.Snapshot) (*AppStore, *storage.Gateway, *memory.Store) {
	t.Helper()
	kv := memory.New()
	gw := storage.NewGateway(kv, "", func() models.Snapshot { return seed.Snapshot(testNow) }, nil)
	if snap != nil {
		require.NoError(t, gw.Save(context.Background(), *snap))
	}

	s := New(gw,
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(sequentialIDs()),
	)
	s.Load(context.Background())
	t.Cleanup(func() { s.Close(context.Background()) })
	return s, gw, kv
}

func milkSnapshot() models.Snapshot {
	return models.Snapshot{
		Inventory: []models.Product{{ID: "1", Name: "Milk", Price: 45, Quantity: 20}},
		Bills:     []models.Bill{},
		Profile:   models.Profile{StoreName: "Shop", OwnerName: "Owner", OpeningBalance: 100},
	}
}

func flushed(t *testing.T, s *AppStore, gw *storage.Gateway) models.Snapshot {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Flush(ctx))
	return gw.Load(context.Background())
}

func TestLoadWithEmptySlotUsesSeed(t *testing.T) {
	s, _, _ := newTestStore(t, nil)

	assert.False(t, s.Loading())
	assert.Equal(t, seed.Snapshot(testNow), s.Snapshot())
}

func TestMutationsRejectedWhileLoading(t *testing.T) {
	gw := storage.NewGateway(memory.New(), "", func() models.Snapshot { return seed.Snapshot(testNow) }, nil)
	s := New(gw)
	defer s.Close(context.Background())

	require.True(t, s.Loading())

	_, err := s.AddBill(nil, 0)
	assert.ErrorIs(t, err, ErrLoading)
	assert.ErrorIs(t, s.SetPendingBillItems(nil), ErrLoading)
	assert.ErrorIs(t, s.ClearPendingBill(), ErrLoading)
	assert.ErrorIs(t, s.UpdateInventory("1", models.InventoryUpdate{}), ErrLoading)
	_, err = s.AddProduct(models.NewProduct{Name: "x"})
	assert.ErrorIs(t, err, ErrLoading)
	assert.ErrorIs(t, s.UpdateProfile(models.ProfileUpdate{}), ErrLoading)

	assert.Empty(t, s.Inventory())
	assert.True(t, s.State().Loading)
}

func TestAddBill(t *testing.T) {
	snap := milkSnapshot()
	s, gw, _ := newTestStore(t, &snap)

	require.NoError(t, s.SetPendingBillItems([]models.BillItem{{ProductID: "1", Name: "Milk", Price: 45, Quantity: 2}}))

	items := []models.BillItem{{ProductID: "1", Name: "Milk", Price: 45, Quantity: 2}}
	id, err := s.AddBill(items, 90)
	require.NoError(t, err)

	assert.Equal(t, 18, s.Inventory()[0].Quantity)

	bills := s.Bills()
	require.Len(t, bills, 1)
	assert.Equal(t, id, bills[0].ID)
	assert.Equal(t, 90.0, bills[0].Total)
	assert.Equal(t, items, bills[0].Items)
	assert.Equal(t, testNow, bills[0].CreatedAt)

	assert.Empty(t, s.PendingBillItems())
	last, ok := s.LastGeneratedBillID()
	assert.True(t, ok)
	assert.Equal(t, id, last)

	persisted := flushed(t, s, gw)
	assert.Equal(t, s.Snapshot(), persisted)
}

func TestAddBillPrependsNewestFirst(t *testing.T) {
	s, _, _ := newTestStore(t, nil)

	first, err := s.AddBill([]models.BillItem{{ProductID: "8", Name: "Soap", Price: 40, Quantity: 1}}, 40)
	require.NoError(t, err)
	second, err := s.AddBill([]models.BillItem{{ProductID: "7", Name: "Tea", Price: 200, Quantity: 1}}, 200)
	require.NoError(t, err)

	bills := s.Bills()
	require.Len(t, bills, 4)
	assert.Equal(t, second, bills[0].ID)
	assert.Equal(t, first, bills[1].ID)
	assert.Equal(t, "bill-2", bills[2].ID)
	assert.Equal(t, "bill-1", bills[3].ID)
	assert.NotEqual(t, first, second)
}

func TestAddBillClampsStockAtZero(t *testing.T) {
	snap := milkSnapshot()
	s, _, _ := newTestStore(t, &snap)

	_, err := s.AddBill([]models.BillItem{{ProductID: "1", Name: "Milk", Price: 45, Quantity: 25}}, 1125)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Inventory()[0].Quantity)
}

func TestAddBillRepeatedProductDecrementsCumulatively(t *testing.T) {
	snap := milkSnapshot()
	s, _, _ := newTestStore(t, &snap)

	_, err := s.AddBill([]models.BillItem{
		{ProductID: "1", Name: "Milk", Price: 45, Quantity: 5},
		{ProductID: "1", Name: "Milk", Price: 40, Quantity: 3},
	}, 345)
	require.NoError(t, err)
	assert.Equal(t, 12, s.Inventory()[0].Quantity)
}

func TestAddBillUnknownProductLeavesInventory(t *testing.T) {
	snap := milkSnapshot()
	s, _, _ := newTestStore(t, &snap)

	_, err := s.AddBill([]models.BillItem{{ProductID: "ghost", Name: "Ghost", Price: 1, Quantity: 1}}, 1)
	require.NoError(t, err)
	assert.Equal(t, snap.Inventory, s.Inventory())
	assert.Len(t, s.Bills(), 1)
}

func TestAddBillKeepsCallerTotal(t *testing.T) {
	snap := milkSnapshot()
	s, _, _ := newTestStore(t, &snap)

	id, err := s.AddBill([]models.BillItem{{ProductID: "1", Name: "Milk", Price: 45, Quantity: 2}}, 1)
	require.NoError(t, err)
	b, ok := s.Bill(id)
	require.True(t, ok)
	assert.Equal(t, 1.0, b.Total)
}

func TestBillItemsAreSnapshots(t *testing.T) {
	snap := milkSnapshot()
	s, _, _ := newTestStore(t, &snap)

	items := []models.BillItem{{ProductID: "1", Name: "Milk", Price: 45, Quantity: 1}}
	id, err := s.AddBill(items, 45)
	require.NoError(t, err)

	price := 99.0
	require.NoError(t, s.UpdateInventory("1", models.InventoryUpdate{Price: &price}))
	items[0].Name = "mutated by caller"

	b, ok := s.Bill(id)
	require.True(t, ok)
	assert.Equal(t, "Milk", b.Items[0].Name)
	assert.Equal(t, 45.0, b.Items[0].Price)
}

func TestUpdateInventory(t *testing.T) {
	snap := milkSnapshot()
	snap.Inventory = append(snap.Inventory, models.Product{ID: "2", Name: "Bread", Price: 30, Quantity: 15})
	s, gw, _ := newTestStore(t, &snap)

	qty := 7
	require.NoError(t, s.UpdateInventory("1", models.InventoryUpdate{Quantity: &qty}))
	inv := s.Inventory()
	assert.Equal(t, models.Product{ID: "1", Name: "Milk", Price: 45, Quantity: 7}, inv[0])
	assert.Equal(t, snap.Inventory[1], inv[1])

	price := 50.5
	require.NoError(t, s.UpdateInventory("1", models.InventoryUpdate{Price: &price}))
	assert.Equal(t, models.Product{ID: "1", Name: "Milk", Price: 50.5, Quantity: 7}, s.Inventory()[0])

	assert.Equal(t, s.Snapshot(), flushed(t, s, gw))
}

func TestUpdateInventoryUnknownIDIsNoOp(t *testing.T) {
	snap := milkSnapshot()
	s, _, kv := newTestStore(t, &snap)
	writesBefore := kv.Writes()

	qty := 5
	require.NoError(t, s.UpdateInventory("nonexistent-id", models.InventoryUpdate{Quantity: &qty}))
	assert.Equal(t, snap.Inventory, s.Inventory())

	require.NoError(t, s.Flush(context.Background()))
	assert.Equal(t, writesBefore, kv.Writes())
}

func TestAddProduct(t *testing.T) {
	s, gw, _ := newTestStore(t, nil)
	before := s.Inventory()

	p, err := s.AddProduct(models.NewProduct{Name: "Milk", Price: 50, Quantity: 3})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)

	after := s.Inventory()
	require.Len(t, after, len(before)+1)
	assert.Equal(t, before, after[:len(before)])
	assert.Equal(t, models.Product{ID: p.ID, Name: "Milk", Price: 50, Quantity: 3}, after[len(after)-1])

	for _, existing := range before {
		assert.NotEqual(t, existing.ID, p.ID)
	}

	// Duplicate names are allowed.
	q, err := s.AddProduct(models.NewProduct{Name: "Milk", Price: 50, Quantity: 3})
	require.NoError(t, err)
	assert.NotEqual(t, p.ID, q.ID)

	assert.Equal(t, s.Snapshot(), flushed(t, s, gw))
}

func TestDefaultIDsAreUnique(t *testing.T) {
	gw := storage.NewGateway(memory.New(), "", func() models.Snapshot { return seed.Snapshot(testNow) }, nil)
	s := New(gw)
	s.Load(context.Background())
	defer s.Close(context.Background())

	seen := map[string]bool{}
	for range 100 {
		p, err := s.AddProduct(models.NewProduct{Name: "x"})
		require.NoError(t, err)
		require.False(t, seen[p.ID])
		seen[p.ID] = true
	}
}

func TestUpdateProfile(t *testing.T) {
	snap := milkSnapshot()
	s, gw, _ := newTestStore(t, &snap)

	name := "Corner Shop"
	require.NoError(t, s.UpdateProfile(models.ProfileUpdate{StoreName: &name}))
	assert.Equal(t, models.Profile{StoreName: "Corner Shop", OwnerName: "Owner", OpeningBalance: 100}, s.Profile())

	balance := 0.0
	require.NoError(t, s.UpdateProfile(models.ProfileUpdate{OpeningBalance: &balance}))
	assert.Equal(t, 0.0, s.Profile().OpeningBalance)

	assert.Equal(t, s.Profile(), flushed(t, s, gw).Profile)
}

func TestPendingBill(t *testing.T) {
	s, _, kv := newTestStore(t, nil)
	writes := kv.Writes()

	items := []models.BillItem{{ProductID: "1", Name: "Milk", Price: 45, Quantity: 1}}
	require.NoError(t, s.SetPendingBillItems(items))
	assert.Equal(t, items, s.PendingBillItems())

	items[0].Quantity = 9
	assert.Equal(t, 1, s.PendingBillItems()[0].Quantity, "store must not alias caller slice")

	id, err := s.AddBill(s.PendingBillItems(), 45)
	require.NoError(t, err)
	assert.Empty(t, s.PendingBillItems())

	state := s.State()
	assert.Equal(t, id, state.LastGeneratedBillID)

	require.NoError(t, s.SetPendingBillItems(items))
	require.NoError(t, s.ClearPendingBill())
	assert.Empty(t, s.PendingBillItems())
	_, ok := s.LastGeneratedBillID()
	assert.False(t, ok)

	require.NoError(t, s.Flush(context.Background()))
	assert.Equal(t, writes+1, kv.Writes(), "only AddBill persists")
}

func TestReadsDoNotAlias(t *testing.T) {
	s, _, _ := newTestStore(t, nil)

	snap := s.Snapshot()
	snap.Inventory[0].Quantity = -1
	snap.Bills[0].Items[0].Name = "changed"

	inv := s.Inventory()
	inv[0].Name = "changed"

	fresh := s.Snapshot()
	assert.Equal(t, seed.Snapshot(testNow), fresh)
}

func TestPersistFailureKeepsMemoryAuthoritative(t *testing.T) {
	snap := milkSnapshot()
	s, gw, kv := newTestStore(t, &snap)
	kv.FailSets(errors.New("storage full"))

	qty := 3
	require.NoError(t, s.UpdateInventory("1", models.InventoryUpdate{Quantity: &qty}))
	require.NoError(t, s.Flush(context.Background()))

	assert.Equal(t, 3, s.Inventory()[0].Quantity)

	kv.FailSets(nil)
	assert.Equal(t, 20, gw.Load(context.Background()).Inventory[0].Quantity)
}

func TestCloseRejectsMutations(t *testing.T) {
	s, gw, _ := newTestStore(t, nil)

	_, err := s.AddProduct(models.NewProduct{Name: "Salt", Price: 20, Quantity: 1})
	require.NoError(t, err)
	require.NoError(t, s.Close(context.Background()))
	require.NoError(t, s.Close(context.Background()))

	persisted := gw.Load(context.Background())
	assert.Equal(t, "Salt", persisted.Inventory[len(persisted.Inventory)-1].Name)

	_, err = s.AddProduct(models.NewProduct{Name: "Pepper"})
	assert.ErrorIs(t, err, ErrClosed)
}
