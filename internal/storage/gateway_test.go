package storage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/photobill/internal/models"
	"github.com/mmynk/photobill/internal/seed"
	"github.com/mmynk/photobill/internal/storage"
	"github.com/mmynk/photobill/internal/storage/memory"
)

var fixedNow = time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)

func seedFn() models.Snapshot { return seed.Snapshot(fixedNow) }

func TestGatewayLoadEmptyReturnsSeed(t *testing.T) {
	gw := storage.NewGateway(memory.New(), "", seedFn, nil)

	got := gw.Load(context.Background())
	assert.Equal(t, seedFn(), got)
	assert.Equal(t, storage.DefaultKey, gw.Key())
}

func TestGatewayRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	gw := storage.NewGateway(kv, "test-key", seedFn, nil)

	snap := models.Snapshot{
		Inventory: []models.Product{{ID: "p-1", Name: "Milk", Price: 45.5, Quantity: 3}},
		Bills: []models.Bill{{
			ID:        "bill-x",
			Items:     []models.BillItem{{ProductID: "p-1", Name: "Milk", Price: 45.5, Quantity: 2}},
			Total:     91,
			CreatedAt: fixedNow,
		}},
		Profile: models.Profile{StoreName: "Corner", OwnerName: "Sam", OpeningBalance: 10},
	}

	require.NoError(t, gw.Save(ctx, snap))
	got := gw.Load(ctx)
	assert.Equal(t, snap, got)
}

func TestGatewayCorruptValueReturnsSeed(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	require.NoError(t, kv.Set(ctx, storage.DefaultKey, []byte("{not json")))

	gw := storage.NewGateway(kv, "", seedFn, nil)
	assert.Equal(t, seedFn(), gw.Load(ctx))
}

func TestGatewayReadErrorReturnsSeed(t *testing.T) {
	kv := memory.New()
	kv.FailGets(errors.New("disk on fire"))

	gw := storage.NewGateway(kv, "", seedFn, nil)
	assert.Equal(t, seedFn(), gw.Load(context.Background()))
}

func TestGatewaySaveFailureKeepsPreviousValue(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	gw := storage.NewGateway(kv, "", seedFn, nil)

	first := seedFn()
	require.NoError(t, gw.Save(ctx, first))

	kv.FailSets(errors.New("read-only"))
	second := first.Clone()
	second.Profile.StoreName = "Other"
	assert.Error(t, gw.Save(ctx, second))

	kv.FailSets(nil)
	assert.Equal(t, first, gw.Load(ctx))
}

func TestDecodeEmpty(t *testing.T) {
	_, err := storage.Decode(nil)
	assert.Error(t, err)
}
