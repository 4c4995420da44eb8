package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	snap := Snapshot(now)

	require.Len(t, snap.Inventory, 8)
	require.Len(t, snap.Bills, 2)
	assert.Equal(t, DefaultProfile, snap.Profile)

	assert.Equal(t, "bill-2", snap.Bills[0].ID)
	assert.Equal(t, now, snap.Bills[0].CreatedAt)
	assert.Equal(t, now.Add(-24*time.Hour), snap.Bills[1].CreatedAt)
	assert.False(t, snap.Bills[0].CreatedAt.Before(snap.Bills[1].CreatedAt), "bills must be newest first")

	for _, b := range snap.Bills {
		var sum float64
		for _, it := range b.Items {
			sum += it.Price * float64(it.Quantity)
		}
		assert.InDelta(t, b.Total, sum, 0.001, "bill %s total", b.ID)
	}
}

func TestSnapshotIsIndependentCopy(t *testing.T) {
	snap := Snapshot(time.Now())
	snap.Inventory[0].Quantity = 0
	snap.Profile.StoreName = "changed"

	again := Snapshot(time.Now())
	assert.Equal(t, 20, again.Inventory[0].Quantity)
	assert.Equal(t, "My Retail Store", again.Profile.StoreName)
	assert.Equal(t, 20, Products[0].Quantity)
}
