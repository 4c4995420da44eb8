package detect

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/photobill/internal/models"
)

func inventoryOf(n int) []models.Product {
	out := make([]models.Product, n)
	for i := range out {
		out[i] = models.Product{
			ID:       fmt.Sprintf("%d", i+1),
			Name:     fmt.Sprintf("Product %d", i+1),
			Price:    float64(10 * (i + 1)),
			Quantity: 5,
		}
	}
	return out
}

func TestRandomDetect(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		minWant int
		maxWant int
	}{
		{name: "empty inventory", size: 0, minWant: 0, maxWant: 0},
		{name: "single product", size: 1, minWant: 1, maxWant: 1},
		{name: "two products", size: 2, minWant: 2, maxWant: 2},
		{name: "three products", size: 3, minWant: 2, maxWant: 3},
		{name: "large inventory", size: 8, minWant: 2, maxWant: 4},
	}

	d := NewRandom(1, 2)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := inventoryOf(tt.size)
			for range 50 {
				items := d.Detect(inv)
				require.GreaterOrEqual(t, len(items), tt.minWant)
				require.LessOrEqual(t, len(items), tt.maxWant)

				seen := map[string]bool{}
				for _, it := range items {
					assert.False(t, seen[it.ProductID], "duplicate product %s", it.ProductID)
					seen[it.ProductID] = true
					assert.Equal(t, 1, it.Quantity)

					idx := -1
					for i, p := range inv {
						if p.ID == it.ProductID {
							idx = i
						}
					}
					require.NotEqual(t, -1, idx, "unknown product %s", it.ProductID)
					assert.Equal(t, inv[idx].Name, it.Name)
					assert.Equal(t, inv[idx].Price, it.Price)
				}
			}
		})
	}
}

func TestRandomDoesNotMutateInventory(t *testing.T) {
	inv := inventoryOf(6)
	before := make([]models.Product, len(inv))
	copy(before, inv)

	NewUnseeded().Detect(inv)
	assert.Equal(t, before, inv)
}

func TestSeededIsReproducible(t *testing.T) {
	inv := inventoryOf(8)
	a := NewRandom(42, 7).Detect(inv)
	b := NewRandom(42, 7).Detect(inv)
	assert.Equal(t, a, b)
}

func TestFunc(t *testing.T) {
	var d Detector = Func(func(inv []models.Product) []models.BillItem {
		return []models.BillItem{{ProductID: inv[0].ID, Name: inv[0].Name, Price: inv[0].Price, Quantity: 1}}
	})
	items := d.Detect(inventoryOf(3))
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].ProductID)
}
