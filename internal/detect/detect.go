// Package detect proposes bill line items for a captured product photo.
//
// Real recognition is not implemented; Random samples the current inventory.
package detect

import (
	"math/rand/v2"
	"sync"

	"github.com/mmynk/photobill/internal/models"
)

const (
	minItems = 2
	maxItems = 4
)

// Detector turns the current inventory into candidate bill items.
// Callers must not rely on any statistical property of the result.
type Detector interface {
	Detect(inventory []models.Product) []models.BillItem
}

// Func adapts a plain function to Detector.
type Func func(inventory []models.Product) []models.BillItem

// Detect calls f.
func (f Func) Detect(inventory []models.Product) []models.BillItem {
	return f(inventory)
}

// Random picks 2 to 4 distinct products (fewer if the inventory is smaller)
// and proposes one unit of each at the current name and price.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var _ Detector = (*Random)(nil)

// NewRandom returns a Random detector seeded with the given values.
func NewRandom(seed1, seed2 uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// NewUnseeded returns a Random detector with a random seed.
func NewUnseeded() *Random {
	return NewRandom(rand.Uint64(), rand.Uint64())
}

// Detect implements Detector.
func (d *Random) Detect(inventory []models.Product) []models.BillItem {
	if len(inventory) == 0 {
		return []models.BillItem{}
	}

	shuffled := make([]models.Product, len(inventory))
	copy(shuffled, inventory)

	d.mu.Lock()
	d.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	count := minItems + d.rng.IntN(maxItems-minItems+1)
	d.mu.Unlock()

	count = min(count, len(shuffled))
	items := make([]models.BillItem, 0, count)
	for _, p := range shuffled[:count] {
		items = append(items, models.BillItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  1,
		})
	}
	return items
}
