package models

// Snapshot is the complete persisted application state.
type Snapshot struct {
	// Inventory holds products, unique by ID, in insertion order.
	Inventory []Product `json:"inventory"`

	// Bills holds committed bills, newest first.
	Bills []Bill `json:"bills"`

	// Profile is the store profile.
	Profile Profile `json:"profile"`
}

// Clone returns a deep copy of the snapshot so callers can read it
// without sharing slices with the owner.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{Profile: s.Profile}
	if s.Inventory != nil {
		out.Inventory = make([]Product, len(s.Inventory))
		copy(out.Inventory, s.Inventory)
	}
	if s.Bills != nil {
		out.Bills = make([]Bill, len(s.Bills))
		for i, b := range s.Bills {
			out.Bills[i] = b.Clone()
		}
	}
	return out
}

// FindProduct returns the index of the product with the given id, or -1.
func (s Snapshot) FindProduct(id string) int {
	for i, p := range s.Inventory {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// FindBill returns the bill with the given id.
func (s Snapshot) FindBill(id string) (Bill, bool) {
	for _, b := range s.Bills {
		if b.ID == id {
			return b, true
		}
	}
	return Bill{}, false
}
