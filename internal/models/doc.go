// Package models defines the core domain models for photobill.
//
// # Models
//
//   - Product: an inventory entry owned by the store
//   - BillItem: a line item copied from a Product at billing time
//   - Bill: an immutable, committed sale
//   - Profile: the single store/owner profile
//   - Snapshot: inventory, bills and profile persisted together as one value
//
// # Design Principles
//
// 1. **Snapshot is the unit of persistence**: it is always read and written whole
// 2. **Bill items are denormalized**: name and price are copied from the product,
//    so later product edits never rewrite history
// 3. **Bills are newest-first**: index 0 is the most recent bill
// 4. **Partial updates use pointers**: a nil field means "leave unchanged"
//
// # Schema
//
// The JSON tags match the persisted layout exactly. There is no version field;
// adding or renaming fields has no migration path.
package models
