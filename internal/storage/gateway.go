package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mmynk/photobill/internal/models"
)

// DefaultKey is the slot the snapshot is persisted under.
const DefaultKey = "@photo_billing_data"

// Gateway loads and saves the whole application snapshot as a single JSON value.
//
// Load never fails: a missing, unreadable or corrupt value yields the seed
// snapshot. Save is best effort: failures are logged and reported, the
// previous value stays in place, and nothing is retried.
type Gateway struct {
	store  Store
	key    string
	seed   func() models.Snapshot
	logger *slog.Logger
}

// NewGateway creates a Gateway over store. seed provides the fallback snapshot.
// An empty key selects DefaultKey; a nil logger selects slog.Default().
func NewGateway(store Store, key string, seed func() models.Snapshot, logger *slog.Logger) *Gateway {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{store: store, key: key, seed: seed, logger: logger}
}

// Key returns the slot key.
func (g *Gateway) Key() string {
	return g.key
}

// Load reads the persisted snapshot, falling back to the seed snapshot.
func (g *Gateway) Load(ctx context.Context) models.Snapshot {
	raw, err := g.store.Get(ctx, g.key)
	if errors.Is(err, ErrNotFound) {
		g.logger.Info("No saved app data, using seed", "key", g.key)
		return g.seed()
	}
	if err != nil {
		g.logger.Warn("Failed to load app data", "key", g.key, "error", err)
		return g.seed()
	}

	snapshot, err := Decode(raw)
	if err != nil {
		g.logger.Warn("Failed to load app data", "key", g.key, "error", err)
		return g.seed()
	}
	return snapshot
}

// Save writes snapshot under the gateway key.
// The error is returned for reporting only; it has already been logged.
func (g *Gateway) Save(ctx context.Context, snapshot models.Snapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		g.logger.Warn("Failed to save app data", "key", g.key, "error", err)
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := g.store.Set(ctx, g.key, raw); err != nil {
		g.logger.Warn("Failed to save app data", "key", g.key, "error", err)
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Decode parses a persisted snapshot. Empty input is treated as corrupt.
func Decode(raw []byte) (models.Snapshot, error) {
	var snapshot models.Snapshot
	if len(raw) == 0 {
		return snapshot, errors.New("empty snapshot value")
	}
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return snapshot, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return snapshot, nil
}
