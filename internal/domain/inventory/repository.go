package inventory

import "context"

// Store loads and overwrites the persisted inventory document. Every read
// returns a fresh snapshot; there is no caching layer in between.
type Store interface {
	Load(ctx context.Context) (*Inventory, error)
	Save(ctx context.Context, inv *Inventory) error
}
