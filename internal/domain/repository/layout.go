package repository

import (
	"context"
	"time"

	"github.com/bnema/tabdock/internal/domain/entity"
)

// LayoutSummary is a lightweight listing entry for a stored layout.
type LayoutSummary struct {
	Name      string
	TabCount  int
	UpdatedAt time.Time
}

// LayoutRepository persists named docking layout snapshots.
type LayoutRepository interface {
	// Save inserts or replaces the snapshot stored under snapshot.Name.
	Save(ctx context.Context, snapshot *entity.LayoutSnapshot) error

	// FindByName returns the snapshot, or nil if none is stored under name.
	FindByName(ctx context.Context, name string) (*entity.LayoutSnapshot, error)

	// List returns every stored layout, most recently updated first.
	List(ctx context.Context) ([]LayoutSummary, error)

	// Delete removes a layout. Deleting a missing layout is not an error.
	Delete(ctx context.Context, name string) error
}
