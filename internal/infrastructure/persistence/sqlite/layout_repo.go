package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/tabdock/internal/domain/entity"
	"github.com/bnema/tabdock/internal/domain/repository"
	"github.com/bnema/tabdock/internal/logging"
)

const (
	upsertLayoutSQL = `INSERT INTO layouts (name, version, tab_count, snapshot, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
    version = excluded.version,
    tab_count = excluded.tab_count,
    snapshot = excluded.snapshot,
    updated_at = excluded.updated_at`
	selectLayoutSQL = `SELECT snapshot FROM layouts WHERE name = ?`
	listLayoutsSQL  = `SELECT name, tab_count, updated_at FROM layouts ORDER BY updated_at DESC, name`
	deleteLayoutSQL = `DELETE FROM layouts WHERE name = ?`
)

// ErrEmptyLayoutName is returned when saving a snapshot without a name.
var ErrEmptyLayoutName = errors.New("layout name cannot be empty")

type layoutRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewLayoutRepository returns a layout repository backed by db.
func NewLayoutRepository(db *sql.DB) repository.LayoutRepository {
	return &layoutRepo{db: db, now: time.Now}
}

func (r *layoutRepo) Save(ctx context.Context, snapshot *entity.LayoutSnapshot) error {
	log := logging.FromContext(ctx)
	if snapshot == nil || snapshot.Name == "" {
		return ErrEmptyLayoutName
	}

	savedAt := snapshot.SavedAt
	if savedAt.IsZero() {
		savedAt = r.now()
	}
	savedAt = savedAt.UTC()

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode layout %q: %w", snapshot.Name, err)
	}

	log.Debug().
		Str("layout", snapshot.Name).
		Int("tabs", snapshot.TabCount()).
		Msg("saving layout")

	_, err = r.db.ExecContext(ctx, upsertLayoutSQL,
		snapshot.Name, snapshot.Version, snapshot.TabCount(), string(data), savedAt, savedAt)
	return err
}

func (r *layoutRepo) FindByName(ctx context.Context, name string) (*entity.LayoutSnapshot, error) {
	var data string
	err := r.db.QueryRowContext(ctx, selectLayoutSQL, name).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	snapshot := &entity.LayoutSnapshot{}
	if err := json.Unmarshal([]byte(data), snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode layout %q: %w", name, err)
	}
	return snapshot, nil
}

func (r *layoutRepo) List(ctx context.Context) ([]repository.LayoutSummary, error) {
	rows, err := r.db.QueryContext(ctx, listLayoutsSQL)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []repository.LayoutSummary
	for rows.Next() {
		var s repository.LayoutSummary
		if err := rows.Scan(&s.Name, &s.TabCount, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *layoutRepo) Delete(ctx context.Context, name string) error {
	logging.FromContext(ctx).Debug().Str("layout", name).Msg("deleting layout")
	_, err := r.db.ExecContext(ctx, deleteLayoutSQL, name)
	return err
}
