/*
Package sqlite provides a SQLite-backed plan catalog.

PURPOSE:
  Persists versioned plan definitions (JSON, see the factory package) so
  parameter changes survive restarts and a new fiscal year's circular is
  a catalog update rather than a deploy. The store holds definitions
  only - evaluations are pure computations and are never persisted.

KEY TABLE:
  plan_definitions:  One row per plan id, config JSON plus version.

SEEDING:
  Seed() inserts the built-in FY 2025-26 presets for any plan id not
  already present, so a fresh database serves the full catalog and an
  edited catalog is left alone.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. The catalog is read once at
  startup and on explicit reloads, so contention is not a concern.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) so reads don't block
  the occasional definition update.

USAGE:
  store, err := sqlite.New("./data/incentive.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()
  store.Seed(ctx)

SEE ALSO:
  - factory: parses the stored JSON into rules
  - plans/presets.go: the seed definitions
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Gujterce/incentive-calculator/incentive"
	"github.com/Gujterce/incentive-calculator/plans"
)

// Store persists plan definitions in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// PlanRecord is one stored plan definition.
type PlanRecord struct {
	ID         incentive.PlanID
	Name       string
	ConfigJSON string
	Version    int
	UpdatedAt  time.Time
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS plan_definitions (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		config_json TEXT NOT NULL,
		version INTEGER NOT NULL DEFAULT 1,
		updated_at TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// PLAN DEFINITIONS
// =============================================================================

// SavePlan inserts or replaces a plan definition, bumping the version on
// replacement.
func (s *Store) SavePlan(ctx context.Context, id incentive.PlanID, name, configJSON string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO plan_definitions (id, name, config_json, version, updated_at)
		VALUES (?, ?, ?, 1, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			config_json = excluded.config_json,
			version = plan_definitions.version + 1,
			updated_at = excluded.updated_at`,
		string(id), name, configJSON, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("%w: save plan %s: %v", incentive.ErrStoreFailed, id, err)
	}
	return nil
}

// GetPlan returns one stored definition.
func (s *Store) GetPlan(ctx context.Context, id incentive.PlanID) (*PlanRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, config_json, version, updated_at
		FROM plan_definitions WHERE id = ?`, string(id))

	rec, err := scanPlan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", incentive.ErrPlanNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get plan %s: %v", incentive.ErrStoreFailed, id, err)
	}
	return rec, nil
}

// ListPlans returns every stored definition ordered by id.
func (s *Store) ListPlans(ctx context.Context) ([]PlanRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, config_json, version, updated_at
		FROM plan_definitions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: list plans: %v", incentive.ErrStoreFailed, err)
	}
	defer rows.Close()

	var records []PlanRecord
	for rows.Next() {
		rec, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: list plans: %v", incentive.ErrStoreFailed, err)
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

// Seed inserts the built-in FY 2025-26 preset for every plan id missing
// from the catalog. Existing rows are never touched.
func (s *Store) Seed(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, id := range plans.AllPlanIDs {
		info, _ := plans.InfoFor(id)
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO plan_definitions (id, name, config_json, version, updated_at)
			VALUES (?, ?, ?, 1, ?)
			ON CONFLICT(id) DO NOTHING`,
			string(id), info.Name, plans.DefaultDefinitionJSON(id), now)
		if err != nil {
			return fmt.Errorf("%w: seed plan %s: %v", incentive.ErrStoreFailed, id, err)
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPlan(row rowScanner) (*PlanRecord, error) {
	var rec PlanRecord
	var id, updatedAt string
	if err := row.Scan(&id, &rec.Name, &rec.ConfigJSON, &rec.Version, &updatedAt); err != nil {
		return nil, err
	}
	rec.ID = incentive.PlanID(id)
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		rec.UpdatedAt = t
	}
	return &rec, nil
}
