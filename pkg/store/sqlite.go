/*
Copyright © 2025 RecurLib Authors
SPDX-License-Identifier: Apache-2.0
*/
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/recurlib/recurlib/pkg/dataset"
	"github.com/recurlib/recurlib/pkg/errors"
	"github.com/recurlib/recurlib/pkg/nuclide"
)

const schema = `
CREATE TABLE IF NOT EXISTS datasets (
	nuclide    TEXT PRIMARY KEY,
	found      INTEGER NOT NULL,
	payload    BLOB,
	fetched_at INTEGER NOT NULL
);`

// Cache is the persisted dataset cache. One row per nuclide; a row with
// found = 0 is the not-found sentinel, persisted so a nuclide known to have
// no dataset is never re-fetched across runs.
type Cache struct {
	db *sql.DB
}

// OpenCache opens (and initializes) the cache database at path.
func OpenCache(path string) (*Cache, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "cache path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnavailable, "opening cache db", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(errors.ErrCodeUnavailable, "pinging cache db", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(errors.ErrCodeUnavailable, "initializing cache schema", err)
	}
	return &Cache{db: db}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Get looks up the cached outcome for a nuclide. hit reports whether a row
// exists; a hit with a nil dataset is the persisted not-found answer.
func (c *Cache) Get(ctx context.Context, id nuclide.ID) (ds *dataset.RawDataset, hit bool, err error) {
	var (
		found   int
		payload []byte
	)
	row := c.db.QueryRowContext(ctx,
		`SELECT found, payload FROM datasets WHERE nuclide = ?`, id.Code())
	switch err := row.Scan(&found, &payload); {
	case err == sql.ErrNoRows:
		return nil, false, nil
	case err != nil:
		return nil, false, errors.Wrap(errors.ErrCodeUnavailable, "reading cache row", err)
	}

	if found == 0 {
		return nil, true, nil
	}
	var out dataset.RawDataset
	if err := json.Unmarshal(payload, &out); err != nil {
		// A corrupt row is treated as a miss so it gets overwritten.
		slog.Warn("dropping corrupt cache row", "nuclide", id.String(), "error", err)
		return nil, false, nil
	}
	return &out, true, nil
}

// Put persists a fetch outcome. A nil dataset writes the not-found
// sentinel. Idempotent per nuclide.
func (c *Cache) Put(ctx context.Context, id nuclide.ID, ds *dataset.RawDataset) error {
	var (
		found   int
		payload []byte
	)
	if ds != nil {
		b, err := json.Marshal(ds)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, "encoding dataset", err)
		}
		found, payload = 1, b
	}

	_, err := c.db.ExecContext(ctx,
		`INSERT INTO datasets (nuclide, found, payload, fetched_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(nuclide) DO UPDATE SET
			found = excluded.found,
			payload = excluded.payload,
			fetched_at = excluded.fetched_at`,
		id.Code(), found, payload, time.Now().Unix())
	if err != nil {
		return errors.Wrap(errors.ErrCodeUnavailable, "writing cache row", err)
	}
	return nil
}

func logPutFailure(id nuclide.ID, err error) {
	slog.Warn("failed to persist dataset to cache", "nuclide", id.String(), "error", err)
}
