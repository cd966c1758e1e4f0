// Package photo implements the durable photo store. Photos are opaque
// binary blobs keyed by generated string ids; each id is referenced by
// exactly one inspection item.
package photo

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/erazemk/ogled/internal/metrics"
)

// Store persists photo blobs in SQLite.
type Store struct {
	DB *sql.DB
}

// NewID generates a collision-resistant photo id from the creation time
// and a random suffix.
func NewID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; fall back to
		// a time-only id rather than panicking mid-upload.
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), hex.EncodeToString(buf))
}

// Save stores a photo blob under the given id. Saving an existing id
// overwrites it.
func (s *Store) Save(ctx context.Context, id string, data []byte, mime string) (err error) {
	defer func() { metrics.ObservePhotoOp("save", err) }()

	_, err = s.DB.ExecContext(ctx,
		`INSERT INTO photos (id, data, mime) VALUES (?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET data = excluded.data, mime = excluded.mime`,
		id, data, mime,
	)
	if err != nil {
		return fmt.Errorf("saving photo %s: %w", id, err)
	}
	return nil
}

// Get returns a photo's data and MIME type. An absent id yields nil data
// and no error.
func (s *Store) Get(ctx context.Context, id string) (data []byte, mime string, err error) {
	defer func() { metrics.ObservePhotoOp("get", err) }()

	err = s.DB.QueryRowContext(ctx,
		`SELECT data, mime FROM photos WHERE id = ?`, id,
	).Scan(&data, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting photo %s: %w", id, err)
	}
	return data, mime, nil
}

// Delete removes a photo blob. Deleting an absent id is not an error.
func (s *Store) Delete(ctx context.Context, id string) (err error) {
	defer func() { metrics.ObservePhotoOp("delete", err) }()

	_, err = s.DB.ExecContext(ctx, `DELETE FROM photos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting photo %s: %w", id, err)
	}
	return nil
}

// ClearAll removes every stored photo.
func (s *Store) ClearAll(ctx context.Context) (err error) {
	defer func() { metrics.ObservePhotoOp("clear_all", err) }()

	_, err = s.DB.ExecContext(ctx, `DELETE FROM photos`)
	if err != nil {
		return fmt.Errorf("clearing photos: %w", err)
	}
	return nil
}
