package storage

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/umputun/nbspam/app/storage/engine"
)

// Detections is a storage for messages classified as spam
type Detections struct {
	*engine.SQL
	engine.RWLocker
}

// Detection is a single message classified as spam
type Detection struct {
	ID          int64     `db:"id" json:"id"`
	Timestamp   time.Time `db:"ts" json:"ts"`
	Message     string    `db:"message" json:"message"`
	Probability float64   `db:"probability" json:"probability"`
	Details     string    `db:"details" json:"details"`
}

var (
	detectionsCreateTable = engine.Query{
		Sqlite: `CREATE TABLE IF NOT EXISTS detections (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            gid TEXT NOT NULL DEFAULT '',
            ts DATETIME DEFAULT CURRENT_TIMESTAMP,
            message TEXT NOT NULL,
            probability REAL NOT NULL,
            details TEXT NOT NULL DEFAULT ''
        )`,
		Postgres: `CREATE TABLE IF NOT EXISTS detections (
            id SERIAL PRIMARY KEY,
            gid TEXT NOT NULL DEFAULT '',
            ts TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
            message TEXT NOT NULL,
            probability DOUBLE PRECISION NOT NULL,
            details TEXT NOT NULL DEFAULT ''
        )`,
	}
	detectionsCreateIndexes = engine.Query{Sqlite: `CREATE INDEX IF NOT EXISTS idx_detections_gid_ts ON detections(gid, ts DESC)`}
	detectionsInsert        = engine.Query{Sqlite: `INSERT INTO detections (gid, ts, message, probability, details) VALUES (?, ?, ?, ?, ?)`}
)

// NewDetections creates a new Detections storage
func NewDetections(ctx context.Context, db *engine.SQL) (*Detections, error) {
	if db == nil {
		return nil, fmt.Errorf("db connection is nil")
	}
	cfg := engine.TableConfig{Name: "detections", Create: detectionsCreateTable, Indexes: detectionsCreateIndexes}
	if err := engine.InitTable(ctx, db, cfg); err != nil {
		return nil, fmt.Errorf("failed to init detections storage: %w", err)
	}
	return &Detections{SQL: db, RWLocker: db.MakeLock()}, nil
}

// Write adds a detection. Zero timestamp is set to the current time.
func (d *Detections) Write(ctx context.Context, entry Detection) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	query, err := detectionsInsert.For(d.SQL)
	if err != nil {
		return fmt.Errorf("failed to get insert query: %w", err)
	}

	d.Lock()
	defer d.Unlock()
	if _, err := d.ExecContext(ctx, query, d.GID(), entry.Timestamp.UTC(), entry.Message, entry.Probability,
		entry.Details); err != nil {
		return fmt.Errorf("failed to insert detection: %w", err)
	}
	log.Printf("[DEBUG] detection added: %.4f, %q", entry.Probability, shorten(entry.Message, 256))
	return nil
}

// Read returns up to limit most recent detections, newest first. Non-positive limit returns all.
func (d *Detections) Read(ctx context.Context, limit int) ([]Detection, error) {
	d.RLock()
	defer d.RUnlock()

	query := `SELECT id, ts, message, probability, details FROM detections WHERE gid = ? ORDER BY ts DESC, id DESC`
	args := []any{d.GID()}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	var res []Detection
	if err := d.SelectContext(ctx, &res, d.Adopt(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get detections: %w", err)
	}
	for i := range res {
		res[i].Timestamp = res[i].Timestamp.Local()
	}
	return res, nil
}
