// Package engine wraps sqlx.DB with the database type and the corpus group id. Stores keep their
// statements as Query values with sqlite and postgres variants and create tables with InitTable.
package engine

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"  // postgres driver loaded here
	_ "modernc.org/sqlite" // sqlite driver loaded here
)

// Type is a type of database engine
type Type string

// enum of supported database engines
const (
	Unknown  Type = ""
	Sqlite   Type = "sqlite"
	Postgres Type = "postgres"
)

// SQL is a wrapper for sqlx.DB with type.
// Type allows distinguishing between different database engines.
type SQL struct {
	sqlx.DB
	gid    string // group id, to allow per-group corpus in the same database
	dbType Type   // type of the database engine
}

// RWLocker is a read-write locker interface, satisfied by sync.RWMutex
type RWLocker interface {
	sync.Locker
	RLock()
	RUnlock()
}

// NoopLocker is a locker doing nothing, for engines handling concurrent access by themselves
type NoopLocker struct{}

func (NoopLocker) Lock()    {}
func (NoopLocker) Unlock()  {}
func (NoopLocker) RLock()   {}
func (NoopLocker) RUnlock() {}

// TableConfig defines how to create and migrate a table
type TableConfig struct {
	Name        string
	Create      Query // create table statement
	Indexes     Query // create indexes, may contain a few statements separated by ";"
	MigrateFunc func(ctx context.Context, tx *sqlx.Tx, gid string) error
}

// New makes a database engine from the connection url. Supported urls:
// ":memory:", "file:..." , "file://...", "sqlite://...", paths ending with .db or .sqlite, and "postgres://...".
func New(ctx context.Context, connURL, gid string) (*SQL, error) {
	switch {
	case connURL == "":
		return nil, fmt.Errorf("connection URL is empty")
	case strings.HasPrefix(connURL, "postgres://"), strings.HasPrefix(connURL, "postgresql://"):
		return NewPostgres(ctx, connURL, gid)
	case connURL == ":memory:":
		return NewSqlite(connURL, gid)
	case strings.HasPrefix(connURL, "sqlite://"):
		return NewSqlite(strings.TrimPrefix(connURL, "sqlite://"), gid)
	case strings.HasPrefix(connURL, "file://"):
		return NewSqlite(strings.TrimPrefix(connURL, "file://"), gid)
	case strings.HasPrefix(connURL, "file:"):
		return NewSqlite(connURL, gid)
	case strings.HasSuffix(connURL, ".db"), strings.HasSuffix(connURL, ".sqlite"):
		return NewSqlite(connURL, gid)
	}
	return nil, fmt.Errorf("unsupported database type in connection URL %q", connURL)
}

// NewSqlite creates a new sqlite database
func NewSqlite(file, gid string) (*SQL, error) {
	db, err := sqlx.Connect("sqlite", file)
	if err != nil {
		return &SQL{}, err
	}
	if file == ":memory:" {
		// each connection to :memory: is a separate database, keep a single one
		db.SetMaxOpenConns(1)
	}
	return &SQL{DB: *db, gid: gid, dbType: Sqlite}, nil
}

// NewPostgres creates a new postgres database
func NewPostgres(ctx context.Context, connURL, gid string) (*SQL, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", connURL)
	if err != nil {
		return &SQL{}, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return &SQL{DB: *db, gid: gid, dbType: Postgres}, nil
}

// GID returns the group id
func (e *SQL) GID() string {
	return e.gid
}

// Type returns the database engine type
func (e *SQL) Type() Type {
	return e.dbType
}

// MakeLock creates a new lock for the database engine
func (e *SQL) MakeLock() RWLocker {
	if e.dbType == Sqlite {
		return new(sync.RWMutex) // sqlite need locking
	}
	return &NoopLocker{} // other engines don't need locking
}

// Adopt converts "?" placeholders to "$n" for postgres, keeps the query as is for other engines.
// Question marks inside single-quoted literals are not placeholders.
func (e *SQL) Adopt(query string) string {
	if e.dbType != Postgres {
		return query
	}

	var res strings.Builder
	res.Grow(len(query) + 8)
	inLiteral, n := false, 0
	for _, r := range query {
		switch {
		case r == '\'':
			inLiteral = !inLiteral
		case r == '?' && !inLiteral:
			n++
			res.WriteString("$" + strconv.Itoa(n))
			continue
		}
		res.WriteRune(r)
	}
	return res.String()
}

// InitTable creates the table if it doesn't exist, runs the migration and creates indexes.
// MigrateFunc should be idempotent, it is called for new and existing tables. Runs in a transaction.
func InitTable(ctx context.Context, db *SQL, cfg TableConfig) error {
	if db == nil {
		return fmt.Errorf("db connection is nil")
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	existsQuery := "SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?"
	if db.Type() == Postgres {
		existsQuery = "SELECT COUNT(*) FROM information_schema.tables WHERE table_name=$1"
	}
	var exists int
	if err = tx.GetContext(ctx, &exists, existsQuery, cfg.Name); err != nil {
		return fmt.Errorf("failed to check for %s table existence: %w", cfg.Name, err)
	}

	if exists == 0 {
		createQuery, err := cfg.Create.For(db)
		if err != nil {
			return fmt.Errorf("failed to get create table query: %w", err)
		}
		if _, err = tx.ExecContext(ctx, createQuery); err != nil {
			return fmt.Errorf("failed to create %s table: %w", cfg.Name, err)
		}
	}

	if cfg.MigrateFunc != nil {
		if err = cfg.MigrateFunc(ctx, tx, db.GID()); err != nil {
			return fmt.Errorf("failed to migrate %s: %w", cfg.Name, err)
		}
	}

	indexQuery, err := cfg.Indexes.For(db)
	if err != nil {
		return fmt.Errorf("failed to get create indexes query: %w", err)
	}
	if _, err = tx.ExecContext(ctx, indexQuery); err != nil {
		return fmt.Errorf("failed to create indexes for %s: %w", cfg.Name, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
