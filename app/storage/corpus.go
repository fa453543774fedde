package storage

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/forPelevin/gomoji"

	"github.com/umputun/nbspam/app/storage/engine"
	"github.com/umputun/nbspam/lib/nbayes"
)

// Corpus is a storage for labeled training messages. It keeps both spam and ham,
// loaded from preset files or added by users.
type Corpus struct {
	*engine.SQL
	engine.RWLocker
}

// Label is a class of the training message
type Label string

// enum for labels
const (
	LabelHam  Label = "ham"
	LabelSpam Label = "spam"
)

// Source is where the training message came from
type Source string

// enum for sources, SourceAny can be used for reads only
const (
	SourcePreset Source = "preset"
	SourceUser   Source = "user"
	SourceAny    Source = "any"
)

var (
	corpusCreateTable = engine.Query{
		Sqlite: `CREATE TABLE IF NOT EXISTS corpus (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            gid TEXT NOT NULL DEFAULT '',
            ts DATETIME DEFAULT CURRENT_TIMESTAMP,
            label TEXT CHECK (label IN ('ham', 'spam')),
            source TEXT CHECK (source IN ('preset', 'user')),
            message TEXT NOT NULL,
            UNIQUE(gid, message)
        )`,
		Postgres: `CREATE TABLE IF NOT EXISTS corpus (
            id SERIAL PRIMARY KEY,
            gid TEXT NOT NULL DEFAULT '',
            ts TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
            label TEXT CHECK (label IN ('ham', 'spam')),
            source TEXT CHECK (source IN ('preset', 'user')),
            message TEXT NOT NULL,
            message_hash TEXT GENERATED ALWAYS AS (encode(sha256(message::bytea), 'hex')) STORED,
            UNIQUE(gid, message_hash)
        )`,
	}

	corpusCreateIndexes = engine.Query{
		Sqlite: `
			CREATE INDEX IF NOT EXISTS idx_corpus_gid ON corpus(gid);
			CREATE INDEX IF NOT EXISTS idx_corpus_lookup ON corpus(gid, label, source);
			CREATE INDEX IF NOT EXISTS idx_corpus_message ON corpus(message)`,
		Postgres: `
			CREATE INDEX IF NOT EXISTS idx_corpus_gid ON corpus(gid);
			CREATE INDEX IF NOT EXISTS idx_corpus_lookup ON corpus(gid, label, source);
			CREATE INDEX IF NOT EXISTS idx_corpus_message_hash ON corpus(message_hash)`,
	}

	// upsert, the same message added again takes the new label and source
	corpusAdd = engine.Query{
		Sqlite: `INSERT OR REPLACE INTO corpus (gid, label, source, message) VALUES (?, ?, ?, ?)`,
		Postgres: `INSERT INTO corpus (gid, label, source, message) VALUES ($1, $2, $3, $4)
                  ON CONFLICT (gid, message_hash) DO UPDATE SET label = EXCLUDED.label, source = EXCLUDED.source`,
	}

	corpusLabel = engine.Query{Sqlite: `SELECT label FROM corpus WHERE gid = ? AND message = ?`}
)

// NewCorpus creates a new Corpus storage
func NewCorpus(ctx context.Context, db *engine.SQL) (*Corpus, error) {
	if db == nil {
		return nil, fmt.Errorf("db connection is nil")
	}
	res := &Corpus{SQL: db, RWLocker: db.MakeLock()}
	cfg := engine.TableConfig{Name: "corpus", Create: corpusCreateTable, Indexes: corpusCreateIndexes}
	if err := engine.InitTable(ctx, db, cfg); err != nil {
		return nil, fmt.Errorf("failed to init corpus storage: %w", err)
	}
	return res, nil
}

// CleanSample replaces emojis with spaces and collapses all whitespace, including new lines, to a single space.
// Stored messages are one-liners, as preset files keep a message per line.
func CleanSample(msg string) string {
	return strings.Join(strings.Fields(gomoji.ReplaceEmojisWith(msg, ' ')), " ")
}

// Add adds a message to the corpus. The same message added again replaces label and source.
// Returns the label the message had before, empty for a new message.
func (c *Corpus) Add(ctx context.Context, l Label, s Source, msg string) (prev Label, err error) {
	if err = l.Validate(); err != nil {
		return "", err
	}
	if err = s.Validate(); err != nil {
		return "", err
	}
	if s == SourceAny {
		return "", fmt.Errorf("can't add message with source %q", s)
	}
	msg = CleanSample(msg)
	if msg == "" {
		return "", fmt.Errorf("message can't be empty")
	}
	log.Printf("[DEBUG] adding to corpus: %s, %s, %q", l, s, shorten(msg, 1024))

	lookupQuery, err := corpusLabel.For(c.SQL)
	if err != nil {
		return "", fmt.Errorf("failed to get lookup query: %w", err)
	}
	addQuery, err := corpusAdd.For(c.SQL)
	if err != nil {
		return "", fmt.Errorf("failed to get add query: %w", err)
	}

	c.Lock()
	defer c.Unlock()

	tx, err := c.BeginTxx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err = tx.GetContext(ctx, &prev, lookupQuery, c.GID(), msg); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("failed to look up message: %w", err)
	}
	if _, err = tx.ExecContext(ctx, addQuery, c.GID(), l, s, msg); err != nil {
		return "", fmt.Errorf("failed to add message: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}
	return prev, nil
}

// Delete removes the message from the corpus, regardless of label and source
func (c *Corpus) Delete(ctx context.Context, msg string) error {
	msg = CleanSample(msg)
	log.Printf("[DEBUG] deleting from corpus: %q", shorten(msg, 1024))

	c.Lock()
	defer c.Unlock()

	gid := c.GID()
	result, err := c.ExecContext(ctx, c.Adopt(`DELETE FROM corpus WHERE gid = ? AND message = ?`), gid, msg)
	if err != nil {
		return fmt.Errorf("failed to remove message: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("message not found: gid=%s, message=%q", gid, msg)
	}
	return nil
}

// Read returns messages by label and source, from the oldest to the newest
func (c *Corpus) Read(ctx context.Context, l Label, s Source) ([]string, error) {
	query, args, err := c.selectQuery(l, s)
	if err != nil {
		return nil, err
	}

	c.RLock()
	defer c.RUnlock()
	var res []string
	if err := c.SelectContext(ctx, &res, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get corpus messages: %w", err)
	}
	log.Printf("[DEBUG] read %d corpus messages: gid=%s, label=%s, source=%s", len(res), c.GID(), l, s)
	return res, nil
}

// Training returns all messages of the corpus as labeled training messages, in insertion order
func (c *Corpus) Training(ctx context.Context) ([]nbayes.Message, error) {
	c.RLock()
	defer c.RUnlock()

	var rows []struct {
		Label   Label  `db:"label"`
		Message string `db:"message"`
	}
	query := c.Adopt(`SELECT label, message FROM corpus WHERE gid = ? ORDER BY id`)
	if err := c.SelectContext(ctx, &rows, query, c.GID()); err != nil {
		return nil, fmt.Errorf("failed to get training messages: %w", err)
	}

	res := make([]nbayes.Message, 0, len(rows))
	for _, r := range rows {
		res = append(res, nbayes.Message{Text: r.Message, Spam: r.Label == LabelSpam})
	}
	return res, nil
}

// Import reads messages from the reader, one per line, and adds them to the corpus in a transaction.
// If withCleanup is true removes all messages with the same label and source before import.
// Returns corpus statistics after the import.
func (c *Corpus) Import(ctx context.Context, l Label, s Source, r io.Reader, withCleanup bool) (*CorpusStats, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s == SourceAny {
		return nil, fmt.Errorf("can't import messages with source %q", s)
	}
	if r == nil {
		return nil, fmt.Errorf("reader cannot be nil")
	}
	gid := c.GID()

	c.Lock()
	defer c.Unlock()

	tx, err := c.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if withCleanup {
		query := c.Adopt(`DELETE FROM corpus WHERE gid = ? AND label = ? AND source = ?`)
		result, errDel := tx.ExecContext(ctx, query, gid, l, s)
		if errDel != nil {
			return nil, fmt.Errorf("failed to remove old messages: %w", errDel)
		}
		affected, errCount := result.RowsAffected()
		if errCount != nil {
			return nil, fmt.Errorf("failed to get affected rows: %w", errCount)
		}
		log.Printf("[DEBUG] removed %d old corpus messages: gid=%s, label=%s, source=%s", affected, gid, l, s)
	}

	query, err := corpusAdd.For(c.SQL)
	if err != nil {
		return nil, fmt.Errorf("failed to get import query: %w", err)
	}

	const maxLineSize = 64 * 1024
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, maxLineSize), maxLineSize)
	added := 0
	for scanner.Scan() {
		msg := CleanSample(scanner.Text())
		if msg == "" {
			continue
		}
		if _, err = tx.ExecContext(ctx, query, gid, l, s, msg); err != nil {
			return nil, fmt.Errorf("failed to add message: %w", err)
		}
		added++
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	log.Printf("[DEBUG] imported %d corpus messages: gid=%s, label=%s, source=%s", added, gid, l, s)
	return c.stats(ctx)
}

// CorpusStats is a number of stored messages per label and source
type CorpusStats struct {
	TotalSpam  int `db:"spam_count" json:"total_spam"`
	TotalHam   int `db:"ham_count" json:"total_ham"`
	PresetSpam int `db:"preset_spam_count" json:"preset_spam"`
	PresetHam  int `db:"preset_ham_count" json:"preset_ham"`
	UserSpam   int `db:"user_spam_count" json:"user_spam"`
	UserHam    int `db:"user_ham_count" json:"user_ham"`
}

func (st *CorpusStats) String() string {
	return fmt.Sprintf("spam: %d, ham: %d, preset spam: %d, preset ham: %d, user spam: %d, user ham: %d",
		st.TotalSpam, st.TotalHam, st.PresetSpam, st.PresetHam, st.UserSpam, st.UserHam)
}

// Stats returns corpus statistics
func (c *Corpus) Stats(ctx context.Context) (*CorpusStats, error) {
	c.RLock()
	defer c.RUnlock()
	return c.stats(ctx)
}

func (c *Corpus) stats(ctx context.Context) (*CorpusStats, error) {
	query := c.Adopt(`
        SELECT
            COUNT(CASE WHEN label = 'spam' THEN 1 END) as spam_count,
            COUNT(CASE WHEN label = 'ham' THEN 1 END) as ham_count,
            COUNT(CASE WHEN label = 'spam' AND source = 'preset' THEN 1 END) as preset_spam_count,
            COUNT(CASE WHEN label = 'ham' AND source = 'preset' THEN 1 END) as preset_ham_count,
            COUNT(CASE WHEN label = 'spam' AND source = 'user' THEN 1 END) as user_spam_count,
            COUNT(CASE WHEN label = 'ham' AND source = 'user' THEN 1 END) as user_ham_count
        FROM corpus
        WHERE gid = ?`)

	var res CorpusStats
	if err := c.GetContext(ctx, &res, query, c.GID()); err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	return &res, nil
}

// selectQuery makes adopted select of messages with optional source filter, ordered by id
func (c *Corpus) selectQuery(l Label, s Source) (query string, args []any, err error) {
	if err = l.Validate(); err != nil {
		return "", nil, err
	}
	if err = s.Validate(); err != nil {
		return "", nil, err
	}
	if s == SourceAny {
		query = `SELECT message FROM corpus WHERE gid = ? AND label = ? ORDER BY id`
		return c.Adopt(query), []any{c.GID(), l}, nil
	}
	query = `SELECT message FROM corpus WHERE gid = ? AND label = ? AND source = ? ORDER BY id`
	return c.Adopt(query), []any{c.GID(), l, s}, nil
}

// String implements Stringer interface
func (l Label) String() string { return string(l) }

// Validate checks if the label is valid
func (l Label) Validate() error {
	switch l {
	case LabelHam, LabelSpam:
		return nil
	}
	return fmt.Errorf("invalid label: %q", string(l))
}

// String implements Stringer interface
func (s Source) String() string { return string(s) }

// Validate checks if the source is valid
func (s Source) Validate() error {
	switch s {
	case SourcePreset, SourceUser, SourceAny:
		return nil
	}
	return fmt.Errorf("invalid source: %q", string(s))
}

// shorten cuts the string to limit runes
func shorten(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit]) + "..."
}
