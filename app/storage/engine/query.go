package engine

import "fmt"

// Query is a statement with sqlite and postgres variants.
// Postgres may be left empty if the sqlite text is valid for postgres with "$n" placeholders,
// the statement is adopted on the fly in this case.
type Query struct {
	Sqlite   string
	Postgres string
}

// For returns the statement for the database engine
func (q Query) For(e *SQL) (string, error) {
	if q.Sqlite == "" && q.Postgres == "" {
		return "", fmt.Errorf("empty query")
	}
	switch e.Type() {
	case Sqlite:
		if q.Sqlite == "" {
			return "", fmt.Errorf("no sqlite variant of %q", q.Postgres)
		}
		return q.Sqlite, nil
	case Postgres:
		if q.Postgres == "" {
			return e.Adopt(q.Sqlite), nil
		}
		return q.Postgres, nil
	}
	return "", fmt.Errorf("unsupported database type %q", e.Type())
}
