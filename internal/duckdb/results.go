package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/inodb/trinuc/internal/trinuc"
)

// Store saves res under key, replacing any earlier entry for that key.
// Outcome and count rows are written with the Appender API. The runs row
// is written last, so Lookup never sees a partial entry.
func (s *Store) Store(key string, res *trinuc.Result) error {
	if err := s.delete(key); err != nil {
		return err
	}

	if err := s.appendRows(key, res); err != nil {
		if cerr := s.delete(key); cerr != nil {
			return errors.Join(err, cerr)
		}
		return err
	}

	if _, err := s.db.Exec(`INSERT INTO runs VALUES (?, ?, ?)`,
		key, res.Sequence, time.Now().UTC()); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

func (s *Store) appendRows(key string, res *trinuc.Result) error {
	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	return conn.Raw(func(driverConn any) error {
		if err := appendOutcomes(driverConn.(driver.Conn), key, res.Outcomes); err != nil {
			return err
		}
		return appendCounts(driverConn.(driver.Conn), key, res.Counts)
	})
}

func appendOutcomes(conn driver.Conn, key string, outcomes []trinuc.Outcome) error {
	appender, err := goduckdb.NewAppenderFromConn(conn, "", "run_outcomes")
	if err != nil {
		return fmt.Errorf("create outcome appender: %w", err)
	}
	defer appender.Close()

	for i, o := range outcomes {
		var kind int64
		var message string
		if o.Err != nil {
			kind = int64(o.Err.Kind)
			message = o.Err.Message
		}
		c := o.Context
		if err := appender.AppendRow(
			key, int64(i), o.Token, kind, message,
			byteString(c.Before), byteString(c.Ref), byteString(c.Alt), byteString(c.After),
			int64(c.Position), c.Notation,
		); err != nil {
			return fmt.Errorf("append outcome: %w", err)
		}
	}

	return appender.Flush()
}

func appendCounts(conn driver.Conn, key string, counts trinuc.CountTable) error {
	appender, err := goduckdb.NewAppenderFromConn(conn, "", "run_counts")
	if err != nil {
		return fmt.Errorf("create count appender: %w", err)
	}
	defer appender.Close()

	for _, c := range trinuc.AllContexts() {
		n := counts[c]
		if n == 0 {
			continue
		}
		if err := appender.AppendRow(key, c, int64(n)); err != nil {
			return fmt.Errorf("append count: %w", err)
		}
	}

	return appender.Flush()
}

// Lookup returns the result stored under key.
func (s *Store) Lookup(key string) (*trinuc.Result, bool, error) {
	var seq string
	err := s.db.QueryRow(`SELECT sequence FROM runs WHERE run_key=?`, key).Scan(&seq)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query run: %w", err)
	}

	outcomes, err := s.lookupOutcomes(key)
	if err != nil {
		return nil, false, err
	}
	counts, err := s.lookupCounts(key)
	if err != nil {
		return nil, false, err
	}

	return &trinuc.Result{Sequence: seq, Outcomes: outcomes, Counts: counts}, true, nil
}

func (s *Store) lookupOutcomes(key string) ([]trinuc.Outcome, error) {
	rows, err := s.db.Query(`SELECT
		token, error_kind, error_message,
		flank5, ref, alt, flank3, pos, context
		FROM run_outcomes
		WHERE run_key=?
		ORDER BY ord`, key)
	if err != nil {
		return nil, fmt.Errorf("query outcomes: %w", err)
	}
	defer rows.Close()

	outcomes := []trinuc.Outcome{}
	for rows.Next() {
		var o trinuc.Outcome
		var kind, pos int64
		var message, before, ref, alt, after string
		if err := rows.Scan(
			&o.Token, &kind, &message,
			&before, &ref, &alt, &after, &pos, &o.Context.Notation,
		); err != nil {
			return nil, fmt.Errorf("scan outcome: %w", err)
		}

		if kind != 0 {
			o.Err = &trinuc.MutationError{Kind: trinuc.ErrorKind(kind), Message: message}
		} else {
			o.Context.Before = firstByte(before)
			o.Context.Ref = firstByte(ref)
			o.Context.Alt = firstByte(alt)
			o.Context.After = firstByte(after)
			o.Context.Position = int(pos)
		}
		outcomes = append(outcomes, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outcomes: %w", err)
	}
	return outcomes, nil
}

func (s *Store) lookupCounts(key string) (trinuc.CountTable, error) {
	rows, err := s.db.Query(`SELECT context, n FROM run_counts WHERE run_key=?`, key)
	if err != nil {
		return nil, fmt.Errorf("query counts: %w", err)
	}
	defer rows.Close()

	counts := trinuc.NewCountTable()
	for rows.Next() {
		var ctx string
		var n int64
		if err := rows.Scan(&ctx, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[ctx] = int(n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate counts: %w", err)
	}
	return counts, nil
}

// SearchByContext returns the keys of cached runs that counted ctx at
// least once, with the count for each.
func (s *Store) SearchByContext(ctx string) (map[string]int, error) {
	rows, err := s.db.Query(`SELECT run_key, n FROM run_counts WHERE context=?`, ctx)
	if err != nil {
		return nil, fmt.Errorf("query by context: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var key string
		var n int64
		if err := rows.Scan(&key, &n); err != nil {
			return nil, fmt.Errorf("scan context count: %w", err)
		}
		out[key] = int(n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate context counts: %w", err)
	}
	return out, nil
}

// RunCount returns the number of cached runs.
func (s *Store) RunCount() (int, error) {
	var n int64
	if err := s.db.QueryRow(`SELECT count(*) FROM runs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count runs: %w", err)
	}
	return int(n), nil
}

// Clear removes all cached results.
func (s *Store) Clear() error {
	for _, table := range []string{"run_counts", "run_outcomes", "runs"} {
		if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

func (s *Store) delete(key string) error {
	for _, table := range []string{"run_counts", "run_outcomes", "runs"} {
		if _, err := s.db.Exec("DELETE FROM "+table+" WHERE run_key=?", key); err != nil {
			return fmt.Errorf("delete from %s: %w", table, err)
		}
	}
	return nil
}

func byteString(b byte) string {
	if b == 0 {
		return ""
	}
	return string([]byte{b})
}

func firstByte(s string) byte {
	if s == "" {
		return 0
	}
	return s[0]
}
