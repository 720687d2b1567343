// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// The default path is ":memory:", so the data still lives only as long as
// the process. Every ":memory:" connection opens its own empty database,
// which is why New pins the pool to a single connection that is never
// closed for age or idleness.
//
// The blank import below registers the sqlite3 driver with database/sql.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aanand-mishra/contacts-api/internal/config"
	"github.com/aanand-mishra/contacts-api/internal/storage"
	"github.com/aanand-mishra/contacts-api/internal/types"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage.
type SQLite struct {
	Db *sql.DB
}

var _ storage.Storage = (*SQLite)(nil)

// New opens the database at cfg.Storage.Path, creates the contacts table
// if it does not exist and inserts the seed contacts when the table is
// empty.
//
// AUTOINCREMENT (rather than a plain INTEGER PRIMARY KEY) makes SQLite
// remember the highest id ever handed out, so ids of deleted contacts are
// never reused.
func New(cfg *config.Config) (*SQLite, error) {
	db, err := sql.Open("sqlite3", cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS contacts (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			first_name TEXT    NOT NULL,
			last_name  TEXT    NOT NULL,
			email      TEXT    NOT NULL,
			telephone  TEXT    NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	s := &SQLite{Db: db}
	if err := s.seed(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: %w", err)
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return s.Db.Close()
}

// seed inserts storage.Seed() with explicit ids. Inserting id 2 moves the
// AUTOINCREMENT sequence to 2, so the first created contact gets id 3.
func (s *SQLite) seed(ctx context.Context) error {
	var count int
	if err := s.Db.QueryRowContext(ctx, "SELECT COUNT(*) FROM contacts").Scan(&count); err != nil {
		return fmt.Errorf("seed: count: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.Db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed: begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	for _, c := range storage.Seed() {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO contacts (id, first_name, last_name, email, telephone) VALUES (?, ?, ?, ?, ?)",
			c.ID, c.FirstName, c.LastName, c.Email, c.Telephone,
		)
		if err != nil {
			return fmt.Errorf("seed: insert %d: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: commit: %w", err)
	}
	return nil
}

func (s *SQLite) GetContacts(ctx context.Context) ([]types.Contact, error) {
	// Ordering by id is insertion order: ids only ever grow.
	rows, err := s.Db.QueryContext(ctx,
		"SELECT id, first_name, last_name, email, telephone FROM contacts ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("GetContacts: query: %w", err)
	}
	defer rows.Close()

	contacts := make([]types.Contact, 0)
	for rows.Next() {
		var c types.Contact
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Telephone); err != nil {
			return nil, fmt.Errorf("GetContacts: scan row: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetContacts: rows iteration: %w", err)
	}

	return contacts, nil
}

func (s *SQLite) GetContactByID(ctx context.Context, id int64) (types.Contact, error) {
	var c types.Contact
	err := s.Db.QueryRowContext(ctx,
		"SELECT id, first_name, last_name, email, telephone FROM contacts WHERE id = ? LIMIT 1",
		id,
	).Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Telephone)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Contact{}, fmt.Errorf("GetContactByID %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return types.Contact{}, fmt.Errorf("GetContactByID: scan: %w", err)
	}
	return c, nil
}

func (s *SQLite) CreateContact(ctx context.Context, c types.Contact) (types.Contact, error) {
	result, err := s.Db.ExecContext(ctx,
		"INSERT INTO contacts (first_name, last_name, email, telephone) VALUES (?, ?, ?, ?)",
		c.FirstName, c.LastName, c.Email, c.Telephone,
	)
	if err != nil {
		return types.Contact{}, fmt.Errorf("CreateContact: exec: %w", err)
	}

	c.ID, err = result.LastInsertId()
	if err != nil {
		return types.Contact{}, fmt.Errorf("CreateContact: last insert id: %w", err)
	}
	return c, nil
}

func (s *SQLite) UpdateContactByID(ctx context.Context, id int64, c types.Contact) (types.Contact, error) {
	result, err := s.Db.ExecContext(ctx,
		"UPDATE contacts SET first_name = ?, last_name = ?, email = ?, telephone = ? WHERE id = ?",
		c.FirstName, c.LastName, c.Email, c.Telephone, id,
	)
	if err != nil {
		return types.Contact{}, fmt.Errorf("UpdateContactByID: exec: %w", err)
	}
	if err := requireOneRow(result); err != nil {
		return types.Contact{}, fmt.Errorf("UpdateContactByID %d: %w", id, err)
	}

	c.ID = id
	return c, nil
}

func (s *SQLite) DeleteContactByID(ctx context.Context, id int64) error {
	result, err := s.Db.ExecContext(ctx, "DELETE FROM contacts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("DeleteContactByID: exec: %w", err)
	}
	if err := requireOneRow(result); err != nil {
		return fmt.Errorf("DeleteContactByID %d: %w", id, err)
	}
	return nil
}

// requireOneRow maps "no row touched" to storage.ErrNotFound.
func requireOneRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}
