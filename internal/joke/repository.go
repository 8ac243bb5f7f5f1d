package joke

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Repository defines the interface for joke persistence operations.
// This abstraction allows for different implementations (SQLite, mock, etc.)
// and enables unit testing without database dependencies.
type Repository interface {
	// Create validates and inserts a new joke, assigning its ID and
	// timestamps. Returns a *ValidationError if required fields are missing;
	// nothing is written in that case.
	Create(ctx context.Context, j *Joke) error

	// GetByID retrieves a joke by its unique identifier.
	// Returns ErrJokeNotFound if the joke does not exist.
	GetByID(ctx context.Context, id int64) (*Joke, error)

	// List retrieves all jokes ordered by created_at descending.
	// A non-empty authorFilter restricts the result to jokes whose author
	// contains the filter as a case-insensitive substring.
	List(ctx context.Context, authorFilter string) ([]Joke, error)

	// Update applies the non-empty fields of params and refreshes
	// updated_at (an all-empty params still refreshes it).
	// Returns the updated joke, or ErrJokeNotFound if the ID does not exist.
	Update(ctx context.Context, id int64, params UpdateParams) (*Joke, error)

	// Delete removes a joke by ID.
	// Returns ErrJokeNotFound if the joke does not exist.
	Delete(ctx context.Context, id int64) error

	// Count returns the total number of stored jokes.
	Count(ctx context.Context) (int64, error)

	// PickRandom returns a uniformly-selected joke.
	// Returns ErrJokeNotFound when the store is empty.
	PickRandom(ctx context.Context) (*Joke, error)
}

// SQLiteRepository implements Repository using SQLite.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite-backed repository.
// The db parameter should be an open SQLite connection with the jokes
// table migrated.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// jokeColumns is the column list shared by every SELECT in this file.
const jokeColumns = "id, setup, punchline, author, created_at, updated_at"

// timeFormat is RFC3339 with fixed-width nanoseconds. The fixed width keeps
// lexicographic ordering of the stored text equal to chronological ordering,
// which ORDER BY created_at relies on. RFC3339Nano would trim trailing zeros
// and break that property.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// Create validates and inserts a new joke.
func (r *SQLiteRepository) Create(ctx context.Context, j *Joke) error {
	if err := Validate(j); err != nil {
		return err
	}

	now := time.Now().UTC()
	j.CreatedAt = now
	j.UpdatedAt = now

	result, err := r.db.ExecContext(ctx, `
		INSERT INTO jokes (setup, punchline, author, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		j.Setup,
		j.Punchline,
		j.Author,
		now.Format(timeFormat),
		now.Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("inserting joke: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading new joke id: %w", err)
	}
	j.ID = id

	return nil
}

// GetByID retrieves a joke by its unique identifier.
func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*Joke, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+jokeColumns+" FROM jokes WHERE id = ?", id)

	j, err := scanJoke(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrJokeNotFound
		}
		return nil, fmt.Errorf("querying joke by id: %w", err)
	}
	return j, nil
}

// List retrieves jokes newest-first, optionally filtered by author substring.
func (r *SQLiteRepository) List(ctx context.Context, authorFilter string) ([]Joke, error) {
	query := "SELECT " + jokeColumns + " FROM jokes"
	var args []any

	if authorFilter != "" {
		// instr avoids LIKE wildcard escaping for user-supplied filters
		query += " WHERE instr(lower(author), lower(?)) > 0"
		args = append(args, authorFilter)
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying jokes: %w", err)
	}
	defer rows.Close()

	jokes := []Joke{}
	for rows.Next() {
		j, err := scanJoke(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning joke: %w", err)
		}
		jokes = append(jokes, *j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating jokes: %w", err)
	}

	return jokes, nil
}

// Update applies the non-empty fields of params and refreshes updated_at.
func (r *SQLiteRepository) Update(ctx context.Context, id int64, params UpdateParams) (*Joke, error) {
	now := time.Now().UTC()

	// NULLIF turns empty params into NULL so COALESCE keeps the stored
	// value; a single statement keeps the read-modify-write atomic.
	result, err := r.db.ExecContext(ctx, `
		UPDATE jokes SET
			setup = COALESCE(NULLIF(?, ''), setup),
			punchline = COALESCE(NULLIF(?, ''), punchline),
			author = COALESCE(NULLIF(?, ''), author),
			updated_at = ?
		WHERE id = ?`,
		params.Setup,
		params.Punchline,
		params.Author,
		now.Format(timeFormat),
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating joke: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, ErrJokeNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete removes a joke by ID.
func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM jokes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting joke: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrJokeNotFound
	}

	return nil
}

// Count returns the total number of stored jokes.
func (r *SQLiteRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM jokes").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting jokes: %w", err)
	}
	return count, nil
}

// PickRandom returns a uniformly-selected joke.
//
// The random-order query picks uniformly in a single statement, so there is
// no count-then-fetch window for a concurrent create or delete to skew.
func (r *SQLiteRepository) PickRandom(ctx context.Context) (*Joke, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+jokeColumns+" FROM jokes ORDER BY RANDOM() LIMIT 1")

	j, err := scanJoke(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrJokeNotFound
		}
		return nil, fmt.Errorf("querying random joke: %w", err)
	}
	return j, nil
}

// rowScanner is an interface that sql.Row and sql.Rows both implement.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanJoke scans a row or rows result into a Joke.
func scanJoke(scanner rowScanner) (*Joke, error) {
	var j Joke
	var createdAt, updatedAt string

	err := scanner.Scan(
		&j.ID,
		&j.Setup,
		&j.Punchline,
		&j.Author,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	j.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	j.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	return &j, nil
}
