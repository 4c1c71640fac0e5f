package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	_ "github.com/lib/pq"

	domain "github.com/bryanwahyu/req2spec/internal/domain/examples"
)

type ExampleRepository struct {
	db *sql.DB
}

func NewExampleRepository(db *sql.DB) *ExampleRepository {
	return &ExampleRepository{db: db}
}

// Connect opens a pooled Postgres handle and verifies it with a short ping
func Connect(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx2, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx2); err != nil {
		return nil, err
	}
	return db, nil
}

// Save inserts or updates an example record
func (r *ExampleRepository) Save(ctx context.Context, e *domain.Example) error {
	const q = `
INSERT INTO requirement_examples (id, title, text, created_at)
VALUES ($1,$2,$3,$4)
ON CONFLICT (id) DO UPDATE SET
  title=EXCLUDED.title,
  text=EXCLUDED.text;
`
	title := e.Title
	if strings.TrimSpace(title) == "" {
		title = "-"
	}
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx, q, e.ID, title, e.Text, createdAt)
	return err
}

// List returns the catalog, oldest first so seeded order is stable
func (r *ExampleRepository) List(ctx context.Context) ([]*domain.Example, error) {
	const q = `
SELECT id, title, text, created_at
FROM requirement_examples
ORDER BY created_at ASC, id ASC;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Example
	for rows.Next() {
		var e domain.Example
		if err := rows.Scan(&e.ID, &e.Title, &e.Text, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

// Get by ID
func (r *ExampleRepository) Get(ctx context.Context, id domain.ExampleID) (*domain.Example, error) {
	const q = `
SELECT id, title, text, created_at
FROM requirement_examples
WHERE id=$1 LIMIT 1;
`
	var e domain.Example
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&e.ID, &e.Title, &e.Text, &e.CreatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

// EnsureSeed inserts the built-in examples when the table is empty
func (r *ExampleRepository) EnsureSeed(ctx context.Context) error {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM requirement_examples;`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	now := time.Now()
	for i, e := range domain.Defaults() {
		e.CreatedAt = now.Add(time.Duration(i) * time.Second)
		if err := r.Save(ctx, e); err != nil {
			return err
		}
	}
	return nil
}
