// Package memory holds in-process repository implementations used when no
// database is configured.
package memory

import (
	"context"
	"database/sql"

	domain "github.com/bryanwahyu/req2spec/internal/domain/examples"
)

// ExampleRepository serves the built-in example catalog from memory.
// Read-only after construction, safe for concurrent use.
type ExampleRepository struct {
	examples []*domain.Example
}

func NewExampleRepository() *ExampleRepository {
	return &ExampleRepository{examples: domain.Defaults()}
}

func (r *ExampleRepository) List(ctx context.Context) ([]*domain.Example, error) {
	out := make([]*domain.Example, len(r.examples))
	copy(out, r.examples)
	return out, nil
}

func (r *ExampleRepository) Get(ctx context.Context, id domain.ExampleID) (*domain.Example, error) {
	for _, e := range r.examples {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, sql.ErrNoRows
}
