package memory

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExampleRepository_ListReturnsDefaults(t *testing.T) {
	repo := NewExampleRepository()

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, "User registration", list[0].Title)
}

func TestExampleRepository_Get(t *testing.T) {
	repo := NewExampleRepository()

	e, err := repo.Get(context.Background(), "ex-blog")
	require.NoError(t, err)
	assert.Contains(t, e.Text, "blog platform")

	_, err = repo.Get(context.Background(), "ex-missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
