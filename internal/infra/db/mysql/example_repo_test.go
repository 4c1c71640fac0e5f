package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/bryanwahyu/req2spec/internal/domain/examples"
)

func setupMockDB(t *testing.T) (*ExampleRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewExampleRepository(db), mock
}

func TestExampleRepository_List(t *testing.T) {
	repo, mock := setupMockDB(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "title", "text", "created_at"}).
		AddRow("ex-user-registration", "User registration", "Create a user registration system with email verification", now).
		AddRow("ex-blog", "Blog platform", "Create a blog platform with user authentication and comment system", now.Add(time.Second))

	mock.ExpectQuery("SELECT id, title, text, created_at").WillReturnRows(rows)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, domain.ExampleID("ex-user-registration"), list[0].ID)
	assert.Equal(t, "Blog platform", list[1].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExampleRepository_Get(t *testing.T) {
	repo, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "title", "text", "created_at"}).
		AddRow("ex-blog", "Blog platform", "Create a blog platform", time.Now())

	mock.ExpectQuery("SELECT id, title, text, created_at").
		WithArgs("ex-blog").
		WillReturnRows(rows)

	e, err := repo.Get(context.Background(), "ex-blog")
	require.NoError(t, err)
	assert.Equal(t, "Blog platform", e.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExampleRepository_Save(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec("INSERT INTO requirement_examples").
		WithArgs("ex-new", "New example", "Build a reporting dashboard", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Save(context.Background(), &domain.Example{
		ID:    "ex-new",
		Title: "New example",
		Text:  "Build a reporting dashboard",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExampleRepository_EnsureSeed_EmptyTable(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	for _, e := range domain.Defaults() {
		mock.ExpectExec("INSERT INTO requirement_examples").
			WithArgs(string(e.ID), e.Title, e.Text, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
	}

	require.NoError(t, repo.EnsureSeed(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExampleRepository_EnsureSeed_AlreadySeeded(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	require.NoError(t, repo.EnsureSeed(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
