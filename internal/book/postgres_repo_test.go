package book

import (
	"context"
	_ "embed"
	"testing"
	"time"

	"livraria/internal/testutil"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/schema.sql
var schemaSQL string

func setupBookTestDB(t *testing.T) *pgxpool.Pool {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()
	_, err := db.Exec(ctx, schemaSQL)
	require.NoError(t, err)
	_, err = db.Exec(ctx, `TRUNCATE livros RESTART IDENTITY`)
	require.NoError(t, err)
	return db
}

func ptr[T any](v T) *T { return &v }

func fullInput(title string, price string) Input {
	return Input{
		Title:  ptr(title),
		Author: ptr("Autor"),
		Stock:  ptr(3),
		Price:  ptr(decimal.RequireFromString(price)),
		Sales:  ptr(1),
	}
}

func TestPostgresRepo_CreateAndGet(t *testing.T) {
	repo := NewPostgresRepo(setupBookTestDB(t), 5*time.Second)
	ctx := context.Background()

	created, err := repo.Create(ctx, fullInput("Dune", "29.90"))
	require.NoError(t, err)
	require.NotZero(t, created.Code)
	assert.Equal(t, "Dune", created.Title)
	assert.True(t, created.Price.Equal(decimal.RequireFromString("29.90")))

	found, err := repo.GetByCode(ctx, created.Code)
	require.NoError(t, err)
	assert.Equal(t, created.Code, found.Code)
	assert.Equal(t, created.Title, found.Title)
	assert.Equal(t, created.Author, found.Author)
	assert.Equal(t, created.Stock, found.Stock)
	assert.True(t, created.Price.Equal(found.Price))
	assert.Equal(t, created.Sales, found.Sales)
}

func TestPostgresRepo_CreateRejectsMissingFields(t *testing.T) {
	repo := NewPostgresRepo(setupBookTestDB(t), 0)
	ctx := context.Background()

	_, err := repo.Create(ctx, Input{Title: ptr("Sem autor")})
	require.Error(t, err)

	books, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestPostgresRepo_ListOrderedByCode(t *testing.T) {
	repo := NewPostgresRepo(setupBookTestDB(t), 0)
	ctx := context.Background()

	books, err := repo.List(ctx)
	require.NoError(t, err)
	require.NotNil(t, books)
	assert.Empty(t, books)

	for _, title := range []string{"C", "A", "B"} {
		_, err := repo.Create(ctx, fullInput(title, "10.00"))
		require.NoError(t, err)
	}

	books, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, books, 3)
	for i := 1; i < len(books); i++ {
		assert.Less(t, books[i-1].Code, books[i].Code)
	}
	assert.Equal(t, "C", books[0].Title)
}

func TestPostgresRepo_UpdateReplacesFields(t *testing.T) {
	repo := NewPostgresRepo(setupBookTestDB(t), 0)
	ctx := context.Background()

	created, err := repo.Create(ctx, fullInput("Old", "1.50"))
	require.NoError(t, err)

	in := Input{
		Title:  ptr("New"),
		Author: ptr("Outro"),
		Stock:  ptr(9),
		Price:  ptr(decimal.RequireFromString("2.25")),
		Sales:  ptr(4),
	}
	updated, err := repo.Update(ctx, created.Code, in)
	require.NoError(t, err)
	assert.Equal(t, created.Code, updated.Code)

	found, err := repo.GetByCode(ctx, created.Code)
	require.NoError(t, err)
	assert.Equal(t, "New", found.Title)
	assert.Equal(t, "Outro", found.Author)
	assert.Equal(t, 9, found.Stock)
	assert.True(t, found.Price.Equal(decimal.RequireFromString("2.25")))
	assert.Equal(t, 4, found.Sales)
}

func TestPostgresRepo_UpdateMissingLeavesTableUnchanged(t *testing.T) {
	repo := NewPostgresRepo(setupBookTestDB(t), 0)
	ctx := context.Background()

	_, err := repo.Create(ctx, fullInput("Keep", "5.00"))
	require.NoError(t, err)
	before, err := repo.List(ctx)
	require.NoError(t, err)

	_, err = repo.Update(ctx, 9999, fullInput("X", "1.00"))
	require.ErrorIs(t, err, ErrNotFound)

	after, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestPostgresRepo_Delete(t *testing.T) {
	repo := NewPostgresRepo(setupBookTestDB(t), 0)
	ctx := context.Background()

	created, err := repo.Create(ctx, fullInput("Gone", "3.00"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.Code))

	_, err = repo.GetByCode(ctx, created.Code)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, created.Code), ErrNotFound)
}
