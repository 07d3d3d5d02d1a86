package book

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the part of *pgxpool.Pool the repository uses.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type PostgresRepo struct {
	db      DB
	timeout time.Duration
}

// NewPostgresRepo wraps db. A timeout of zero leaves queries bounded only by the
// caller's context.
func NewPostgresRepo(db DB, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

const bookColumns = `codigo, titulo, autor, estoque, valor, vendas`

func scanBook(row pgx.Row) (Book, error) {
	var b Book
	err := row.Scan(&b.Code, &b.Title, &b.Author, &b.Stock, &b.Price, &b.Sales)
	return b, err
}

func (r *PostgresRepo) List(ctx context.Context) ([]Book, error) {
	const query = `SELECT ` + bookColumns + ` FROM livros ORDER BY codigo`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) GetByCode(ctx context.Context, code int64) (Book, error) {
	const query = `SELECT ` + bookColumns + ` FROM livros WHERE codigo = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	b, err := scanBook(r.db.QueryRow(timeoutCtx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) Create(ctx context.Context, in Input) (Book, error) {
	const query = `
		INSERT INTO livros (titulo, autor, estoque, valor, vendas)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + bookColumns

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return scanBook(r.db.QueryRow(timeoutCtx, query,
		in.Title, in.Author, in.Stock, in.Price, in.Sales,
	))
}

func (r *PostgresRepo) Update(ctx context.Context, code int64, in Input) (Book, error) {
	const query = `
		UPDATE livros
		SET titulo = $2, autor = $3, estoque = $4, valor = $5, vendas = $6
		WHERE codigo = $1
		RETURNING ` + bookColumns

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	b, err := scanBook(r.db.QueryRow(timeoutCtx, query,
		code, in.Title, in.Author, in.Stock, in.Price, in.Sales,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, code int64) error {
	const query = `DELETE FROM livros WHERE codigo = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query, code)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
