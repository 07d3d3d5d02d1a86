package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository defines the contract for book data storage.
type Repository interface {
	List(ctx context.Context) ([]Book, error)
	GetByCode(ctx context.Context, code int64) (Book, error)
	Create(ctx context.Context, in Input) (Book, error)
	Update(ctx context.Context, code int64, in Input) (Book, error)
	Delete(ctx context.Context, code int64) error
}
