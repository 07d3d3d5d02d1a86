package book

import (
	"context"
)

// Service exposes the book operations to the HTTP layer.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every book ordered by code.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	return s.repo.List(ctx)
}

// GetByCode returns the book with the given code or ErrNotFound.
func (s *Service) GetByCode(ctx context.Context, code int64) (Book, error) {
	return s.repo.GetByCode(ctx, code)
}

// Create inserts a book; the code is assigned by storage.
func (s *Service) Create(ctx context.Context, in Input) (Book, error) {
	return s.repo.Create(ctx, in)
}

// Update replaces every mutable field of the book with the given code.
func (s *Service) Update(ctx context.Context, code int64, in Input) (Book, error) {
	return s.repo.Update(ctx, code, in)
}

// Delete removes the book with the given code or returns ErrNotFound.
func (s *Service) Delete(ctx context.Context, code int64) error {
	return s.repo.Delete(ctx, code)
}
