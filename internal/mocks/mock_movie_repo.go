package mocks

import (
	"context"

	"github.com/cinetick/movie-catalog/internal/domain"
)

type MockMovieRepo struct {
	domain.MovieRepository
	GetAllFunc    func(ctx context.Context) ([]domain.Movie, error)
	GetByIDFunc   func(ctx context.Context, id int) (domain.Movie, error)
	CreateFunc    func(ctx context.Context, movie domain.Movie) (domain.Movie, error)
	UpdateFunc    func(ctx context.Context, movie domain.Movie) (domain.Movie, error)
	DeleteFunc    func(ctx context.Context, id int) error
	UpsertAllFunc func(ctx context.Context, movies []domain.Movie) error
}

func (m *MockMovieRepo) GetAll(ctx context.Context) ([]domain.Movie, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockMovieRepo) GetByID(ctx context.Context, id int) (domain.Movie, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *MockMovieRepo) Create(ctx context.Context, movie domain.Movie) (domain.Movie, error) {
	return m.CreateFunc(ctx, movie)
}

func (m *MockMovieRepo) Update(ctx context.Context, movie domain.Movie) (domain.Movie, error) {
	return m.UpdateFunc(ctx, movie)
}

func (m *MockMovieRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}

func (m *MockMovieRepo) UpsertAll(ctx context.Context, movies []domain.Movie) error {
	return m.UpsertAllFunc(ctx, movies)
}
