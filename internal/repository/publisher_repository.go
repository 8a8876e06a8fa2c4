package repository

import (
	"context"

	"app/internal/domain/model"
)

type PublisherRepository interface {
	List(ctx context.Context) ([]model.Publisher, error)
}

type GenreRepository interface {
	List(ctx context.Context) ([]model.Genre, error)
}
