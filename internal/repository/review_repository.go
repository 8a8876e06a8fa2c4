package repository

import (
	"context"

	"app/internal/domain/model"
)

type ReviewRepository interface {
	ListByGameID(ctx context.Context, gameID int64) ([]model.Review, error)
	Create(ctx context.Context, review *model.Review) error
}
