package usecase

import (
	"context"
	"time"

	"app/internal/apperr"
	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ReviewUsecase struct {
	reviewRepo repo.ReviewRepository
	gameRepo   repo.GameRepository
	userRepo   repo.UserRepository
}

// DI
func NewReviewUsecase(
	reviewRepo repo.ReviewRepository,
	gameRepo repo.GameRepository,
	userRepo repo.UserRepository,
) *ReviewUsecase {
	return &ReviewUsecase{
		reviewRepo: reviewRepo,
		gameRepo:   gameRepo,
		userRepo:   userRepo,
	}
}

// userはnickname（未設定ならemail）で表示する
type ReviewResponse struct {
	ID        int64     `json:"id"`
	User      string    `json:"user"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateReviewInput struct {
	Rating  int
	Comment string
}

func (u *ReviewUsecase) ListByGame(ctx context.Context, gameID int64) ([]ReviewResponse, error) {
	if gameID <= 0 {
		return nil, apperr.Validation("invalid game id")
	}

	ok, err := u.gameRepo.Exists(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("game not found")
	}

	reviews, err := u.reviewRepo.ListByGameID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	out := make([]ReviewResponse, 0, len(reviews))
	for _, rv := range reviews {
		resp, err := u.buildResponse(ctx, rv)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func (u *ReviewUsecase) Create(ctx context.Context, userID int64, gameID int64, in CreateReviewInput) (ReviewResponse, error) {
	if gameID <= 0 {
		return ReviewResponse{}, apperr.Validation("invalid game id")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return ReviewResponse{}, apperr.Validation("rating must be between 1 and 5")
	}

	ok, err := u.gameRepo.Exists(ctx, gameID)
	if err != nil {
		return ReviewResponse{}, err
	}
	if !ok {
		return ReviewResponse{}, apperr.NotFound("game not found")
	}

	review := &model.Review{
		UserID:  userID,
		GameID:  gameID,
		Rating:  in.Rating,
		Comment: in.Comment,
	}

	if err := u.reviewRepo.Create(ctx, review); err != nil {
		return ReviewResponse{}, err
	}

	return u.buildResponse(ctx, *review)
}

func (u *ReviewUsecase) buildResponse(ctx context.Context, rv model.Review) (ReviewResponse, error) {
	display := ""
	if user, err := u.userRepo.FindByID(ctx, rv.UserID); err == nil {
		if user.Nickname != nil && *user.Nickname != "" {
			display = *user.Nickname
		} else {
			display = user.Email
		}
	}

	return ReviewResponse{
		ID:        rv.ID,
		User:      display,
		Rating:    rv.Rating,
		Comment:   rv.Comment,
		CreatedAt: rv.CreatedAt,
	}, nil
}
