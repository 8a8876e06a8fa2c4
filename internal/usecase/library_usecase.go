package usecase

import (
	"context"

	"app/internal/apperr"
	repo "app/internal/repository"
)

// ライブラリ（所有ゲーム集合）のロジック。
// (user, game) の状態は NOT_OWNED / OWNED の2つだけで、追加・削除は冪等。
type LibraryUsecase struct {
	libraryRepo  repo.LibraryRepository
	gameRepo     repo.GameRepository
	mediaBaseURL string
}

// DI
func NewLibraryUsecase(
	libraryRepo repo.LibraryRepository,
	gameRepo repo.GameRepository,
	mediaBaseURL string,
) *LibraryUsecase {
	return &LibraryUsecase{
		libraryRepo:  libraryRepo,
		gameRepo:     gameRepo,
		mediaBaseURL: mediaBaseURL,
	}
}

func (u *LibraryUsecase) List(ctx context.Context, userID int64) ([]GameResponse, error) {
	games, err := u.libraryRepo.ListGames(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]GameResponse, 0, len(games))
	for _, g := range games {
		out = append(out, newGameResponse(g, u.mediaBaseURL))
	}
	return out, nil
}

// 追加。既に所有していても成功（created=false）。
func (u *LibraryUsecase) Add(ctx context.Context, userID int64, gameID int64) (bool, error) {
	if gameID <= 0 {
		return false, apperr.Validation("game is required")
	}

	ok, err := u.gameRepo.Exists(ctx, gameID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, apperr.NotFound("game not found")
	}

	return u.libraryRepo.Add(ctx, userID, gameID)
}

// 削除。所有していなくても成功。
func (u *LibraryUsecase) Remove(ctx context.Context, userID int64, gameID int64) error {
	if gameID <= 0 {
		return apperr.Validation("game is required")
	}

	ok, err := u.gameRepo.Exists(ctx, gameID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("game not found")
	}

	return u.libraryRepo.Remove(ctx, userID, gameID)
}
