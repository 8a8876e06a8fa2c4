package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"app/internal/apperr"
	"app/internal/domain/model"
	repo "app/internal/repository"
)

// OASの Genre
type GenreResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// OASの Publisher
type PublisherResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Website string `json:"website"`
}

// OASの Game。publisher/genresはネストで返し、
// cover_imageは絶対URLに変換して返す。
type GameResponse struct {
	ID          int64             `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Price       decimal.Decimal   `json:"price"`
	ReleaseDate string            `json:"release_date"`
	Publisher   PublisherResponse `json:"publisher"`
	Genres      []GenreResponse   `json:"genres"`
	CoverImage  string            `json:"cover_image"`
}

// モデル→レスポンス変換。library/cartでも共用する。
func newGameResponse(g model.Game, mediaBaseURL string) GameResponse {
	genres := make([]GenreResponse, 0, len(g.Genres))
	for _, genre := range g.Genres {
		genres = append(genres, GenreResponse{ID: genre.ID, Name: genre.Name})
	}

	return GameResponse{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		Price:       g.Price,
		ReleaseDate: g.ReleaseDate.Format("2006-01-02"),
		Publisher: PublisherResponse{
			ID:      g.Publisher.ID,
			Name:    g.Publisher.Name,
			Website: g.Publisher.Website,
		},
		Genres:     genres,
		CoverImage: coverImageURL(g.CoverImage, mediaBaseURL),
	}
}

// 相対パス→絶対URL。パスが空なら空のまま返す。
func coverImageURL(path string, mediaBaseURL string) string {
	if path == "" {
		return ""
	}
	return strings.TrimRight(mediaBaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// カタログの読み取り専用ロジック
type CatalogUsecase struct {
	gameRepo      repo.GameRepository
	publisherRepo repo.PublisherRepository
	genreRepo     repo.GenreRepository
	mediaBaseURL  string
}

// DI
func NewCatalogUsecase(
	gameRepo repo.GameRepository,
	publisherRepo repo.PublisherRepository,
	genreRepo repo.GenreRepository,
	mediaBaseURL string,
) *CatalogUsecase {
	return &CatalogUsecase{
		gameRepo:      gameRepo,
		publisherRepo: publisherRepo,
		genreRepo:     genreRepo,
		mediaBaseURL:  mediaBaseURL,
	}
}

func (u *CatalogUsecase) ListGames(ctx context.Context) ([]GameResponse, error) {
	games, err := u.gameRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]GameResponse, 0, len(games))
	for _, g := range games {
		out = append(out, newGameResponse(g, u.mediaBaseURL))
	}
	return out, nil
}

func (u *CatalogUsecase) GetGame(ctx context.Context, id int64) (GameResponse, error) {
	if id <= 0 {
		return GameResponse{}, apperr.Validation("invalid game id")
	}

	g, err := u.gameRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return GameResponse{}, apperr.NotFound("game not found")
	}
	if err != nil {
		return GameResponse{}, err
	}

	return newGameResponse(g, u.mediaBaseURL), nil
}

func (u *CatalogUsecase) ListPublishers(ctx context.Context) ([]PublisherResponse, error) {
	publishers, err := u.publisherRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]PublisherResponse, 0, len(publishers))
	for _, p := range publishers {
		out = append(out, PublisherResponse{ID: p.ID, Name: p.Name, Website: p.Website})
	}
	return out, nil
}

func (u *CatalogUsecase) ListGenres(ctx context.Context) ([]GenreResponse, error) {
	genres, err := u.genreRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]GenreResponse, 0, len(genres))
	for _, g := range genres {
		out = append(out, GenreResponse{ID: g.ID, Name: g.Name})
	}
	return out, nil
}
