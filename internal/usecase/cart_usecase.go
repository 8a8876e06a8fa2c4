package usecase

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"app/internal/apperr"
	"app/internal/domain/model"
	repo "app/internal/repository"
)

// /cart の業務ロジック。すべて呼び出しユーザーの単一カートにスコープする。
type CartUsecase struct {
	cartRepo     repo.CartRepository
	cartItemRepo repo.CartItemRepository
	gameRepo     repo.GameRepository
	mediaBaseURL string
}

// DI
func NewCartUsecase(
	cartRepo repo.CartRepository,
	cartItemRepo repo.CartItemRepository,
	gameRepo repo.GameRepository,
	mediaBaseURL string,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		gameRepo:     gameRepo,
		mediaBaseURL: mediaBaseURL,
	}
}

// 明細。subtotal = quantity × game.price（固定小数点）。
type CartItemResponse struct {
	ID       int64           `json:"id"`
	Game     GameResponse    `json:"game"`
	Quantity int64           `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

type AddItemInput struct {
	GameID   int64
	Quantity int64
}

// カート取得。無ければ空のカートを作って返す。
func (u *CartUsecase) GetCart(ctx context.Context, userID int64) (CartResponse, error) {
	cart, err := u.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, err
	}

	items, err := u.cartItemRepo.ListByCartID(ctx, cart.ID)
	if err != nil {
		return CartResponse{}, err
	}

	respItems := make([]CartItemResponse, 0, len(items))
	total := decimal.Zero

	for _, it := range items {
		resp, err := u.buildItemResponse(ctx, it)
		if err != nil {
			return CartResponse{}, err
		}
		respItems = append(respItems, resp)
		total = total.Add(resp.Subtotal)
	}

	return CartResponse{Items: respItems, Total: total}, nil
}

// カートに追加。同一ゲームは数量加算（置き換えではない）。
func (u *CartUsecase) AddItem(ctx context.Context, userID int64, in AddItemInput) (CartItemResponse, error) {
	if in.GameID <= 0 {
		return CartItemResponse{}, apperr.Validation("game_id is required")
	}
	if in.Quantity < 1 {
		return CartItemResponse{}, apperr.Validation("quantity must be >= 1")
	}

	ok, err := u.gameRepo.Exists(ctx, in.GameID)
	if err != nil {
		return CartItemResponse{}, err
	}
	if !ok {
		return CartItemResponse{}, apperr.NotFound("game not found")
	}

	cart, err := u.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return CartItemResponse{}, err
	}

	item, err := u.cartItemRepo.AddQuantity(ctx, cart.ID, in.GameID, in.Quantity)
	if err != nil {
		return CartItemResponse{}, err
	}

	return u.buildItemResponse(ctx, item)
}

// 数量変更。0以下は行ごと削除（deleted=true）。
func (u *CartUsecase) UpdateItem(ctx context.Context, userID int64, cartItemID int64, quantity int64) (CartItemResponse, bool, error) {
	if cartItemID <= 0 {
		return CartItemResponse{}, false, apperr.Validation("invalid item id")
	}

	item, err := u.cartItemRepo.FindOwnedByUser(ctx, cartItemID, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartItemResponse{}, false, apperr.NotFound("cart item not found")
	}
	if err != nil {
		return CartItemResponse{}, false, err
	}

	if quantity <= 0 {
		if err := u.cartItemRepo.DeleteByID(ctx, item.ID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return CartItemResponse{}, false, apperr.NotFound("cart item not found")
			}
			return CartItemResponse{}, false, err
		}
		return CartItemResponse{}, true, nil
	}

	if err := u.cartItemRepo.UpdateQuantity(ctx, item.ID, quantity); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return CartItemResponse{}, false, apperr.NotFound("cart item not found")
		}
		return CartItemResponse{}, false, err
	}

	item.Quantity = quantity
	resp, err := u.buildItemResponse(ctx, item)
	if err != nil {
		return CartItemResponse{}, false, err
	}
	return resp, false, nil
}

// 明細削除
func (u *CartUsecase) RemoveItem(ctx context.Context, userID int64, cartItemID int64) error {
	if cartItemID <= 0 {
		return apperr.Validation("invalid item id")
	}

	item, err := u.cartItemRepo.FindOwnedByUser(ctx, cartItemID, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return apperr.NotFound("cart item not found")
	}
	if err != nil {
		return err
	}

	if err := u.cartItemRepo.DeleteByID(ctx, item.ID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apperr.NotFound("cart item not found")
		}
		return err
	}
	return nil
}

func (u *CartUsecase) buildItemResponse(ctx context.Context, item model.CartItem) (CartItemResponse, error) {
	game, err := u.gameRepo.FindByID(ctx, item.GameID)
	if err != nil {
		return CartItemResponse{}, err
	}

	qty := decimal.NewFromInt(item.Quantity)

	return CartItemResponse{
		ID:       item.ID,
		Game:     newGameResponse(game, u.mediaBaseURL),
		Quantity: item.Quantity,
		Subtotal: game.Price.Mul(qty),
	}, nil
}
