package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	repo "app/internal/repository"
)

// 注文履歴の読み取りだけ。チェックアウト（注文作成）は未実装。
type OrderUsecase struct {
	orderRepo repo.OrderRepository
}

// DI
func NewOrderUsecase(orderRepo repo.OrderRepository) *OrderUsecase {
	return &OrderUsecase{orderRepo: orderRepo}
}

// priceは注文時点のスナップショット
type OrderItemResponse struct {
	ID            int64           `json:"id"`
	GameID        int64           `json:"game_id"`
	PriceSnapshot decimal.Decimal `json:"price_snapshot"`
}

type OrderResponse struct {
	ID         int64               `json:"id"`
	TotalPrice decimal.Decimal     `json:"total_price"`
	Status     string              `json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
	Items      []OrderItemResponse `json:"items"`
}

func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64) ([]OrderResponse, error) {
	orders, err := u.orderRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		items, err := u.orderRepo.ListItemsByOrderID(ctx, o.ID)
		if err != nil {
			return nil, err
		}

		respItems := make([]OrderItemResponse, 0, len(items))
		for _, it := range items {
			respItems = append(respItems, OrderItemResponse{
				ID:            it.ID,
				GameID:        it.GameID,
				PriceSnapshot: it.PriceSnapshot,
			})
		}

		out = append(out, OrderResponse{
			ID:         o.ID,
			TotalPrice: o.TotalPrice,
			Status:     string(o.Status),
			CreatedAt:  o.CreatedAt,
			Items:      respItems,
		})
	}
	return out, nil
}
