package server

import (
	"github.com/labstack/echo/v4"

	"app/internal/config"
)

// 全エンドポイントの登録。パスはAPI仕様の末尾スラッシュのまま。
func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	h.Catalog.RegisterRoutes(e)
	h.Auth.RegisterRoutes(e)
	h.Review.RegisterRoutes(e, cfg)
	h.Library.RegisterRoutes(e, cfg)
	h.Cart.RegisterRoutes(e, cfg)
	h.Order.RegisterRoutes(e, cfg)
}
