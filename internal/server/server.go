package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"app/internal/config"
	"app/internal/handler"
)

// Handlersはルーティングに必要なハンドラ一式
type Handlers struct {
	Auth    *handler.AuthHandler
	Catalog *handler.CatalogHandler
	Library *handler.LibraryHandler
	Cart    *handler.CartHandler
	Review  *handler.ReviewHandler
	Order   *handler.OrderHandler
}

// Newはechoを組み立てて返す（起動はしない）
func New(cfg config.Config, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	RegisterRoutes(e, cfg, h)

	return e
}

// Startはサーバを起動する
func Start(addr string, cfg config.Config, h Handlers) error {
	e := New(cfg, h)
	return e.Start(addr)
}
