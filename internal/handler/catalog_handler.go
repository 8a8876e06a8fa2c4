package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"app/internal/usecase"
)

// カタログの公開API（読み取り専用）
type CatalogHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewCatalogHandler(uc *usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// /games/, /publishers/, /genres/ を登録
func (h *CatalogHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/games/", h.listGames)
	e.GET("/games/:id/", h.gameDetail)
	e.GET("/publishers/", h.listPublishers)
	e.GET("/genres/", h.listGenres)
}

func (h *CatalogHandler) listGames(c echo.Context) error {
	out, err := h.uc.ListGames(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) gameDetail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid game id"})
	}

	out, err := h.uc.GetGame(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) listPublishers(c echo.Context) error {
	out, err := h.uc.ListPublishers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) listGenres(c echo.Context) error {
	out, err := h.uc.ListGenres(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
