package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"
)

// /library/のHTTP
type LibraryHandler struct {
	uc *usecase.LibraryUsecase
}

// DI
func NewLibraryHandler(uc *usecase.LibraryUsecase) *LibraryHandler {
	return &LibraryHandler{uc: uc}
}

type LibraryRequest struct {
	Game int64 `json:"game"`
}

// /library/ を登録（要認証）
func (h *LibraryHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/library")
	g.Use(middleware.AuthJWT(cfg))

	g.GET("/", h.list)
	g.POST("/", h.add)
	g.DELETE("/", h.remove)
}

func (h *LibraryHandler) list(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Detail: "authentication credentials were not provided"})
	}

	out, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// 追加は冪等。初回は201、既に所有していれば200。
func (h *LibraryHandler) add(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Detail: "authentication credentials were not provided"})
	}

	var req LibraryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid body"})
	}

	created, err := h.uc.Add(c.Request().Context(), userID, req.Game)
	if err != nil {
		return writeError(c, err)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, map[string]int64{"game": req.Game})
}

func (h *LibraryHandler) remove(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Detail: "authentication credentials were not provided"})
	}

	var req LibraryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid body"})
	}

	if err := h.uc.Remove(c.Request().Context(), userID, req.Game); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
