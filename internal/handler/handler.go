package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"app/internal/apperr"
	"app/internal/middleware"
)

// 全エンドポイント共通のエラーボディ
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// usecaseのエラーをHTTPレスポンスへ変換する
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if e, ok := apperr.As(err); ok {
		return c.JSON(e.Status, ErrorResponse{Detail: e.Detail})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "internal server error"})
}

// AuthJWTが入れたuser_idを取り出す
func getUserIDFromContext(c echo.Context) (int64, bool) {
	userID, ok := c.Get(middleware.CtxUserIDKey).(int64)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}
