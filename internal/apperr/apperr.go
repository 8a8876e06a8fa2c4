package apperr

import (
	"errors"
	"net/http"
)

// API全体のエラー分類。HTTPステータスとdetailメッセージを運ぶ。
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	return e.Detail
}

// 入力不正（400）
func Validation(detail string) error {
	return &Error{Status: http.StatusBadRequest, Detail: detail}
}

// 一意制約の重複（400）
func Conflict(detail string) error {
	return &Error{Status: http.StatusBadRequest, Detail: detail}
}

// 認証失敗（401）
func Authentication(detail string) error {
	return &Error{Status: http.StatusUnauthorized, Detail: detail}
}

// 対象なし・他ユーザーのIDもここに潰す（404）
func NotFound(detail string) error {
	return &Error{Status: http.StatusNotFound, Detail: detail}
}

func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
