package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"app/internal/config"
)

func signTestToken(t *testing.T, secret string, typ string, sub string, ttl time.Duration) string {
	t.Helper()

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": sub,
		"typ": typ,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	return signed
}

func doWithAuth(cfg config.Config, authz string) (*httptest.ResponseRecorder, *int64) {
	e := echo.New()

	var gotUserID *int64
	h := AuthJWT(cfg)(func(c echo.Context) error {
		id := c.Get(CtxUserIDKey).(int64)
		gotUserID = &id
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()

	_ = h(e.NewContext(req, rec))
	return rec, gotUserID
}

func TestAuthJWT_ValidAccessToken(t *testing.T) {
	cfg := config.Config{JWTSecret: "test-secret"}
	token := signTestToken(t, "test-secret", "access", "42", time.Minute)

	rec, userID := doWithAuth(cfg, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	if assert.NotNil(t, userID) {
		assert.Equal(t, int64(42), *userID)
	}
}

func TestAuthJWT_MissingHeader(t *testing.T) {
	cfg := config.Config{JWTSecret: "test-secret"}

	rec, userID := doWithAuth(cfg, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, userID)
	assert.Contains(t, rec.Body.String(), "detail")
}

// refreshトークンで保護エンドポイントは叩けない
func TestAuthJWT_RejectsRefreshToken(t *testing.T) {
	cfg := config.Config{JWTSecret: "test-secret"}
	token := signTestToken(t, "test-secret", "refresh", "42", time.Minute)

	rec, userID := doWithAuth(cfg, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, userID)
}

func TestAuthJWT_WrongSecretAndExpired(t *testing.T) {
	cfg := config.Config{JWTSecret: "test-secret"}

	wrong := signTestToken(t, "other-secret", "access", "42", time.Minute)
	rec, _ := doWithAuth(cfg, "Bearer "+wrong)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	expired := signTestToken(t, "test-secret", "access", "42", -time.Minute)
	rec, _ = doWithAuth(cfg, "Bearer "+expired)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
