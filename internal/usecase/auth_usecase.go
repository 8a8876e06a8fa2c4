package usecase

import (
	"context"
	"errors"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"app/internal/apperr"
	"app/internal/config"
	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 現在時刻（テストで差し替える）
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// 会員登録の入力
type RegisterInput struct {
	Email     string
	Password  string
	Nickname  string
	FirstName string
	LastName  string
	BirthDate string // YYYY-MM-DD、空可
}

// 公開してよい身元だけ返す
type RegisterOutput struct {
	ID       int64   `json:"id"`
	Email    string  `json:"email"`
	Nickname *string `json:"nickname"`
}

type LoginInput struct {
	Email    string
	Password string
}

// simplejwt互換の形＋nickname
type TokenPairOutput struct {
	Access   string  `json:"access"`
	Refresh  string  `json:"refresh"`
	Nickname *string `json:"nickname"`
}

type RefreshInput struct {
	Refresh string
}

type AccessTokenOutput struct {
	Access string `json:"access"`
}

// 登録・ログイン・リフレッシュをまとめた認証ロジック。
// トークンはHS256のJWT。accessはtyp=access、refreshはtyp=refresh+jtiを持つ。
type AuthUsecase struct {
	cfg      config.Config
	userRepo repo.UserRepository
	hasher   PasswordHasher
	verifier PasswordVerifier
	clock    Clock
}

// DI
func NewAuthUsecase(
	cfg config.Config,
	userRepo repo.UserRepository,
	hasher PasswordHasher,
	verifier PasswordVerifier,
	clock Clock,
) *AuthUsecase {
	return &AuthUsecase{
		cfg:      cfg,
		userRepo: userRepo,
		hasher:   hasher,
		verifier: verifier,
		clock:    clock,
	}
}

// 会員登録。emailは小文字化してから重複チェック・保存する。
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (RegisterOutput, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return RegisterOutput{}, apperr.Validation("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return RegisterOutput{}, apperr.Validation("invalid email format")
	}
	if in.Password == "" {
		return RegisterOutput{}, apperr.Validation("password is required")
	}

	var birthDate *time.Time
	if in.BirthDate != "" {
		d, err := time.Parse("2006-01-02", in.BirthDate)
		if err != nil {
			return RegisterOutput{}, apperr.Validation("birth_date must be YYYY-MM-DD")
		}
		birthDate = &d
	}

	// email重複チェック
	if _, err := u.userRepo.FindByEmail(ctx, email); err == nil {
		return RegisterOutput{}, apperr.Conflict("email already registered")
	} else if !errors.Is(err, repo.ErrNotFound) {
		return RegisterOutput{}, err
	}

	// nickname重複チェック（任意項目なので空は素通し）
	var nickname *string
	if n := strings.TrimSpace(in.Nickname); n != "" {
		if _, err := u.userRepo.FindByNickname(ctx, n); err == nil {
			return RegisterOutput{}, apperr.Conflict("nickname already taken")
		} else if !errors.Is(err, repo.ErrNotFound) {
			return RegisterOutput{}, err
		}
		nickname = &n
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return RegisterOutput{}, err
	}

	user := &model.User{
		Email:        email,
		Nickname:     nickname,
		PasswordHash: hashed,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		BirthDate:    birthDate,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return RegisterOutput{}, err
	}

	return RegisterOutput{
		ID:       user.ID,
		Email:    user.Email,
		Nickname: user.Nickname,
	}, nil
}

// ログイン。存在しないアカウントとパスワード違いはメッセージを分ける。
func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (TokenPairOutput, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return TokenPairOutput{}, apperr.Validation("email and password are required")
	}

	user, err := u.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return TokenPairOutput{}, apperr.Authentication("no active account with the given credentials")
	}
	if err != nil {
		return TokenPairOutput{}, err
	}

	if !u.verifier.Verify(in.Password, user.PasswordHash) {
		return TokenPairOutput{}, apperr.Authentication("incorrect password")
	}

	now := u.clock.Now()

	access, err := u.signToken(user.ID, "access", now, u.cfg.AccessTokenTTL)
	if err != nil {
		return TokenPairOutput{}, err
	}
	refresh, err := u.signToken(user.ID, "refresh", now, u.cfg.RefreshTokenTTL)
	if err != nil {
		return TokenPairOutput{}, err
	}

	return TokenPairOutput{
		Access:   access,
		Refresh:  refresh,
		Nickname: user.Nickname,
	}, nil
}

// リフレッシュトークンを新しいアクセストークンに交換
func (u *AuthUsecase) Refresh(ctx context.Context, in RefreshInput) (AccessTokenOutput, error) {
	if in.Refresh == "" {
		return AccessTokenOutput{}, apperr.Validation("refresh is required")
	}

	userID, err := u.parseRefresh(in.Refresh)
	if err != nil {
		return AccessTokenOutput{}, apperr.Authentication("invalid refresh token")
	}

	// 発行後に消えたユーザーのトークンは無効
	if _, err := u.userRepo.FindByID(ctx, userID); err != nil {
		return AccessTokenOutput{}, apperr.Authentication("invalid refresh token")
	}

	access, err := u.signToken(userID, "access", u.clock.Now(), u.cfg.AccessTokenTTL)
	if err != nil {
		return AccessTokenOutput{}, err
	}

	return AccessTokenOutput{Access: access}, nil
}

func (u *AuthUsecase) signToken(userID int64, typ string, now time.Time, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(userID, 10),
		"typ": typ,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	if typ == "refresh" {
		claims["jti"] = uuid.NewString()
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(u.cfg.JWTSecret))
}

func (u *AuthUsecase) parseRefresh(raw string) (int64, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(u.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}

	// accessトークンをrefreshとして使わせない
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return 0, errors.New("not a refresh token")
	}

	sub, _ := claims["sub"].(string)
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || userID <= 0 {
		return 0, errors.New("invalid sub")
	}

	return userID, nil
}
