package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"app/internal/apperr"
	"app/internal/config"
	"app/internal/domain/model"
	repo "app/internal/repository"
)

// =====================
// Mock: UserRepository
// =====================

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByNickname(ctx context.Context, nickname string) (model.User, error) {
	args := m.Called(ctx, nickname)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

// =====================
// Helper
// =====================

func newAuthUC(userRepo *MockUserRepository) *AuthUsecase {
	cfg := config.Config{
		JWTSecret:       "test-secret",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 14 * 24 * time.Hour,
	}
	// expの検証はjwt側が実時間で行うのでClockも実時間にする
	return NewAuthUsecase(
		cfg,
		userRepo,
		NewBcryptPasswordHasher(4),
		NewBcryptPasswordVerifier(),
		&RealClock{},
	)
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	h, err := NewBcryptPasswordHasher(4).Hash(plain)
	if err != nil {
		t.Fatalf("bcrypt failed: %v", err)
	}
	return h
}

// =====================
// Register
// =====================

func TestAuthUsecase_Register_Success(t *testing.T) {
	ctx := context.Background()

	userRepo := new(MockUserRepository)
	userRepo.On("FindByEmail", ctx, "a@b.com").Return(model.User{}, repo.ErrNotFound)
	userRepo.On("FindByNickname", ctx, "gamer1").Return(model.User{}, repo.ErrNotFound)
	userRepo.On("Create", ctx, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) {
			u := args.Get(1).(*model.User)
			u.ID = 42
		}).
		Return(nil)

	uc := newAuthUC(userRepo)
	out, err := uc.Register(ctx, RegisterInput{
		Email:    "a@b.com",
		Password: "x",
		Nickname: "gamer1",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(42), out.ID)
	assert.Equal(t, "a@b.com", out.Email)
	if assert.NotNil(t, out.Nickname) {
		assert.Equal(t, "gamer1", *out.Nickname)
	}
	userRepo.AssertExpectations(t)
}

// 大文字混じりでも同じemail扱いになるか
func TestAuthUsecase_Register_DuplicateEmail_CaseInsensitive(t *testing.T) {
	ctx := context.Background()

	userRepo := new(MockUserRepository)
	//小文字化した上で照合される
	userRepo.On("FindByEmail", ctx, "a@b.com").Return(model.User{ID: 1, Email: "a@b.com"}, nil)

	uc := newAuthUC(userRepo)
	_, err := uc.Register(ctx, RegisterInput{
		Email:    "A@B.com",
		Password: "x",
	})

	e, ok := apperr.As(err)
	assert.True(t, ok)
	assert.Equal(t, 400, e.Status)
	assert.Equal(t, "email already registered", e.Detail)
}

func TestAuthUsecase_Register_DuplicateNickname(t *testing.T) {
	ctx := context.Background()

	userRepo := new(MockUserRepository)
	userRepo.On("FindByEmail", ctx, "b@b.com").Return(model.User{}, repo.ErrNotFound)
	userRepo.On("FindByNickname", ctx, "taken").Return(model.User{ID: 2}, nil)

	uc := newAuthUC(userRepo)
	_, err := uc.Register(ctx, RegisterInput{
		Email:    "b@b.com",
		Password: "x",
		Nickname: "taken",
	})

	e, ok := apperr.As(err)
	assert.True(t, ok)
	assert.Equal(t, 400, e.Status)
	assert.Equal(t, "nickname already taken", e.Detail)
}

func TestAuthUsecase_Register_InvalidInput(t *testing.T) {
	ctx := context.Background()
	uc := newAuthUC(new(MockUserRepository))

	cases := []struct {
		name   string
		in     RegisterInput
		detail string
	}{
		{"emailなし", RegisterInput{Password: "x"}, "email is required"},
		{"email形式不正", RegisterInput{Email: "not-an-email", Password: "x"}, "invalid email format"},
		{"passwordなし", RegisterInput{Email: "a@b.com"}, "password is required"},
		{"birth_date形式不正", RegisterInput{Email: "a@b.com", Password: "x", BirthDate: "01-02-2000"}, "birth_date must be YYYY-MM-DD"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Register(ctx, tc.in)
			e, ok := apperr.As(err)
			assert.True(t, ok)
			assert.Equal(t, 400, e.Status)
			assert.Equal(t, tc.detail, e.Detail)
		})
	}
}

// =====================
// Login
// =====================

func TestAuthUsecase_Login_Success(t *testing.T) {
	ctx := context.Background()
	nickname := "gamer1"

	userRepo := new(MockUserRepository)
	userRepo.On("FindByEmail", ctx, "a@b.com").Return(model.User{
		ID:           1,
		Email:        "a@b.com",
		Nickname:     &nickname,
		PasswordHash: mustHash(t, "correct-password"),
	}, nil)

	uc := newAuthUC(userRepo)
	out, err := uc.Login(ctx, LoginInput{Email: "a@b.com", Password: "correct-password"})

	assert.NoError(t, err)
	assert.NotEmpty(t, out.Access)
	assert.NotEmpty(t, out.Refresh)
	if assert.NotNil(t, out.Nickname) {
		assert.Equal(t, "gamer1", *out.Nickname)
	}
}

// アカウント無しとパスワード違いでメッセージが分かれるか
func TestAuthUsecase_Login_DistinguishesCauses(t *testing.T) {
	ctx := context.Background()

	userRepo := new(MockUserRepository)
	userRepo.On("FindByEmail", ctx, "missing@b.com").Return(model.User{}, repo.ErrNotFound)
	userRepo.On("FindByEmail", ctx, "a@b.com").Return(model.User{
		ID:           1,
		Email:        "a@b.com",
		PasswordHash: mustHash(t, "correct-password"),
	}, nil)

	uc := newAuthUC(userRepo)

	_, err := uc.Login(ctx, LoginInput{Email: "missing@b.com", Password: "x"})
	e, ok := apperr.As(err)
	assert.True(t, ok)
	assert.Equal(t, 401, e.Status)
	assert.Equal(t, "no active account with the given credentials", e.Detail)

	_, err = uc.Login(ctx, LoginInput{Email: "a@b.com", Password: "wrong"})
	e, ok = apperr.As(err)
	assert.True(t, ok)
	assert.Equal(t, 401, e.Status)
	assert.Equal(t, "incorrect password", e.Detail)
}

// =====================
// Refresh
// =====================

func TestAuthUsecase_Refresh_Success(t *testing.T) {
	ctx := context.Background()

	userRepo := new(MockUserRepository)
	userRepo.On("FindByEmail", ctx, "a@b.com").Return(model.User{
		ID:           7,
		Email:        "a@b.com",
		PasswordHash: mustHash(t, "pw"),
	}, nil)
	userRepo.On("FindByID", ctx, int64(7)).Return(model.User{ID: 7, Email: "a@b.com"}, nil)

	uc := newAuthUC(userRepo)
	pair, err := uc.Login(ctx, LoginInput{Email: "a@b.com", Password: "pw"})
	assert.NoError(t, err)

	out, err := uc.Refresh(ctx, RefreshInput{Refresh: pair.Refresh})
	assert.NoError(t, err)
	assert.NotEmpty(t, out.Access)
}

// accessトークンをrefreshとして渡したら401
func TestAuthUsecase_Refresh_RejectsAccessToken(t *testing.T) {
	ctx := context.Background()

	userRepo := new(MockUserRepository)
	userRepo.On("FindByEmail", ctx, "a@b.com").Return(model.User{
		ID:           7,
		Email:        "a@b.com",
		PasswordHash: mustHash(t, "pw"),
	}, nil)

	uc := newAuthUC(userRepo)
	pair, err := uc.Login(ctx, LoginInput{Email: "a@b.com", Password: "pw"})
	assert.NoError(t, err)

	_, err = uc.Refresh(ctx, RefreshInput{Refresh: pair.Access})
	e, ok := apperr.As(err)
	assert.True(t, ok)
	assert.Equal(t, 401, e.Status)
	assert.Equal(t, "invalid refresh token", e.Detail)
}
