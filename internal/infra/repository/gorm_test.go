package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"app/internal/domain/model"
)

// テスト用のインメモリDB。接続ごとにDBが分かれないようshared cacheで開く。
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("sqlite open failed: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Publisher{},
		&model.Genre{},
		&model.Game{},
		&model.LibraryEntry{},
		&model.Review{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	return db
}

// Publisher付きのゲームを1件作る
func seedGame(t *testing.T, db *gorm.DB, title string, price string) model.Game {
	t.Helper()

	pub := model.Publisher{Name: "Pub-" + title, Website: "https://example.com"}
	if err := db.Create(&pub).Error; err != nil {
		t.Fatalf("seed publisher failed: %v", err)
	}

	game := model.Game{
		Title:       title,
		Description: "seed",
		Price:       decimal.RequireFromString(price),
		ReleaseDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		PublisherID: pub.ID,
	}
	if err := db.Create(&game).Error; err != nil {
		t.Fatalf("seed game failed: %v", err)
	}
	return game
}

func seedUser(t *testing.T, db *gorm.DB, email string) model.User {
	t.Helper()

	user := model.User{Email: email, PasswordHash: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	return user
}
