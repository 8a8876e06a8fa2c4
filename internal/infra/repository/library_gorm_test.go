package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// 複合一意(user, game)により二重追加が1行に潰れるか
func TestLibraryGorm_Add_Idempotent(t *testing.T) {
	db := newTestDB(t)
	r := NewLibraryGormRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "lib@example.com")
	game := seedGame(t, db, "Lib Game", "29.99")

	created, err := r.Add(ctx, user.ID, game.ID)
	assert.NoError(t, err)
	assert.True(t, created)

	//2回目は何も起きない
	created, err = r.Add(ctx, user.ID, game.ID)
	assert.NoError(t, err)
	assert.False(t, created)

	games, err := r.ListGames(ctx, user.ID)
	assert.NoError(t, err)
	assert.Len(t, games, 1)
	assert.Equal(t, game.ID, games[0].ID)

	owns, err := r.Owns(ctx, user.ID, game.ID)
	assert.NoError(t, err)
	assert.True(t, owns)
}

// 削除は冪等で、他ユーザーの所有に影響しない
func TestLibraryGorm_Remove(t *testing.T) {
	db := newTestDB(t)
	r := NewLibraryGormRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")
	game := seedGame(t, db, "Shared Game", "10.00")

	_, err := r.Add(ctx, alice.ID, game.ID)
	assert.NoError(t, err)
	_, err = r.Add(ctx, bob.ID, game.ID)
	assert.NoError(t, err)

	assert.NoError(t, r.Remove(ctx, alice.ID, game.ID))
	//所有していない状態でもう一度
	assert.NoError(t, r.Remove(ctx, alice.ID, game.ID))

	owns, err := r.Owns(ctx, alice.ID, game.ID)
	assert.NoError(t, err)
	assert.False(t, owns)

	owns, err = r.Owns(ctx, bob.ID, game.ID)
	assert.NoError(t, err)
	assert.True(t, owns)
}
