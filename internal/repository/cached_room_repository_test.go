package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"quizroom/internal/cache"
	"quizroom/internal/model"
)

// stubRoomStore is a single-room in-memory store that counts reads, so tests
// can tell a cache hit from a pass-through.
type stubRoomStore struct {
	room  *model.Room
	reads int
}

func (s *stubRoomStore) clone() *model.Room {
	out := *s.room
	out.Members = append([]model.Member(nil), s.room.Members...)
	return &out
}

func (s *stubRoomStore) Create(ctx context.Context, room *model.Room) error {
	s.room = room
	return nil
}

func (s *stubRoomStore) FindByCode(ctx context.Context, code string) (*model.Room, error) {
	s.reads++
	if s.room == nil || s.room.Code != code {
		return nil, gorm.ErrRecordNotFound
	}
	return s.clone(), nil
}

func (s *stubRoomStore) FindByCodeForUpdate(ctx context.Context, code string) (*model.Room, error) {
	return s.FindByCode(ctx, code)
}

func (s *stubRoomStore) Save(ctx context.Context, room *model.Room) error {
	s.room = room
	return nil
}

func (s *stubRoomStore) DeleteByCode(ctx context.Context, code string) error {
	s.room = nil
	return nil
}

func cachedRepoFixture(t *testing.T) (*stubRoomStore, RoomRepository) {
	t.Helper()
	mr := miniredis.RunT(t)
	inner := &stubRoomStore{room: &model.Room{
		ID:   7,
		Code: "AbC123",
		Name: "trivia night",
		Members: []model.Member{
			{ID: "2", Name: "Pat", Email: "pat@example.com"},
		},
	}}
	return inner, NewCachedRoomRepository(inner, cache.New(mr.Addr(), "", 0))
}

func TestCachedRoomRepository_SecondReadIsAHit(t *testing.T) {
	inner, repo := cachedRepoFixture(t)
	ctx := context.Background()

	first, err := repo.FindByCode(ctx, "AbC123")
	assert.NoError(t, err)
	assert.Equal(t, 1, inner.reads)

	second, err := repo.FindByCode(ctx, "AbC123")
	assert.NoError(t, err)
	assert.Equal(t, 1, inner.reads)
	assert.Equal(t, first.Name, second.Name)

	// the row id is hidden from API JSON but must survive the cache, or a
	// later Save would insert a second row
	assert.Equal(t, uint(7), second.ID)
}

func TestCachedRoomRepository_MissPassesThrough(t *testing.T) {
	inner, repo := cachedRepoFixture(t)

	_, err := repo.FindByCode(context.Background(), "nosuch")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Equal(t, 1, inner.reads)
}

func TestCachedRoomRepository_SaveInvalidates(t *testing.T) {
	inner, repo := cachedRepoFixture(t)
	ctx := context.Background()

	cached, err := repo.FindByCode(ctx, "AbC123")
	assert.NoError(t, err)

	cached.Members[0].Points = 100
	assert.NoError(t, repo.Save(ctx, cached))

	fresh, err := repo.FindByCode(ctx, "AbC123")
	assert.NoError(t, err)
	assert.Equal(t, 2, inner.reads)
	assert.Equal(t, 100, fresh.Members[0].Points)
}

func TestCachedRoomRepository_DeleteInvalidates(t *testing.T) {
	inner, repo := cachedRepoFixture(t)
	ctx := context.Background()

	_, err := repo.FindByCode(ctx, "AbC123")
	assert.NoError(t, err)

	assert.NoError(t, repo.DeleteByCode(ctx, "AbC123"))

	_, err = repo.FindByCode(ctx, "AbC123")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Equal(t, 2, inner.reads)
}

func TestCachedRoomRepository_ForUpdateIgnoresStaleCache(t *testing.T) {
	inner, repo := cachedRepoFixture(t)
	ctx := context.Background()

	// cache the current roster, then commit points directly to storage; this
	// is the state an unlocked reader leaves behind when its Set lands after
	// a writer's invalidation
	_, err := repo.FindByCode(ctx, "AbC123")
	assert.NoError(t, err)
	inner.room.Members[0].Points = 100

	stale, err := repo.FindByCode(ctx, "AbC123")
	assert.NoError(t, err)
	assert.Equal(t, 0, stale.Members[0].Points)

	// the write path must read the committed roster, never the cached copy
	fresh, err := repo.FindByCodeForUpdate(ctx, "AbC123")
	assert.NoError(t, err)
	assert.Equal(t, 100, fresh.Members[0].Points)
}
