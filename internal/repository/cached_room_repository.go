package repository

import (
	"context"
	"encoding/json"
	"time"

	"quizroom/internal/cache"
	"quizroom/internal/model"
)

const (
	roomKeyPrefix = "room:code:"
	roomCacheTTL  = 30 * time.Second
)

// cachedRoomRepository decorates a RoomRepository with a Redis read cache for
// read-only views. Every write invalidates the cached document, but an
// unlocked reader can still re-populate the key with a pre-commit snapshot
// right after the invalidation, so a cached copy is never trustworthy as the
// base of a write. FindByCodeForUpdate therefore bypasses the cache and reads
// the committed row.
type cachedRoomRepository struct {
	inner RoomRepository
	cache *cache.Client
}

// NewCachedRoomRepository wraps repo with a short-lived Redis read cache.
func NewCachedRoomRepository(repo RoomRepository, cacheClient *cache.Client) RoomRepository {
	return &cachedRoomRepository{inner: repo, cache: cacheClient}
}

// roomEnvelope carries the row id alongside the document. Room hides its id
// from API JSON, but a cached copy must keep it or a later Save would insert
// a second row instead of updating.
type roomEnvelope struct {
	ID   uint        `json:"id"`
	Room *model.Room `json:"room"`
}

func (r *cachedRoomRepository) Create(ctx context.Context, room *model.Room) error {
	if err := r.inner.Create(ctx, room); err != nil {
		return err
	}
	// invalidation is best-effort: when Redis is down, reads miss too, so a
	// failed delete cannot leave a stale hit behind
	_ = r.cache.Delete(ctx, roomKeyPrefix+room.Code)
	return nil
}

func (r *cachedRoomRepository) FindByCode(ctx context.Context, code string) (*model.Room, error) {
	key := roomKeyPrefix + code
	if raw, _ := r.cache.Get(ctx, key); raw != nil {
		var env roomEnvelope
		if err := json.Unmarshal(raw, &env); err == nil && env.Room != nil {
			env.Room.ID = env.ID
			return env.Room, nil
		}
		// corrupt entry, fall through to storage
	}

	room, err := r.inner.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(roomEnvelope{ID: room.ID, Room: room}); err == nil {
		_ = r.cache.Set(ctx, key, raw, roomCacheTTL)
	}
	return room, nil
}

func (r *cachedRoomRepository) FindByCodeForUpdate(ctx context.Context, code string) (*model.Room, error) {
	return r.inner.FindByCodeForUpdate(ctx, code)
}

func (r *cachedRoomRepository) Save(ctx context.Context, room *model.Room) error {
	if err := r.inner.Save(ctx, room); err != nil {
		return err
	}
	_ = r.cache.Delete(ctx, roomKeyPrefix+room.Code)
	return nil
}

func (r *cachedRoomRepository) DeleteByCode(ctx context.Context, code string) error {
	if err := r.inner.DeleteByCode(ctx, code); err != nil {
		return err
	}
	_ = r.cache.Delete(ctx, roomKeyPrefix+code)
	return nil
}
