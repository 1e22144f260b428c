package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/photoshare/server/internal/logger"
	"github.com/redis/go-redis/v9"
)

const publicCountKey = "public_photo_count"

func ownerCountKey(ownerID uuid.UUID) string {
	return "user_photo_count:" + ownerID.String()
}

// PhotoCountCacheRepository caches gallery counts in redis so list pages do
// not recount on every request.
type PhotoCountCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewPhotoCountCacheRepository(client *redis.Client, exp time.Duration) *PhotoCountCacheRepository {
	return &PhotoCountCacheRepository{client: client, exp: exp}
}

// GetOwnerCount returns the cached photo count for the owner, or an error on
// a cache miss.
func (r *PhotoCountCacheRepository) GetOwnerCount(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	return r.get(ctx, ownerCountKey(ownerID))
}

// SetOwnerCount stores the owner's photo count with the repository TTL.
func (r *PhotoCountCacheRepository) SetOwnerCount(ctx context.Context, ownerID uuid.UUID, count int64) error {
	return r.set(ctx, ownerCountKey(ownerID), count)
}

// GetPublicCount returns the cached public photo count, or an error on a
// cache miss.
func (r *PhotoCountCacheRepository) GetPublicCount(ctx context.Context) (int64, error) {
	return r.get(ctx, publicCountKey)
}

// SetPublicCount stores the public photo count with the repository TTL.
func (r *PhotoCountCacheRepository) SetPublicCount(ctx context.Context, count int64) error {
	return r.set(ctx, publicCountKey, count)
}

// Invalidate drops the cached counts touched by a change to one of the
// owner's photos: the owner's own count and the public count.
func (r *PhotoCountCacheRepository) Invalidate(ctx context.Context, ownerID uuid.UUID) error {
	if err := r.client.Del(ctx, ownerCountKey(ownerID), publicCountKey).Err(); err != nil {
		logger.Log.Errorw("failed to invalidate counts", "owner_id", ownerID, "error", err)
		return err
	}
	return nil
}

func (r *PhotoCountCacheRepository) get(ctx context.Context, key string) (int64, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return 0, fmt.Errorf("count not cached for key %s", key)
	}
	if err != nil {
		logger.Log.Errorw("failed to get cached count", "key", key, "error", err)
		return 0, err
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid cached count for key %s: %w", key, err)
	}

	logger.Log.Infow("count cache hit", "key", key, "count", count)
	return count, nil
}

func (r *PhotoCountCacheRepository) set(ctx context.Context, key string, count int64) error {
	if err := r.client.Set(ctx, key, count, r.exp).Err(); err != nil {
		logger.Log.Errorw("failed to cache count", "key", key, "error", err)
		return err
	}
	return nil
}
