package redisrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"imbewu-be/internal/entity"
	"imbewu-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RecentVerificationRepositoryImpl struct {
	client *redis.Client
}

func NewRecentVerificationRepository(client *redis.Client) contract.RecentVerificationRepository {
	return &RecentVerificationRepositoryImpl{
		client: client,
	}
}

func recentKey(userId uuid.UUID) string {
	return fmt.Sprintf("recent_verified:%s", userId)
}

func (r *RecentVerificationRepositoryImpl) Load(ctx context.Context, userId uuid.UUID) ([]entity.RecentVerificationEntry, error) {
	raw, err := r.client.Get(ctx, recentKey(userId)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []entity.RecentVerificationEntry{}, nil
		}
		return nil, err
	}

	var list []entity.RecentVerificationEntry
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		// Corrupt payloads are dropped rather than surfaced; the list is a
		// convenience cache, not a system of record.
		return []entity.RecentVerificationEntry{}, nil
	}
	return list, nil
}

func (r *RecentVerificationRepositoryImpl) Save(ctx context.Context, userId uuid.UUID, list []entity.RecentVerificationEntry) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, recentKey(userId), raw, 0).Err()
}
