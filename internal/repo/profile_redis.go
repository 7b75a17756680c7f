package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pkordes/travel-approval/internal/domain"
)

// DefaultRedisKey is the hash that holds all profiles, one field per university.
const DefaultRedisKey = "travel_approval_profiles"

// redisProfileRepo stores every profile as JSON in a single Redis hash keyed
// by university. HSET on the university field gives replace-on-save for free.
type redisProfileRepo struct {
	rdb redis.Cmdable
	key string
}

// NewRedisProfileRepo constructs a ProfileRepo over the given client.
// An empty key falls back to DefaultRedisKey.
func NewRedisProfileRepo(rdb redis.Cmdable, key string) ProfileRepo {
	if key == "" {
		key = DefaultRedisKey
	}
	return &redisProfileRepo{rdb: rdb, key: key}
}

// List returns all profiles, most recently saved first.
func (r *redisProfileRepo) List(ctx context.Context) ([]domain.TravelProfile, error) {
	profiles, err := r.all(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.redisProfileRepo.List: %w", err)
	}
	sort.SliceStable(profiles, func(i, j int) bool {
		if profiles[i].LastUpdated.Equal(profiles[j].LastUpdated) {
			return profiles[i].University < profiles[j].University
		}
		return profiles[i].LastUpdated.After(profiles[j].LastUpdated)
	})
	return profiles, nil
}

func (r *redisProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.TravelProfile, error) {
	profiles, err := r.all(ctx)
	if err != nil {
		return domain.TravelProfile{}, fmt.Errorf("repo.redisProfileRepo.GetByID: %w", err)
	}
	for _, p := range profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.TravelProfile{}, fmt.Errorf("repo.redisProfileRepo.GetByID: %w", domain.ErrNotFound)
}

func (r *redisProfileRepo) Save(ctx context.Context, p domain.TravelProfile) (domain.TravelProfile, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return domain.TravelProfile{}, fmt.Errorf("repo.redisProfileRepo.Save: marshal: %w", err)
	}
	if err := r.rdb.HSet(ctx, r.key, p.University, b).Err(); err != nil {
		return domain.TravelProfile{}, fmt.Errorf("repo.redisProfileRepo.Save: %w", err)
	}
	return p, nil
}

func (r *redisProfileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("repo.redisProfileRepo.Delete: %w", err)
	}
	n, err := r.rdb.HDel(ctx, r.key, p.University).Result()
	if err != nil {
		return fmt.Errorf("repo.redisProfileRepo.Delete: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("repo.redisProfileRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// all loads and decodes every entry in the hash.
func (r *redisProfileRepo) all(ctx context.Context) ([]domain.TravelProfile, error) {
	entries, err := r.rdb.HGetAll(ctx, r.key).Result()
	if err != nil {
		return nil, err
	}
	out := make([]domain.TravelProfile, 0, len(entries))
	for university, raw := range entries {
		var p domain.TravelProfile
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, fmt.Errorf("decode profile %q: %w", university, err)
		}
		out = append(out, p)
	}
	return out, nil
}
