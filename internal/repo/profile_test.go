package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-approval/internal/domain"
	"github.com/pkordes/travel-approval/internal/repo"
	"github.com/pkordes/travel-approval/testutil"
)

// Every ProfileRepo backend must pass the same behaviour tests. The memory
// store always runs; Postgres and Redis need TEST_DATABASE_URL / TEST_REDIS_URL.

func newPGRepo(t *testing.T) repo.ProfileRepo {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return repo.NewProfileRepo(tx)
}

func newRedisRepo(t *testing.T) repo.ProfileRepo {
	t.Helper()
	client := testutil.NewRedis(t)

	key := "test_profiles_" + uuid.NewString()
	t.Cleanup(func() {
		_ = client.Del(context.Background(), key).Err()
	})

	return repo.NewRedisProfileRepo(client, key)
}

func newMemoryRepo(t *testing.T) repo.ProfileRepo {
	t.Helper()
	return repo.NewMemoryProfileRepo()
}

var backends = map[string]func(t *testing.T) repo.ProfileRepo{
	"memory":   newMemoryRepo,
	"postgres": newPGRepo,
	"redis":    newRedisRepo,
}

// profileFixture returns a profile for university saved at the given minute
// past a fixed base time. Whole seconds survive a timestamptz round trip.
func profileFixture(university string, minute int) domain.TravelProfile {
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	return domain.TravelProfile{
		ID:          uuid.New(),
		University:  university,
		LastUpdated: base.Add(time.Duration(minute) * time.Minute),
		Data: domain.TripConfiguration{
			Name:           "Ramkumar",
			University:     university,
			TripStartDate:  "2024-06-10",
			HotelDailyCost: "2500",
			EarlyCheckIn:   true,
		},
	}
}

func TestProfileRepo_SaveAndGet(t *testing.T) {
	for name, newRepo := range backends {
		t.Run(name, func(t *testing.T) {
			r := newRepo(t)
			ctx := context.Background()

			in := profileFixture("RV University", 0)
			saved, err := r.Save(ctx, in)
			require.NoError(t, err)
			assert.Equal(t, in.ID, saved.ID)

			got, err := r.GetByID(ctx, in.ID)
			require.NoError(t, err)
			assert.Equal(t, in.University, got.University)
			assert.True(t, got.LastUpdated.Equal(in.LastUpdated), "LastUpdated mismatch")
			assert.Equal(t, in.Data, got.Data)
		})
	}
}

func TestProfileRepo_GetByID_NotFound(t *testing.T) {
	for name, newRepo := range backends {
		t.Run(name, func(t *testing.T) {
			r := newRepo(t)

			_, err := r.GetByID(context.Background(), uuid.New())
			assert.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
}

func TestProfileRepo_Save_ReplacesSameUniversity(t *testing.T) {
	for name, newRepo := range backends {
		t.Run(name, func(t *testing.T) {
			r := newRepo(t)
			ctx := context.Background()

			first := profileFixture("Alliance University", 0)
			_, err := r.Save(ctx, first)
			require.NoError(t, err)

			second := profileFixture("Alliance University", 5)
			second.Data.HotelDailyCost = "3000"
			_, err = r.Save(ctx, second)
			require.NoError(t, err)

			list, err := r.List(ctx)
			require.NoError(t, err)
			require.Len(t, list, 1)
			assert.Equal(t, second.ID, list[0].ID)
			assert.Equal(t, "3000", list[0].Data.HotelDailyCost)

			_, err = r.GetByID(ctx, first.ID)
			assert.ErrorIs(t, err, domain.ErrNotFound, "replaced profile ID must no longer resolve")
		})
	}
}

func TestProfileRepo_List_NewestFirst(t *testing.T) {
	for name, newRepo := range backends {
		t.Run(name, func(t *testing.T) {
			r := newRepo(t)
			ctx := context.Background()

			empty, err := r.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, empty)

			for i, u := range []string{"RV University", "Jain University", "Christ University"} {
				_, err := r.Save(ctx, profileFixture(u, i))
				require.NoError(t, err)
			}

			list, err := r.List(ctx)
			require.NoError(t, err)
			require.Len(t, list, 3)
			assert.Equal(t, "Christ University", list[0].University)
			assert.Equal(t, "Jain University", list[1].University)
			assert.Equal(t, "RV University", list[2].University)
		})
	}
}

func TestProfileRepo_Delete(t *testing.T) {
	for name, newRepo := range backends {
		t.Run(name, func(t *testing.T) {
			r := newRepo(t)
			ctx := context.Background()

			keep := profileFixture("RV University", 0)
			gone := profileFixture("Jain University", 1)
			_, err := r.Save(ctx, keep)
			require.NoError(t, err)
			_, err = r.Save(ctx, gone)
			require.NoError(t, err)

			require.NoError(t, r.Delete(ctx, gone.ID))

			list, err := r.List(ctx)
			require.NoError(t, err)
			require.Len(t, list, 1)
			assert.Equal(t, keep.ID, list[0].ID)

			err = r.Delete(ctx, gone.ID)
			assert.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
}

func TestMemoryProfileRepo_ListReturnsCopy(t *testing.T) {
	r := repo.NewMemoryProfileRepo()
	ctx := context.Background()

	_, err := r.Save(ctx, profileFixture("RV University", 0))
	require.NoError(t, err)

	list, err := r.List(ctx)
	require.NoError(t, err)
	list[0].University = "mutated"

	again, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "RV University", again[0].University)
}
