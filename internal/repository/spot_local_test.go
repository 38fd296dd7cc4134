package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shenikar/spot_tracker/internal/models"
	"github.com/shenikar/spot_tracker/pkg/sqlite"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalRepo(t *testing.T) (*LocalSpotRepository, *logtest.Hook) {
	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "spots.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger, hook := logtest.NewNullLogger()
	repo := NewLocalSpotRepository(db, "spots_v3", logger).(*LocalSpotRepository)
	return repo, hook
}

func TestLocalSpotRepository_CRUD(t *testing.T) {
	repo, _ := newLocalRepo(t)
	ctx := context.Background()

	empty, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	spot := &models.Spot{Name: "Bunker", Location: "forest", Status: models.StatusToGo}
	require.NoError(t, repo.Create(ctx, spot))
	assert.NotZero(t, spot.ID)
	assert.False(t, spot.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, spot.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bunker", got.Name)

	got.Notes = "flooded"
	require.NoError(t, repo.Update(ctx, got))
	assert.Equal(t, spot.CreatedAt, got.CreatedAt)

	reloaded, err := repo.GetByID(ctx, spot.ID)
	require.NoError(t, err)
	assert.Equal(t, "flooded", reloaded.Notes)

	require.NoError(t, repo.Delete(ctx, spot.ID))
	_, err = repo.GetByID(ctx, spot.ID)
	assert.ErrorIs(t, err, models.ErrSpotNotFound)
}

func TestLocalSpotRepository_NotFound(t *testing.T) {
	repo, _ := newLocalRepo(t)
	ctx := context.Background()

	assert.ErrorIs(t, repo.Update(ctx, &models.Spot{ID: 42}), models.ErrSpotNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 42), models.ErrSpotNotFound)
}

func TestLocalSpotRepository_IDsAreUniqueWithinOneMillisecond(t *testing.T) {
	repo, _ := newLocalRepo(t)
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }
	ctx := context.Background()

	first := &models.Spot{Name: "a", Location: "a"}
	second := &models.Spot{Name: "b", Location: "b"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	assert.Equal(t, fixed.UnixMilli(), first.ID)
	assert.Equal(t, fixed.UnixMilli()+1, second.ID)

	// одинаковый created_at: выше спот с большим id
	spots, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, spots, 2)
	assert.Equal(t, second.ID, spots[0].ID)
}

func TestLocalSpotRepository_ListNewestFirst(t *testing.T) {
	repo, _ := newLocalRepo(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for i, name := range []string{"old", "new", "mid"} {
		offsets := []time.Duration{0, 2 * time.Hour, time.Hour}
		at := base.Add(offsets[i])
		repo.now = func() time.Time { return at }
		require.NoError(t, repo.Create(ctx, &models.Spot{Name: name, Location: "x"}))
	}

	spots, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, spots, 3)
	assert.Equal(t, "new", spots[0].Name)
	assert.Equal(t, "mid", spots[1].Name)
	assert.Equal(t, "old", spots[2].Name)
}

func TestLocalSpotRepository_DeleteAll(t *testing.T) {
	repo, _ := newLocalRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Spot{Name: "a", Location: "a"}))
	require.NoError(t, repo.Create(ctx, &models.Spot{Name: "b", Location: "b"}))

	deleted, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	spots, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, spots)

	deleted, err = repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestLocalSpotRepository_IgnoresOtherSlots(t *testing.T) {
	repo, hook := newLocalRepo(t)
	ctx := context.Background()

	_, err := repo.db.ExecContext(ctx, `INSERT INTO kv_slots (key, value) VALUES ('spots_v2', '[{"id":1,"name":"legacy"}]')`)
	require.NoError(t, err)

	spots, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, spots)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, []string{"spots_v2"}, entry.Data["ignored"])
}

func TestLocalSpotRepository_CorruptedSlot(t *testing.T) {
	repo, _ := newLocalRepo(t)
	ctx := context.Background()

	_, err := repo.db.ExecContext(ctx, `INSERT INTO kv_slots (key, value) VALUES ('spots_v3', 'not json')`)
	require.NoError(t, err)

	spots, err := repo.List(ctx)
	require.Error(t, err)
	assert.Nil(t, spots)
	assert.ErrorContains(t, err, "failed to decode slot")
}
