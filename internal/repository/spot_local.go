package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/shenikar/spot_tracker/internal/models"
	"github.com/shenikar/spot_tracker/internal/service"
	"github.com/sirupsen/logrus"
)

// LocalSpotRepository хранит весь список спотов одним JSON-значением
// в слоте kv_slots. Каждая запись перезаписывает слот целиком.
type LocalSpotRepository struct {
	db      *sql.DB
	slotKey string
	logger  *logrus.Logger

	mu       sync.Mutex
	lastID   int64
	scanOnce sync.Once
	now      func() time.Time
}

func NewLocalSpotRepository(db *sql.DB, slotKey string, logger *logrus.Logger) service.SpotRepository {
	return &LocalSpotRepository{
		db:      db,
		slotKey: slotKey,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Create присваивает споту id и created_at и дописывает его в слот
func (r *LocalSpotRepository) Create(ctx context.Context, spot *models.Spot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	spots, err := r.load(ctx)
	if err != nil {
		return fmt.Errorf("failed to create spot: %w", err)
	}

	now := r.now()
	spot.ID = r.nextID(now, spots)
	spot.CreatedAt = now
	spot.UpdatedAt = now

	stored := *spot
	spots = append([]*models.Spot{&stored}, spots...)
	if err := r.save(ctx, spots); err != nil {
		return fmt.Errorf("failed to create spot: %w", err)
	}
	return nil
}

// GetByID возвращает спот по id
func (r *LocalSpotRepository) GetByID(ctx context.Context, id int64) (*models.Spot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	spots, err := r.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get spot by id: %w", err)
	}

	idx := indexOf(spots, id)
	if idx < 0 {
		return nil, fmt.Errorf("spot with id %d: %w", id, models.ErrSpotNotFound)
	}
	return spots[idx], nil
}

// Update заменяет спот с тем же id, сохраняя created_at
func (r *LocalSpotRepository) Update(ctx context.Context, spot *models.Spot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	spots, err := r.load(ctx)
	if err != nil {
		return fmt.Errorf("failed to update spot: %w", err)
	}

	idx := indexOf(spots, spot.ID)
	if idx < 0 {
		return fmt.Errorf("spot with id %d not found for update: %w", spot.ID, models.ErrSpotNotFound)
	}

	spot.CreatedAt = spots[idx].CreatedAt
	spot.UpdatedAt = r.now()
	stored := *spot
	spots[idx] = &stored

	if err := r.save(ctx, spots); err != nil {
		return fmt.Errorf("failed to update spot: %w", err)
	}
	return nil
}

// Delete удаляет спот из слота
func (r *LocalSpotRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	spots, err := r.load(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete spot: %w", err)
	}

	idx := indexOf(spots, id)
	if idx < 0 {
		return fmt.Errorf("spot with id %d not found for delete: %w", id, models.ErrSpotNotFound)
	}

	spots = slices.Delete(spots, idx, idx+1)
	if err := r.save(ctx, spots); err != nil {
		return fmt.Errorf("failed to delete spot: %w", err)
	}
	return nil
}

// DeleteAll записывает в слот пустой список и возвращает число удаленных спотов
func (r *LocalSpotRepository) DeleteAll(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	spots, err := r.load(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear spots: %w", err)
	}

	if err := r.save(ctx, []*models.Spot{}); err != nil {
		return 0, fmt.Errorf("failed to clear spots: %w", err)
	}
	return int64(len(spots)), nil
}

// List возвращает все споты, новые сверху
func (r *LocalSpotRepository) List(ctx context.Context) ([]*models.Spot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	spots, err := r.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list spots: %w", err)
	}

	slices.SortStableFunc(spots, func(a, b *models.Spot) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		}
		return 0
	})
	return spots, nil
}

// load читает слот. Отсутствующий слот - пустой список.
func (r *LocalSpotRepository) load(ctx context.Context) ([]*models.Spot, error) {
	r.scanOnce.Do(func() { r.logForeignSlots(ctx) })

	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv_slots WHERE key = ?`, r.slotKey).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.Spot{}, nil
		}
		return nil, fmt.Errorf("failed to read slot %q: %w", r.slotKey, err)
	}

	spots := make([]*models.Spot, 0)
	if err := json.Unmarshal([]byte(raw), &spots); err != nil {
		return nil, fmt.Errorf("failed to decode slot %q: %w", r.slotKey, err)
	}
	return slices.DeleteFunc(spots, func(s *models.Spot) bool { return s == nil }), nil
}

func (r *LocalSpotRepository) save(ctx context.Context, spots []*models.Spot) error {
	raw, err := json.Marshal(spots)
	if err != nil {
		return fmt.Errorf("failed to encode slot %q: %w", r.slotKey, err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO kv_slots (key, value, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ','now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, r.slotKey, string(raw))
	if err != nil {
		return fmt.Errorf("failed to write slot %q: %w", r.slotKey, err)
	}
	return nil
}

// nextID - время в миллисекундах, строго больше уже выданных id
func (r *LocalSpotRepository) nextID(now time.Time, spots []*models.Spot) int64 {
	id := now.UnixMilli()
	for _, s := range spots {
		r.lastID = max(r.lastID, s.ID)
	}
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return id
}

// logForeignSlots сообщает о слотах других версий схемы. Их содержимое не переносится.
func (r *LocalSpotRepository) logForeignSlots(ctx context.Context) {
	rows, err := r.db.QueryContext(ctx, `SELECT key FROM kv_slots WHERE key <> ?`, r.slotKey)
	if err != nil {
		r.logger.WithError(err).Warn("Failed to scan local storage slots")
		return
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			r.logger.WithError(err).Warn("Failed to read local storage slot key")
			return
		}
		keys = append(keys, key)
	}
	if len(keys) > 0 {
		r.logger.WithFields(logrus.Fields{
			"slot":    r.slotKey,
			"ignored": keys,
		}).Info("Local storage has slots from other versions, they are ignored")
	}
}

func indexOf(spots []*models.Spot, id int64) int {
	return slices.IndexFunc(spots, func(s *models.Spot) bool { return s.ID == id })
}
