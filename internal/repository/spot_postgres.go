package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/spot_tracker/internal/models"
	"github.com/shenikar/spot_tracker/internal/service"
)

// Querier - минимальный набор операций с бд, который нужен репозиторию.
// Ему удовлетворяют и *pgxpool.Pool, и пул pgxmock.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const spotColumns = `id, name, location, tier, status, explore_type, security, squatters, rating, again, notes, created_at, updated_at`

type SpotRepository struct {
	db Querier
}

func NewSpotRepository(db Querier) service.SpotRepository {
	return &SpotRepository{
		db: db,
	}
}

// Create создает новую запись о споте в бд
func (r *SpotRepository) Create(ctx context.Context, spot *models.Spot) error {
	query := `
		INSERT INTO spots (name, location, tier, status, explore_type, security, squatters, rating, again, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		spot.Name,
		spot.Location,
		spot.Tier,
		spot.Status,
		spot.ExploreType,
		spot.Security,
		spot.Squatters,
		spot.Rating,
		spot.Again,
		spot.Notes,
	).Scan(&spot.ID, &spot.CreatedAt, &spot.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create spot: %w", err)
	}
	return nil
}

// GetByID возвращает спот по id
func (r *SpotRepository) GetByID(ctx context.Context, id int64) (*models.Spot, error) {
	query := `SELECT ` + spotColumns + ` FROM spots WHERE id = $1;`

	spot, err := scanSpot(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("spot with id %d: %w", id, models.ErrSpotNotFound)
		}
		return nil, fmt.Errorf("failed to get spot by id: %w", err)
	}
	return spot, nil
}

// Update перезаписывает редактируемые поля спота
func (r *SpotRepository) Update(ctx context.Context, spot *models.Spot) error {
	query := `
		UPDATE spots SET
			name = $1,
			location = $2,
			tier = $3,
			status = $4,
			explore_type = $5,
			security = $6,
			squatters = $7,
			rating = $8,
			again = $9,
			notes = $10,
			updated_at = NOW()
		WHERE id = $11
		RETURNING updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		spot.Name,
		spot.Location,
		spot.Tier,
		spot.Status,
		spot.ExploreType,
		spot.Security,
		spot.Squatters,
		spot.Rating,
		spot.Again,
		spot.Notes,
		spot.ID,
	).Scan(&spot.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("spot with id %d not found for update: %w", spot.ID, models.ErrSpotNotFound)
		}
		return fmt.Errorf("failed to update spot: %w", err)
	}
	return nil
}

// Delete удаляет спот
func (r *SpotRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM spots WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete spot: %w", err)
	}

	// RowsAffected() == 0 значит спота с таким id не существует
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("spot with id %d not found for delete: %w", id, models.ErrSpotNotFound)
	}
	return nil
}

// DeleteAll удаляет все споты и возвращает их количество
func (r *SpotRepository) DeleteAll(ctx context.Context) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM spots WHERE id > 0;`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear spots: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// List возвращает все споты, новые сверху
func (r *SpotRepository) List(ctx context.Context) ([]*models.Spot, error) {
	query := `SELECT ` + spotColumns + ` FROM spots ORDER BY created_at DESC, id DESC;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list spots: %w", err)
	}
	defer rows.Close()

	spots := make([]*models.Spot, 0)
	for rows.Next() {
		spot, err := scanSpot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan spot row: %w", err)
		}
		spots = append(spots, spot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return spots, nil
}

func scanSpot(row pgx.Row) (*models.Spot, error) {
	spot := &models.Spot{}
	err := row.Scan(
		&spot.ID,
		&spot.Name,
		&spot.Location,
		&spot.Tier,
		&spot.Status,
		&spot.ExploreType,
		&spot.Security,
		&spot.Squatters,
		&spot.Rating,
		&spot.Again,
		&spot.Notes,
		&spot.CreatedAt,
		&spot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return spot, nil
}
