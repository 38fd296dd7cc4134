package service

import (
	"context"
	"fmt"

	"github.com/shenikar/spot_tracker/internal/models"
	"github.com/shenikar/spot_tracker/internal/spotlist"
	"github.com/shenikar/spot_tracker/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=spot.go -destination=mocks/mock_spot.go -package=mocks

// SpotRepository определяет контракт хранилища спотов
type SpotRepository interface {
	Create(ctx context.Context, spot *models.Spot) error
	GetByID(ctx context.Context, id int64) (*models.Spot, error)
	Update(ctx context.Context, spot *models.Spot) error
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) (int64, error)
	// List возвращает все споты, отсортированные по created_at по убыванию
	List(ctx context.Context) ([]*models.Spot, error)
}

// SpotCache определяет контракт кэша спотов. Промах - (nil, nil).
type SpotCache interface {
	GetSpotFromCache(ctx context.Context, id int64) (*models.Spot, error)
	SetSpotCache(ctx context.Context, spot *models.Spot) error
	GetListFromCache(ctx context.Context) ([]*models.Spot, error)
	SetListCache(ctx context.Context, spots []*models.Spot) error
	// InvalidateSpotCache сбрасывает запись спота и кэш списка
	InvalidateSpotCache(ctx context.Context, id int64) error
	InvalidateListCache(ctx context.Context) error
	InvalidateAll(ctx context.Context) error
}

// SpotService определяет контракт бизнес-логики управления спотами
type SpotService interface {
	CreateSpot(ctx context.Context, spot *models.Spot) error
	GetSpot(ctx context.Context, id int64) (*models.Spot, error)
	UpdateSpot(ctx context.Context, spot *models.Spot) error
	DeleteSpot(ctx context.Context, id int64) error
	ClearSpots(ctx context.Context) (int64, error)
	ListSpots(ctx context.Context, filter spotlist.Filter) ([]*models.Spot, error)
	GetStats(ctx context.Context) (*models.SpotStats, error)
}

type spotService struct {
	repo      SpotRepository
	cache     SpotCache
	publisher webhook.WebhookPublisher
	logger    *logrus.Logger
}

// NewSpotService создает сервис. cache и publisher могут быть nil.
func NewSpotService(repo SpotRepository, cache SpotCache, publisher webhook.WebhookPublisher, logger *logrus.Logger) SpotService {
	return &spotService{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateSpot создает спот
func (s *spotService) CreateSpot(ctx context.Context, spot *models.Spot) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "spot",
		"method":  "CreateSpot",
		"name":    spot.Name,
	})
	log.Info("Attempting to create a new spot")

	if !spot.HasRequiredFields() {
		log.Warn("Spot is missing name or location")
		return fmt.Errorf("service: could not create spot: %w", models.ErrMissingRequiredFields)
	}

	spot.Normalize()
	if err := s.repo.Create(ctx, spot); err != nil {
		log.WithError(err).Error("Failed to create spot in repository")
		return fmt.Errorf("service: could not create spot: %w", err)
	}

	log.WithField("spot_id", spot.ID).Info("Spot created successfully")
	s.invalidateList(ctx, log)
	s.publish(ctx, log, webhook.NewSpotEvent(webhook.EventSpotCreated, spot.ID, spot))
	return nil
}

// GetSpot получает спот по ID, сначала из кэша
func (s *spotService) GetSpot(ctx context.Context, id int64) (*models.Spot, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "spot",
		"method":  "GetSpot",
		"spot_id": id,
	})
	log.Debug("Fetching spot by ID")

	if s.cache != nil {
		cached, err := s.cache.GetSpotFromCache(ctx, id)
		if err != nil {
			log.WithError(err).Warn("Failed to read spot from cache")
		} else if cached != nil {
			log.Debug("Spot served from cache")
			return cached, nil
		}
	}

	spot, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get spot in repository")
		return nil, fmt.Errorf("service: could not get spot: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetSpotCache(ctx, spot); err != nil {
			log.WithError(err).Warn("Failed to write spot to cache")
		}
	}
	return spot, nil
}

// UpdateSpot перезаписывает редактируемые поля существующего спота.
// id и created_at сохраняются, результат записывается обратно в spot.
func (s *spotService) UpdateSpot(ctx context.Context, spot *models.Spot) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "spot",
		"method":  "UpdateSpot",
		"spot_id": spot.ID,
	})
	log.Info("Attempting to update spot")

	if !spot.HasRequiredFields() {
		log.Warn("Spot is missing name or location")
		return fmt.Errorf("service: could not update spot: %w", models.ErrMissingRequiredFields)
	}

	existing, err := s.repo.GetByID(ctx, spot.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent spot")
		return fmt.Errorf("service: spot with id %d not found for update: %w", spot.ID, err)
	}

	existing.Name = spot.Name
	existing.Location = spot.Location
	existing.Tier = spot.Tier
	existing.Status = spot.Status
	existing.ExploreType = spot.ExploreType
	existing.Security = spot.Security
	existing.Squatters = spot.Squatters
	existing.Rating = spot.Rating
	existing.Again = spot.Again
	existing.Notes = spot.Notes
	existing.Normalize()

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update spot in repository")
		return fmt.Errorf("service: could not update spot: %w", err)
	}

	*spot = *existing
	log.Info("Spot updated successfully")
	s.invalidateSpot(ctx, log, spot.ID)
	s.publish(ctx, log, webhook.NewSpotEvent(webhook.EventSpotUpdated, spot.ID, spot))
	return nil
}

// DeleteSpot удаляет спот
func (s *spotService) DeleteSpot(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "spot",
		"method":  "DeleteSpot",
		"spot_id": id,
	})
	log.Info("Attempting to delete spot")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete spot in repository")
		return fmt.Errorf("service: could not delete spot: %w", err)
	}

	log.Info("Spot deleted successfully")
	s.invalidateSpot(ctx, log, id)
	s.publish(ctx, log, webhook.NewSpotEvent(webhook.EventSpotDeleted, id, nil))
	return nil
}

// ClearSpots удаляет всю коллекцию и возвращает количество удаленных спотов
func (s *spotService) ClearSpots(ctx context.Context) (int64, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "spot",
		"method":  "ClearSpots",
	})
	log.Warn("Attempting to clear all spots")

	deleted, err := s.repo.DeleteAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to clear spots in repository")
		return 0, fmt.Errorf("service: could not clear spots: %w", err)
	}

	log.WithField("deleted", deleted).Info("Spots cleared")
	if s.cache != nil {
		if err := s.cache.InvalidateAll(ctx); err != nil {
			log.WithError(err).Warn("Failed to invalidate spot cache")
		}
	}
	event := webhook.NewSpotEvent(webhook.EventSpotsCleared, 0, nil)
	event.Deleted = deleted
	s.publish(ctx, log, event)
	return deleted, nil
}

// ListSpots возвращает отфильтрованный список, новые сверху
func (s *spotService) ListSpots(ctx context.Context, filter spotlist.Filter) ([]*models.Spot, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "spot",
		"method":       "ListSpots",
		"search":       filter.Search,
		"status":       filter.Status,
		"explore_type": filter.ExploreType,
	})
	log.Debug("Listing spots")

	spots, err := s.allSpots(ctx, log)
	if err != nil {
		return nil, err
	}

	filtered := spotlist.Apply(spots, filter)
	log.WithField("count", len(filtered)).Debug("Spots listed successfully")
	return filtered, nil
}

// GetStats возвращает сводку по всей коллекции
func (s *spotService) GetStats(ctx context.Context) (*models.SpotStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "spot",
		"method":  "GetStats",
	})

	spots, err := s.allSpots(ctx, log)
	if err != nil {
		return nil, err
	}
	return models.ComputeStats(spots), nil
}

func (s *spotService) allSpots(ctx context.Context, log *logrus.Entry) ([]*models.Spot, error) {
	if s.cache != nil {
		cached, err := s.cache.GetListFromCache(ctx)
		if err != nil {
			log.WithError(err).Warn("Failed to read spot list from cache")
		} else if cached != nil {
			return cached, nil
		}
	}

	spots, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list spots from repository")
		return nil, fmt.Errorf("service: could not list spots: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetListCache(ctx, spots); err != nil {
			log.WithError(err).Warn("Failed to write spot list to cache")
		}
	}
	return spots, nil
}

func (s *spotService) invalidateSpot(ctx context.Context, log *logrus.Entry, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateSpotCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate spot cache")
	}
}

func (s *spotService) invalidateList(ctx context.Context, log *logrus.Entry) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateListCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate spot list cache")
	}
}

func (s *spotService) publish(ctx context.Context, log *logrus.Entry, event webhook.SpotEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).WithField("event_type", event.Type).Warn("Failed to publish webhook event")
	}
}
