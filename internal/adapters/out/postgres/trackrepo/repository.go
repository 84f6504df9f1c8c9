package trackrepo

import (
	"context"
	"errors"
	"time"

	"track/internal/core/domain/model/kernel"
	"track/internal/core/domain/model/track"
	"track/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTrackRepository implements TrackRepository using GORM.
type GormTrackRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTrackRepository creates a new GORM track repository.
// A nil tracker disables aggregate tracking, which is fine for read-side use.
func NewGormTrackRepository(db *gorm.DB, tracker aggregateTracker) *GormTrackRepository {
	return &GormTrackRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new track to the database. Tracks created through the domain
// factories have no identifier yet, so one is assigned here before insert.
func (r *GormTrackRepository) Add(ctx context.Context, aggregate *track.Track) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if aggregate.ID().Validate() != nil {
		if err := aggregate.AssignID(kernel.NewUUID()); err != nil {
			return err
		}
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.trackAggregate(aggregate)
	return nil
}

// Update saves an existing track to the database. All columns are written so
// that fields cleared on the aggregate, such as the deletion flag after a
// restore, are persisted too.
func (r *GormTrackRepository) Update(ctx context.Context, aggregate *track.Track) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&TrackDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.trackAggregate(aggregate)
	return nil
}

// Get retrieves a track by ID. Soft-deleted tracks are not returned.
func (r *GormTrackRepository) Get(ctx context.Context, id kernel.UUID) (*track.Track, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TrackDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND is_deleted = false", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("track", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the track that belongs to the given order.
func (r *GormTrackRepository) GetByOrderID(ctx context.Context, orderID string) (*track.Track, error) {
	if orderID == "" {
		return nil, errs.NewValueIsRequiredError("orderID")
	}

	var dto TrackDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND is_deleted = false", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("track", orderID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsByOrderID reports whether a track already exists for the given order.
func (r *GormTrackRepository) ExistsByOrderID(ctx context.Context, orderID string) (bool, error) {
	if orderID == "" {
		return false, errs.NewValueIsRequiredError("orderID")
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&TrackDTO{}).
		Where("order_id = ? AND is_deleted = false", orderID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetAllHubInProgressPastEstimate retrieves all tracks still in the hub
// delivery stage whose estimated delivery time lies before the given moment.
func (r *GormTrackRepository) GetAllHubInProgressPastEstimate(
	ctx context.Context, before time.Time,
) ([]*track.Track, error) {
	var dtos []TrackDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND is_deleted = false", track.StatusHubInProgress.String()).
		Where("estimated_delivery_time IS NOT NULL AND estimated_delivery_time < ?", before).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	tracks := make([]*track.Track, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, aggregate)
	}

	return tracks, nil
}

func (r *GormTrackRepository) trackAggregate(aggregate *track.Track) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}
