package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pulsewell/health-insights-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InsightsCacheRepository persists the per-user serialized insights bundle.
type InsightsCacheRepository interface {
	// FindFresh returns the user's row if it has not expired as of now.
	FindFresh(ctx context.Context, userID uuid.UUID, now time.Time) (*domain.InsightsCacheRow, error)
	// Upsert atomically replaces the user's row. The unique index on
	// user_id guarantees at most one row per user with no transient
	// window where none exists.
	Upsert(ctx context.Context, row *domain.InsightsCacheRow) error
	// DeleteAllForUser removes the user's row(s), returning the count.
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type insightsCacheRepository struct {
	db *gorm.DB
}

func NewInsightsCacheRepository(db *gorm.DB) InsightsCacheRepository {
	return &insightsCacheRepository{db: db}
}

func (r *insightsCacheRepository) FindFresh(ctx context.Context, userID uuid.UUID, now time.Time) (*domain.InsightsCacheRow, error) {
	var row domain.InsightsCacheRow
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND expires_at > ?", userID, now).
		Order("generated_at DESC").
		First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *insightsCacheRepository) Upsert(ctx context.Context, row *domain.InsightsCacheRow) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"schema_version", "payload", "generated_at", "expires_at",
			}),
		}).
		Create(row).Error
}

func (r *insightsCacheRepository) DeleteAllForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&domain.InsightsCacheRow{})
	return result.RowsAffected, result.Error
}
