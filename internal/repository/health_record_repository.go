package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pulsewell/health-insights-api/internal/domain"
	"github.com/pulsewell/health-insights-api/pkg/pagination"
	"gorm.io/gorm"
)

// HealthRecordRepository reads and writes raw vitals and journal rows.
// The insights fetcher only uses the two ByRange readers.
type HealthRecordRepository interface {
	CreateVitalSign(ctx context.Context, vs *domain.VitalSign) error
	CreateJournalEntry(ctx context.Context, entry *domain.HealthJournalEntry) error
	ListVitalsByRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.VitalSign, error)
	ListJournalByRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.HealthJournalEntry, error)
	ListVitals(ctx context.Context, userID uuid.UUID, filter domain.RecordFilter) ([]domain.VitalSign, error)
	ListJournal(ctx context.Context, userID uuid.UUID, filter domain.RecordFilter) ([]domain.HealthJournalEntry, error)
}

type healthRecordRepository struct {
	db *gorm.DB
}

func NewHealthRecordRepository(db *gorm.DB) HealthRecordRepository {
	return &healthRecordRepository{db: db}
}

func (r *healthRecordRepository) CreateVitalSign(ctx context.Context, vs *domain.VitalSign) error {
	return r.db.WithContext(ctx).Create(vs).Error
}

func (r *healthRecordRepository) CreateJournalEntry(ctx context.Context, entry *domain.HealthJournalEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *healthRecordRepository) ListVitalsByRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.VitalSign, error) {
	var vitals []domain.VitalSign
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND recorded_at >= ? AND recorded_at < ?", userID, from, to).
		Order("recorded_at ASC").
		Find(&vitals).Error
	if err != nil {
		return nil, err
	}
	return vitals, nil
}

func (r *healthRecordRepository) ListJournalByRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.HealthJournalEntry, error) {
	var entries []domain.HealthJournalEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND entry_date >= ? AND entry_date < ?", userID, from, to).
		Order("entry_date ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *healthRecordRepository) ListVitals(ctx context.Context, userID uuid.UUID, filter domain.RecordFilter) ([]domain.VitalSign, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at DESC")

	if filter.From != nil {
		query = query.Where("recorded_at >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("recorded_at <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			query = query.Where(
				"(recorded_at < ?) OR (recorded_at = ? AND id < ?)",
				cursor.RecordedAt, cursor.RecordedAt, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var vitals []domain.VitalSign
	if err := query.Find(&vitals).Error; err != nil {
		return nil, err
	}
	return vitals, nil
}

func (r *healthRecordRepository) ListJournal(ctx context.Context, userID uuid.UUID, filter domain.RecordFilter) ([]domain.HealthJournalEntry, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("entry_date DESC")

	if filter.From != nil {
		query = query.Where("entry_date >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("entry_date <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			query = query.Where(
				"(entry_date < ?) OR (entry_date = ? AND id < ?)",
				cursor.RecordedAt, cursor.RecordedAt, cursor.ID,
			)
		}
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var entries []domain.HealthJournalEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
