package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pulsewell/health-insights-api/internal/domain"
	"github.com/pulsewell/health-insights-api/internal/repository"
	"github.com/pulsewell/health-insights-api/pkg/pagination"
)

// HealthRecordService handles raw record ingestion and listing. The
// analytics engine reads the same tables through HealthDataFetcher.
type HealthRecordService interface {
	CreateVitalSign(ctx context.Context, userID uuid.UUID, req *domain.CreateVitalSignRequest) (*domain.VitalSign, error)
	CreateJournalEntry(ctx context.Context, userID uuid.UUID, req *domain.CreateJournalEntryRequest) (*domain.HealthJournalEntry, error)
	ListVitals(ctx context.Context, userID uuid.UUID, filter domain.RecordFilter) (*domain.VitalSignListResponse, error)
	ListJournal(ctx context.Context, userID uuid.UUID, filter domain.RecordFilter) (*domain.JournalListResponse, error)
}

type healthRecordService struct {
	repo     repository.HealthRecordRepository
	userRepo repository.UserRepository
}

func NewHealthRecordService(repo repository.HealthRecordRepository, userRepo repository.UserRepository) HealthRecordService {
	return &healthRecordService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *healthRecordService) CreateVitalSign(ctx context.Context, userID uuid.UUID, req *domain.CreateVitalSignRequest) (*domain.VitalSign, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	if !req.HasReading() {
		return nil, domain.ErrInvalidInput
	}

	// A blood pressure reading must carry both values.
	if (req.SystolicBP == nil) != (req.DiastolicBP == nil) {
		return nil, domain.ErrInvalidInput
	}

	vs := &domain.VitalSign{
		UserID:      userID,
		SystolicBP:  req.SystolicBP,
		DiastolicBP: req.DiastolicBP,
		HeartRate:   req.HeartRate,
		RecordedAt:  req.RecordedAt.UTC(),
	}

	if err := s.repo.CreateVitalSign(ctx, vs); err != nil {
		return nil, err
	}
	return vs, nil
}

func (s *healthRecordService) CreateJournalEntry(ctx context.Context, userID uuid.UUID, req *domain.CreateJournalEntryRequest) (*domain.HealthJournalEntry, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	if !req.HasEntry() {
		return nil, domain.ErrInvalidInput
	}

	entry := &domain.HealthJournalEntry{
		UserID:          userID,
		EntryDate:       req.EntryDate.UTC(),
		SleepHours:      req.SleepHours,
		SleepQuality:    req.SleepQuality,
		ExerciseType:    req.ExerciseType,
		ExerciseMinutes: req.ExerciseMinutes,
		StressLevel:     req.StressLevel,
	}

	if err := s.repo.CreateJournalEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *healthRecordService) ListVitals(ctx context.Context, userID uuid.UUID, filter domain.RecordFilter) (*domain.VitalSignListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	vitals, err := s.repo.ListVitals(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(vitals) > limit
	if hasMore {
		vitals = vitals[:limit]
	}

	response := &domain.VitalSignListResponse{
		Data:       vitals,
		Pagination: domain.PaginationResponse{HasMore: hasMore},
	}

	if hasMore && len(vitals) > 0 {
		last := vitals[len(vitals)-1]
		cursor := &pagination.Cursor{ID: last.ID, RecordedAt: last.RecordedAt}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *healthRecordService) ListJournal(ctx context.Context, userID uuid.UUID, filter domain.RecordFilter) (*domain.JournalListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	entries, err := s.repo.ListJournal(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(entries) > limit
	if hasMore {
		entries = entries[:limit]
	}

	response := &domain.JournalListResponse{
		Data:       entries,
		Pagination: domain.PaginationResponse{HasMore: hasMore},
	}

	if hasMore && len(entries) > 0 {
		last := entries[len(entries)-1]
		cursor := &pagination.Cursor{ID: last.ID, RecordedAt: last.EntryDate}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}
