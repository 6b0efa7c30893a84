package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pulsewell/health-insights-api/internal/domain"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc  func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{ID: uuid.New(), Timezone: req.Timezone}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &domain.User{ID: id, Timezone: "UTC"}, nil
}

// MockHealthRecordService is a mock implementation of HealthRecordService
type MockHealthRecordService struct {
	createVitalFunc   func(ctx context.Context, userID uuid.UUID, req *domain.CreateVitalSignRequest) (*domain.VitalSign, error)
	createJournalFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateJournalEntryRequest) (*domain.HealthJournalEntry, error)
	listVitalsFunc    func(ctx context.Context, userID uuid.UUID, filter domain.RecordFilter) (*domain.VitalSignListResponse, error)
	listJournalFunc   func(ctx context.Context, userID uuid.UUID, filter domain.RecordFilter) (*domain.JournalListResponse, error)
}

func (m *MockHealthRecordService) CreateVitalSign(ctx context.Context, userID uuid.UUID, req *domain.CreateVitalSignRequest) (*domain.VitalSign, error) {
	if m.createVitalFunc != nil {
		return m.createVitalFunc(ctx, userID, req)
	}
	return &domain.VitalSign{
		ID:          uuid.New(),
		UserID:      userID,
		SystolicBP:  req.SystolicBP,
		DiastolicBP: req.DiastolicBP,
		HeartRate:   req.HeartRate,
		RecordedAt:  req.RecordedAt,
	}, nil
}

func (m *MockHealthRecordService) CreateJournalEntry(ctx context.Context, userID uuid.UUID, req *domain.CreateJournalEntryRequest) (*domain.HealthJournalEntry, error) {
	if m.createJournalFunc != nil {
		return m.createJournalFunc(ctx, userID, req)
	}
	return &domain.HealthJournalEntry{
		ID:         uuid.New(),
		UserID:     userID,
		EntryDate:  req.EntryDate,
		SleepHours: req.SleepHours,
	}, nil
}

func (m *MockHealthRecordService) ListVitals(ctx context.Context, userID uuid.UUID, filter domain.RecordFilter) (*domain.VitalSignListResponse, error) {
	if m.listVitalsFunc != nil {
		return m.listVitalsFunc(ctx, userID, filter)
	}
	return &domain.VitalSignListResponse{
		Data:       []domain.VitalSign{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

func (m *MockHealthRecordService) ListJournal(ctx context.Context, userID uuid.UUID, filter domain.RecordFilter) (*domain.JournalListResponse, error) {
	if m.listJournalFunc != nil {
		return m.listJournalFunc(ctx, userID, filter)
	}
	return &domain.JournalListResponse{
		Data:       []domain.HealthJournalEntry{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	getInsightsFunc   func(ctx context.Context, userID uuid.UUID) (*domain.AIInsightsResponse, error)
	analyzeTrendsFunc func(ctx context.Context, userID uuid.UUID, periodDays int) ([]domain.TrendData, error)
	clearCacheFunc    func(ctx context.Context, userID uuid.UUID) error
	statsFunc         func() domain.CacheStats
	resetCalled       bool
}

func (m *MockInsightsService) GetInsights(ctx context.Context, userID uuid.UUID) (*domain.AIInsightsResponse, error) {
	if m.getInsightsFunc != nil {
		return m.getInsightsFunc(ctx, userID)
	}
	return &domain.AIInsightsResponse{
		SchemaVersion: domain.InsightsSchemaVersion,
		HealthScore:   domain.HealthScore{Score: 75, Category: domain.CategoryGood},
		Metadata: domain.InsightsMetadata{
			UserID:      userID,
			GeneratedAt: time.Now().UTC(),
		},
	}, nil
}

func (m *MockInsightsService) AnalyzeTrends(ctx context.Context, userID uuid.UUID, periodDays int) ([]domain.TrendData, error) {
	if m.analyzeTrendsFunc != nil {
		return m.analyzeTrendsFunc(ctx, userID, periodDays)
	}
	return []domain.TrendData{}, nil
}

func (m *MockInsightsService) ClearCache(ctx context.Context, userID uuid.UUID) error {
	if m.clearCacheFunc != nil {
		return m.clearCacheFunc(ctx, userID)
	}
	return nil
}

func (m *MockInsightsService) CacheStats() domain.CacheStats {
	if m.statsFunc != nil {
		return m.statsFunc()
	}
	return domain.CacheStats{}
}

func (m *MockInsightsService) ResetCacheStats() {
	m.resetCalled = true
}
