package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/pulsewell/health-insights-api/internal/domain"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

// MockHealthRecordRepository is a mock implementation of HealthRecordRepository.
// Range reads count calls so tests can assert whether the store was hit.
type MockHealthRecordRepository struct {
	vitals  []domain.VitalSign
	journal []domain.HealthJournalEntry
	err     error

	rangeReads atomic.Int64
}

func NewMockHealthRecordRepository() *MockHealthRecordRepository {
	return &MockHealthRecordRepository{}
}

func (m *MockHealthRecordRepository) RangeReads() int64 {
	return m.rangeReads.Load()
}

func (m *MockHealthRecordRepository) CreateVitalSign(ctx context.Context, vs *domain.VitalSign) error {
	if m.err != nil {
		return m.err
	}
	if vs.ID == uuid.Nil {
		vs.ID = uuid.New()
	}
	m.vitals = append(m.vitals, *vs)
	return nil
}

func (m *MockHealthRecordRepository) CreateJournalEntry(ctx context.Context, entry *domain.HealthJournalEntry) error {
	if m.err != nil {
		return m.err
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	m.journal = append(m.journal, *entry)
	return nil
}

func (m *MockHealthRecordRepository) ListVitalsByRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.VitalSign, error) {
	m.rangeReads.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.VitalSign
	for _, v := range m.vitals {
		if v.UserID == userID && !v.RecordedAt.Before(from) && v.RecordedAt.Before(to) {
			result = append(result, v)
		}
	}
	return result, nil
}

func (m *MockHealthRecordRepository) ListJournalByRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.HealthJournalEntry, error) {
	m.rangeReads.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.HealthJournalEntry
	for _, e := range m.journal {
		if e.UserID == userID && !e.EntryDate.Before(from) && e.EntryDate.Before(to) {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *MockHealthRecordRepository) ListVitals(ctx context.Context, userID uuid.UUID, filter domain.RecordFilter) ([]domain.VitalSign, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.VitalSign
	for _, v := range m.vitals {
		if v.UserID == userID {
			result = append(result, v)
		}
	}
	return result, nil
}

func (m *MockHealthRecordRepository) ListJournal(ctx context.Context, userID uuid.UUID, filter domain.RecordFilter) ([]domain.HealthJournalEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.HealthJournalEntry
	for _, e := range m.journal {
		if e.UserID == userID {
			result = append(result, e)
		}
	}
	return result, nil
}

// MockInsightsCacheRepository is an in-memory InsightsCacheRepository.
type MockInsightsCacheRepository struct {
	rows      map[uuid.UUID]*domain.InsightsCacheRow
	findErr   error
	upsertErr error
	deleteErr error

	upserts int
}

func NewMockInsightsCacheRepository() *MockInsightsCacheRepository {
	return &MockInsightsCacheRepository{
		rows: make(map[uuid.UUID]*domain.InsightsCacheRow),
	}
}

func (m *MockInsightsCacheRepository) FindFresh(ctx context.Context, userID uuid.UUID, now time.Time) (*domain.InsightsCacheRow, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	row, ok := m.rows[userID]
	if !ok || !row.ExpiresAt.After(now) {
		return nil, nil
	}
	return row, nil
}

func (m *MockInsightsCacheRepository) Upsert(ctx context.Context, row *domain.InsightsCacheRow) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	m.rows[row.UserID] = row
	m.upserts++
	return nil
}

func (m *MockInsightsCacheRepository) DeleteAllForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	if m.deleteErr != nil {
		return 0, m.deleteErr
	}
	if _, ok := m.rows[userID]; !ok {
		return 0, nil
	}
	delete(m.rows, userID)
	return 1, nil
}

// Helper functions
func intPtr(i int) *int {
	return &i
}

func floatPtr(f float64) *float64 {
	return &f
}

func strPtr(s string) *string {
	return &s
}
