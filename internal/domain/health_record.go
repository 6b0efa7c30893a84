package domain

import (
	"time"

	"github.com/google/uuid"
)

// VitalSign is a single vitals reading (blood pressure and/or heart rate).
type VitalSign struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_vital_signs_user_recorded" json:"user_id"`
	SystolicBP  *int      `gorm:"type:smallint" json:"systolic_bp,omitempty"`
	DiastolicBP *int      `gorm:"type:smallint" json:"diastolic_bp,omitempty"`
	HeartRate   *int      `gorm:"type:smallint" json:"heart_rate,omitempty"`
	RecordedAt  time.Time `gorm:"not null;index:idx_vital_signs_user_recorded,sort:desc" json:"recorded_at"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (VitalSign) TableName() string {
	return "vital_signs"
}

// HealthJournalEntry is a daily wellness journal row. A single row may carry
// any subset of sleep, exercise, and stress fields; the insights fetcher
// destructures rows into per-metric samples based on which fields are set.
type HealthJournalEntry struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index:idx_journal_user_date" json:"user_id"`
	EntryDate       time.Time `gorm:"not null;index:idx_journal_user_date,sort:desc" json:"entry_date"`
	SleepHours      *float64  `gorm:"type:numeric(4,2)" json:"sleep_hours,omitempty"`
	SleepQuality    *int      `gorm:"type:smallint" json:"sleep_quality,omitempty"`
	ExerciseType    *string   `gorm:"type:varchar(64)" json:"exercise_type,omitempty"`
	ExerciseMinutes *int      `gorm:"type:smallint" json:"exercise_minutes,omitempty"`
	StressLevel     *int      `gorm:"type:smallint" json:"stress_level,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (HealthJournalEntry) TableName() string {
	return "health_journal_entries"
}

// CreateVitalSignRequest is the request body for recording a vitals reading.
// @Description Request payload for recording blood pressure and/or heart rate.
type CreateVitalSignRequest struct {
	// Systolic blood pressure in mmHg
	SystolicBP *int `json:"systolic_bp,omitempty" validate:"omitempty,min=50,max=300" example:"120"`
	// Diastolic blood pressure in mmHg
	DiastolicBP *int `json:"diastolic_bp,omitempty" validate:"omitempty,min=30,max=200" example:"80"`
	// Heart rate in beats per minute
	HeartRate *int `json:"heart_rate,omitempty" validate:"omitempty,min=20,max=250" example:"68"`
	// Reading timestamp in RFC3339 format
	RecordedAt time.Time `json:"recorded_at" validate:"required" example:"2024-01-15T08:30:00Z"`
}

// HasReading reports whether at least one vitals value is present.
func (r *CreateVitalSignRequest) HasReading() bool {
	return r.SystolicBP != nil || r.DiastolicBP != nil || r.HeartRate != nil
}

// CreateJournalEntryRequest is the request body for a daily journal entry.
// @Description Request payload for a wellness journal entry.
type CreateJournalEntryRequest struct {
	// Entry date in RFC3339 format
	EntryDate time.Time `json:"entry_date" validate:"required" example:"2024-01-15T00:00:00Z"`
	// Sleep duration in hours
	SleepHours *float64 `json:"sleep_hours,omitempty" validate:"omitempty,min=0,max=24" example:"7.5"`
	// Sleep quality rating from 1 (poor) to 10 (excellent)
	SleepQuality *int `json:"sleep_quality,omitempty" validate:"omitempty,min=1,max=10" example:"8"`
	// Exercise activity type
	ExerciseType *string `json:"exercise_type,omitempty" validate:"omitempty,max=64" example:"running"`
	// Exercise duration in minutes
	ExerciseMinutes *int `json:"exercise_minutes,omitempty" validate:"omitempty,min=1,max=1440" example:"45"`
	// Stress level from 0 (calm) to 10 (severe)
	StressLevel *int `json:"stress_level,omitempty" validate:"omitempty,min=0,max=10" example:"3"`
}

// HasEntry reports whether at least one journal field is present.
func (r *CreateJournalEntryRequest) HasEntry() bool {
	return r.SleepHours != nil || r.ExerciseMinutes != nil || r.StressLevel != nil
}

// RecordFilter contains filter parameters for listing records.
type RecordFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}

// VitalSignListResponse is the paginated vitals listing.
// @Description Paginated list of vitals readings.
type VitalSignListResponse struct {
	Data       []VitalSign        `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// JournalListResponse is the paginated journal listing.
// @Description Paginated list of journal entries.
type JournalListResponse struct {
	Data       []HealthJournalEntry `json:"data"`
	Pagination PaginationResponse   `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}
