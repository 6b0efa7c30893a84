package domain

import (
	"time"

	"github.com/google/uuid"
)

// InsightsCacheRow is the persisted, serialized insights bundle for one
// user. The unique index on user_id makes writes an atomic upsert, so at
// most one row exists per user at any time.
type InsightsCacheRow struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_insights_cache_user" json:"user_id"`
	SchemaVersion int       `gorm:"not null" json:"schema_version"`
	Payload       []byte    `gorm:"type:jsonb;not null" json:"payload"`
	GeneratedAt   time.Time `gorm:"not null" json:"generated_at"`
	ExpiresAt     time.Time `gorm:"not null;index" json:"expires_at"`
}

func (InsightsCacheRow) TableName() string {
	return "insights_cache"
}

// CacheStats reports process-level cache effectiveness counters.
// @Description Insights cache hit/miss statistics.
type CacheStats struct {
	Hits    int64   `json:"hits" example:"42"`
	Misses  int64   `json:"misses" example:"7"`
	HitRate float64 `json:"hit_rate" example:"85.7"`
	Total   int64   `json:"total" example:"49"`
}
