package models

import "time"

// FeminineHealthWorkerGroup links one health worker to one feminine user they
// monitor. The relation is many-to-many: a feminine user may appear under
// several workers and a worker monitors several feminine users. The composite
// unique index makes duplicate submissions of the same pair a no-op at the
// store, even under concurrent requests.
type FeminineHealthWorkerGroup struct {
	ID             uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt      time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	FeminineID     uint      `gorm:"uniqueIndex:idx_feminine_health_worker" json:"feminine_id" example:"4"`
	HealthWorkerID uint      `gorm:"uniqueIndex:idx_feminine_health_worker" json:"health_worker_id" example:"7"`
}
