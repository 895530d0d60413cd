package models

import "time"

type MenstruationPeriod struct {
	ID               uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt        time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt        time.Time `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	UserID           uint      `gorm:"index" json:"user_id" example:"1"`
	User             User      `gorm:"foreignKey:UserID" json:"-"`
	MenstruationDate time.Time `json:"menstruation_date" example:"2023-01-01"`
	IsSeen           bool      `gorm:"default:false" json:"is_seen"`
}
