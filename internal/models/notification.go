package models

import "time"

// SignupNotification is the admin badge projection of a not-yet-verified
// feminine account.
type SignupNotification struct {
	ID                 uint    `json:"id"`
	FirstName          string  `json:"first_name"`
	LastName           string  `json:"last_name"`
	MiddleName         string  `json:"middle_name"`
	Email              *string `json:"email"`
	MenstruationStatus *bool   `json:"menstruation_status"`
}

// PeriodNotification is one unseen period entry joined with its owner.
type PeriodNotification struct {
	ID               uint      `json:"id"`
	UserID           uint      `json:"user_id"`
	MenstruationDate time.Time `json:"-"`
	FormattedDate    string    `gorm:"-" json:"formatted_menstruation_date"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	MiddleName       string    `json:"middle_name"`
}

// FormatDate fills FormattedDate the way the notification dropdown shows it.
func (n *PeriodNotification) FormatDate() {
	n.FormattedDate = n.MenstruationDate.Format("Jan 2, 2006")
}
