package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Role discriminates portal accounts. Stored as user_role_id.
type Role int

const (
	RoleAdmin        Role = 1
	RoleFeminine     Role = 2
	RoleHealthWorker Role = 3
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleFeminine:
		return "Feminine"
	case RoleHealthWorker:
		return "Health Worker"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

var (
	ErrInvalidRole           = errors.New("role must be Admin, Feminine or Health Worker")
	ErrMissingContact        = errors.New("either an email or a contact number is required")
	ErrMenstruationStatusSet = errors.New("menstruation status only applies to feminine accounts")
)

type User struct {
	ID                 uint       `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt          time.Time  `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt          time.Time  `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	Role               Role       `gorm:"column:user_role_id;index" json:"user_role_id" example:"2"`
	FirstName          string     `json:"first_name" example:"Maria"`
	MiddleName         string     `json:"middle_name" example:"Santos"`
	LastName           string     `json:"last_name" example:"Reyes"`
	Address            string     `json:"address" example:"Purok 4, San Isidro"`
	Email              *string    `gorm:"uniqueIndex" json:"email,omitempty" example:"maria@example.com"`
	ContactNo          *string    `gorm:"uniqueIndex" json:"contact_no,omitempty" example:"0917123456"`
	Birthdate          *time.Time `json:"birthdate,omitempty" example:"2000-05-12T00:00:00Z"`
	Password           string     `json:"-"`
	MenstruationStatus *bool      `json:"menstruation_status,omitempty"`
	IsActive           bool       `gorm:"default:false" json:"is_active"`
	IsVerified         bool       `gorm:"default:false" json:"is_verified"`
	Remarks            *string    `json:"remarks,omitempty"`
}

// Validate enforces the construction-time rules: a known role, at least one
// reachable contact, and menstruation status only on feminine accounts.
func (u *User) Validate() error {
	switch u.Role {
	case RoleAdmin, RoleFeminine, RoleHealthWorker:
	default:
		return ErrInvalidRole
	}
	if u.Email == nil && u.ContactNo == nil {
		return ErrMissingContact
	}
	if u.Role != RoleFeminine && u.MenstruationStatus != nil {
		return ErrMenstruationStatusSet
	}
	return nil
}

// FullName renders "Last, First Middle" the way the portal screens list people.
func (u *User) FullName() string {
	name := u.LastName + ", " + u.FirstName
	if u.MiddleName != "" {
		name += " " + u.MiddleName
	}
	return strings.TrimSpace(name)
}
