package models

import "time"

// UserRole defines a user's privilege level.
type UserRole string

const (
	// UserRoleUser is the default role for synced users.
	UserRoleUser UserRole = "user"
	// UserRoleAdmin can moderate knowledge-base content.
	UserRoleAdmin UserRole = "admin"
	// UserRoleSuperAdmin is assigned only via the configured admin email match
	// at creation time.
	UserRoleSuperAdmin UserRole = "superAdmin"
)

// User mirrors a user record in the external identity provider. Rows are
// created, updated, and deleted exclusively by webhook events; this system
// never originates one.
type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ClerkID         string    `gorm:"uniqueIndex;not null" json:"clerk_id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `gorm:"uniqueIndex;not null" json:"email"`
	Username        string    `json:"username,omitempty"`
	Avatar          string    `json:"avatar,omitempty"`
	Bio             string    `json:"bio,omitempty"`
	Specialties     []string  `gorm:"serializer:json" json:"specialties,omitempty"`
	ExperienceYears int       `json:"experience_years"`
	Role            UserRole  `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
