package domain

import "time"

// Role is a user's access level
type Role string

const (
	RoleAdmin  Role = "admin"  // Full access, including user management
	RoleEditor Role = "editor" // May modify catalog entries
	RoleViewer Role = "viewer" // Read-only access
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleViewer:
		return true
	}
	return false
}

// User Model
type User struct {
	ID        string    `gorm:"type:char(36);primaryKey"`        // UUID primary key
	Email     string    `gorm:"size:191;uniqueIndex;not null"`   // Unique login email
	Password  string    `gorm:"size:255;not null"`               // Bcrypt hash
	Role      Role      `gorm:"size:16;not null;default:viewer"` // admin, editor or viewer
	CreatedAt time.Time `gorm:"index"`                           // Creation timestamp
	UpdatedAt time.Time
}
