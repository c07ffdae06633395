package domain

import "time"

// AccountRole defines the platform-level role of an account.
type AccountRole string

const (
	RoleAdministrator AccountRole = "administrator"
	RoleVolunteer     AccountRole = "volunteer"
	RoleMember        AccountRole = "member"
)

// Valid reports whether the role is one of the known account roles.
func (r AccountRole) Valid() bool {
	switch r {
	case RoleAdministrator, RoleVolunteer, RoleMember:
		return true
	}
	return false
}

// Account represents a user of the platform. Accounts are deactivated rather
// than deleted; DeletedAt soft-deletes the row from all lookups.
type Account struct {
	AccountID    string      `json:"accountID"` // Primary Key (UUID)
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone"` // normalized, digits only
	PasswordHash string      `json:"-"`
	Role         AccountRole `json:"role"`
	IsActive     bool        `json:"isActive"`

	// External identity provider details (e.g. Google sign-in).
	AuthProvider   string `json:"-"`
	ProviderUserID string `json:"-"`

	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`

	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// GoogleUserInfo holds the subset of the Google userinfo payload we consume.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
