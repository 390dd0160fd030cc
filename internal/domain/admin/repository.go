package admin

import (
	"context"
)

// AdminRepository defines data access methods for admin accounts. Username
// uniqueness is enforced by the database, not here.
type AdminRepository interface {
	// GetByUsername retrieves an admin account, or nil when the username is
	// unknown.
	GetByUsername(ctx context.Context, username string) (*AdminUser, error)

	// Create inserts a new admin account. Used by boot seeding only.
	Create(ctx context.Context, adm AdminUser) (AdminUser, error)
}
