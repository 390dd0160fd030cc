package fixtures

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/clinika/kiosk-backend-go/internal/config"
	"github.com/clinika/kiosk-backend-go/internal/domain/admin"
	"github.com/clinika/kiosk-backend-go/internal/pkg/password"
)

// SeedAdminAccounts inserts the configured console accounts if they are not
// present yet. Existing accounts are left untouched so a password change
// done through the database survives restarts.
func SeedAdminAccounts(ctx context.Context, repo admin.AdminRepository, accounts []config.AdminAccount) error {
	for _, acct := range accounts {
		existing, err := repo.GetByUsername(ctx, acct.Username)
		if err != nil {
			return fmt.Errorf("failed to check admin account %s: %w", acct.Username, err)
		}
		if existing != nil {
			continue
		}

		hash, err := password.Hash(acct.Password)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		if _, err := repo.Create(ctx, admin.AdminUser{
			Username:     acct.Username,
			PasswordHash: hash,
		}); err != nil {
			return fmt.Errorf("failed to seed admin account %s: %w", acct.Username, err)
		}

		slog.Info("Seeded admin account", "username", acct.Username)
	}

	return nil
}
