package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/clinika/kiosk-backend-go/internal/domain/admin"
	"github.com/clinika/kiosk-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type adminRepositoryImpl struct {
	db *database.DB
}

func NewAdminRepository(db *database.DB) admin.AdminRepository {
	return &adminRepositoryImpl{db: db}
}

// GetByUsername implements admin.AdminRepository.
func (a *adminRepositoryImpl) GetByUsername(ctx context.Context, username string) (*admin.AdminUser, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, username, password_hash
		FROM admin_users
		WHERE username = $1
	`

	var adm admin.AdminUser
	err := q.QueryRow(ctx, query, username).Scan(&adm.ID, &adm.Username, &adm.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin by username: %w", err)
	}

	return &adm, nil
}

// Create implements admin.AdminRepository.
func (a *adminRepositoryImpl) Create(ctx context.Context, adm admin.AdminUser) (admin.AdminUser, error) {
	q := GetQuerier(ctx, a.db)

	if adm.ID == "" {
		adm.ID = uuid.NewString()
	}

	query := `
		INSERT INTO admin_users (id, username, password_hash)
		VALUES ($1, $2, $3)
	`

	if _, err := q.Exec(ctx, query, adm.ID, adm.Username, adm.PasswordHash); err != nil {
		return admin.AdminUser{}, fmt.Errorf("failed to create admin user: %w", err)
	}

	return adm, nil
}
