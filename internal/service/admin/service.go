package admin

import (
	"context"
	"fmt"

	"github.com/clinika/kiosk-backend-go/internal/domain/admin"
	"github.com/clinika/kiosk-backend-go/internal/pkg/jwt"
)

type AdminServiceImpl struct {
	admin.AdminRepository
	jwtService jwt.Service
}

func NewAdminService(adminRepo admin.AdminRepository, jwtService jwt.Service) admin.AdminService {
	return &AdminServiceImpl{
		AdminRepository: adminRepo,
		jwtService:      jwtService,
	}
}

// LoginAdmin implements admin.AdminService.
func (a *AdminServiceImpl) LoginAdmin(ctx context.Context, req admin.LoginRequest) (admin.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return admin.TokenResponse{}, err
	}

	found, err := a.AdminRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		return admin.TokenResponse{}, fmt.Errorf("failed to get admin account: %w", err)
	}

	outcome := admin.DecideLogin(found, req.Password)

	success, ok := outcome.(admin.LoginSuccess)
	if !ok {
		return admin.TokenResponse{}, admin.ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwtService.GenerateAccessToken(success.Admin.ID, success.Admin.Username)
	if err != nil {
		return admin.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return admin.TokenResponse{
		AccessToken:          token,
		AccessTokenExpiresIn: expiresAt,
		Username:             success.Admin.Username,
	}, nil
}
