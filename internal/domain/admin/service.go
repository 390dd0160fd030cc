package admin

import (
	"context"
)

// AdminService handles console authentication.
type AdminService interface {
	// LoginAdmin verifies credentials and issues an access token. Bad
	// credentials surface as ErrInvalidCredentials regardless of whether the
	// username exists.
	LoginAdmin(ctx context.Context, req LoginRequest) (TokenResponse, error)
}
