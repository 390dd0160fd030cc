package admin

import (
	"context"
	"testing"

	"github.com/clinika/kiosk-backend-go/internal/domain/admin"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeAdminRepo struct {
	accounts map[string]admin.AdminUser
}

func (f *fakeAdminRepo) GetByUsername(_ context.Context, username string) (*admin.AdminUser, error) {
	acct, ok := f.accounts[username]
	if !ok {
		return nil, nil
	}
	return &acct, nil
}

func (f *fakeAdminRepo) Create(_ context.Context, adm admin.AdminUser) (admin.AdminUser, error) {
	f.accounts[adm.Username] = adm
	return adm, nil
}

type fakeJWTService struct {
	issued int
}

func (f *fakeJWTService) GenerateAccessToken(adminID string, username string) (string, int64, error) {
	f.issued++
	return "token-for-" + username, 1700000000, nil
}

func (f *fakeJWTService) JWTAuth() *jwtauth.JWTAuth { return nil }

func newAdminFixture(t *testing.T) (admin.AdminService, *fakeJWTService) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("front-desk-pw"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeAdminRepo{accounts: map[string]admin.AdminUser{
		"admin": {ID: "adm-1", Username: "admin", PasswordHash: string(hash)},
	}}
	jwtSvc := &fakeJWTService{}
	return NewAdminService(repo, jwtSvc), jwtSvc
}

func TestLoginAdmin_Success(t *testing.T) {
	svc, jwtSvc := newAdminFixture(t)

	resp, err := svc.LoginAdmin(context.Background(), admin.LoginRequest{
		Username: "admin",
		Password: "front-desk-pw",
	})
	require.NoError(t, err)

	assert.Equal(t, "token-for-admin", resp.AccessToken)
	assert.Equal(t, "admin", resp.Username)
	assert.Equal(t, int64(1700000000), resp.AccessTokenExpiresIn)
	assert.Equal(t, 1, jwtSvc.issued)
}

func TestLoginAdmin_WrongPassword(t *testing.T) {
	svc, jwtSvc := newAdminFixture(t)

	_, err := svc.LoginAdmin(context.Background(), admin.LoginRequest{
		Username: "admin",
		Password: "not-the-password",
	})
	assert.ErrorIs(t, err, admin.ErrInvalidCredentials)
	assert.Zero(t, jwtSvc.issued)
}

func TestLoginAdmin_UnknownUsernameIsIndistinguishable(t *testing.T) {
	svc, jwtSvc := newAdminFixture(t)

	_, err := svc.LoginAdmin(context.Background(), admin.LoginRequest{
		Username: "ghost",
		Password: "front-desk-pw",
	})
	assert.ErrorIs(t, err, admin.ErrInvalidCredentials)
	assert.Zero(t, jwtSvc.issued)
}
