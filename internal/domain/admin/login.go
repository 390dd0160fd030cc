package admin

import (
	"github.com/clinika/kiosk-backend-go/internal/pkg/password"
)

// LoginOutcome is a closed union over admin login results.
type LoginOutcome interface {
	loginOutcome()
}

type LoginSuccess struct {
	Admin AdminUser
}

// LoginFailure carries no detail: an unknown username and a wrong password
// produce the same value, so username existence cannot be inferred.
type LoginFailure struct{}

func (LoginSuccess) loginOutcome() {}
func (LoginFailure) loginOutcome() {}

// DecideLogin resolves an admin login attempt against the lookup result.
// The hasher is not consulted when the username was unknown.
func DecideLogin(found *AdminUser, plaintext string) LoginOutcome {
	if found == nil {
		return LoginFailure{}
	}
	if !password.Verify(plaintext, found.PasswordHash) {
		return LoginFailure{}
	}
	return LoginSuccess{Admin: *found}
}
