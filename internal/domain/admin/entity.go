package admin

type AdminUser struct {
	ID           string
	Username     string
	PasswordHash string
}
