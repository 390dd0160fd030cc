package employee

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrPasswordLength    = errors.New("password must be 6-12 characters")
	ErrPasswordIsDefault = errors.New("password must differ from the default credential")
)
