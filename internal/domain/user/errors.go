package user

import "errors"

// User domain errors
var (
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
