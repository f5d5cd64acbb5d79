package app

import (
	"jobboard/internal/common"
	"jobboard/internal/domain/user"
)

// Principal identifies the authenticated actor behind a request.
type Principal struct {
	ID   common.UUID
	Role user.Role
}

func (p Principal) IsSuperuser() bool {
	return p.Role == user.RoleSuperuser
}

func (p Principal) IsCompany() bool {
	return p.Role == user.RoleCompany
}
