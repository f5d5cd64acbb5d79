package user

import (
	"time"

	"jobboard/internal/common"
)

type Role string

const (
	// RoleApplicant is the default role for self-registered accounts.
	RoleApplicant Role = "applicant"
	// RoleCompany marks a company administrator who owns job postings.
	RoleCompany Role = "company"
	// RoleSuperuser sees and manages everything.
	RoleSuperuser Role = "superuser"
)

type User struct {
	ID           common.UUID `json:"id"`
	Username     string      `json:"username"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	FirstName    string      `json:"first_name,omitempty"`
	LastName     string      `json:"last_name,omitempty"`
	Role         Role        `json:"role"`
	CreatedAt    time.Time   `json:"created_at"`
}
