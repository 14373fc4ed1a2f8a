package models

import (
	"strings"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type Profile struct {
	ID           string    `db:"id"         json:"id"`
	FirstName    *string   `db:"first_name" json:"first_name,omitempty"`
	LastName     *string   `db:"last_name"  json:"last_name,omitempty"`
	Email        string    `db:"email"      json:"email"`
	Role         string    `db:"role"       json:"role"`
	PasswordHash string    `db:"-"          json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// IsAdmin — админ, если роль admin либо email содержит "admin".
// Проверка по подстроке осталась от старого клиента, убирать пока нельзя.
func (p *Profile) IsAdmin() bool {
	return IsAdminIdentity(p.Email, p.Role)
}

// IsAdminIdentity — та же проверка по «сырым» значениям из токена,
// без похода за профилем.
func IsAdminIdentity(email, role string) bool {
	return role == RoleAdmin || strings.Contains(email, "admin")
}

type UpdateProfileRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
}
