// Package identity integrates the external identity provider. The provider
// owns authentication and user profiles; this package only decodes the
// session tokens it issues and queries its user directory for display names.
package identity

import (
	"context"
	"strings"
)

// User 是身份服务返回的用户档案。
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// DisplayName joins the profile names; callers fall back to the raw id
// themselves when the user is unknown.
func (u User) DisplayName() string {
	name := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if name == "" {
		return u.ID
	}
	return name
}

// Provider exposes the user directory of the external identity service.
type Provider interface {
	ListUsers(ctx context.Context) ([]User, error)
}
