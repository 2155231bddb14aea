// Package authz defines the role model and the authorization predicates
// shared by every protected route.
package authz

import "context"

// Role is the closed set of principal roles. Anything outside the three
// constants is rejected at the API boundary.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleStaff  Role = "staff"
	RoleMember Role = "member"
)

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleMember:
		return true
	}
	return false
}

// In reports whether r is a member of the given allow-list.
func (r Role) In(roles ...Role) bool {
	for _, allowed := range roles {
		if r == allowed {
			return true
		}
	}
	return false
}

// Principal is the authenticated actor attached to a request context.
// It never carries the password digest.
type Principal struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	StudentID string `json:"nim"`
	Role      Role   `json:"role"`
}

// CanModify is the single ownership-or-admin predicate: the acting principal
// may mutate a resource if it owns it or holds the admin role.
func CanModify(p Principal, ownerID string) bool {
	return p.Role == RoleAdmin || p.ID == ownerID
}

type contextKey struct{}

// WithPrincipal stores the principal in the context.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// PrincipalFromContext extracts the principal set by the authentication gate.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(contextKey{}).(Principal)
	return p, ok
}
