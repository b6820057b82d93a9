package domain

import (
	"fmt"
	"strings"
)

// Role distinguishes the two kinds of marketplace participants.
type Role string

const (
	RoleBrand      Role = "brand"
	RoleInfluencer Role = "influencer"
)

// Actor is the authenticated identity performing an operation. It is resolved
// upstream and passed explicitly into every engine call; the engine keeps no
// session state of its own. Name and Email are only used to fill snapshot
// fields on new applications.
type Actor struct {
	ID    string
	Role  Role
	Name  string
	Email string
}

// ParseRole converts a textual role into a Role, case-insensitively.
func ParseRole(value string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(value))) {
	case RoleBrand:
		return RoleBrand, nil
	case RoleInfluencer:
		return RoleInfluencer, nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", ErrValidation, value)
	}
}

// Validate reports whether the actor carries a usable identity.
func (a Actor) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return fmt.Errorf("%w: actor id is required", ErrForbidden)
	}
	if a.Role != RoleBrand && a.Role != RoleInfluencer {
		return fmt.Errorf("%w: actor role is required", ErrForbidden)
	}
	return nil
}
