package rbac

import "errors"

// Kind classifies authorization failures. There is only one today.
type Kind string

const KindForbidden Kind = "forbidden"

var (
	ErrScopeRequired    = errors.New("organisation scope required")
	ErrRoleRequired     = errors.New("role header required")
	ErrInsufficientRole = errors.New("insufficient role")
)

// AuthorizationError is returned for every guard denial. Reason is one of
// the sentinel errors above and is reachable through errors.Is.
type AuthorizationError struct {
	Reason   error
	Role     Role
	Required RoleSet
}

func (e *AuthorizationError) Error() string {
	if e == nil || e.Reason == nil {
		return string(KindForbidden)
	}
	return string(KindForbidden) + ": " + e.Reason.Error()
}

func (e *AuthorizationError) Unwrap() error { return e.Reason }

func (e *AuthorizationError) Kind() Kind { return KindForbidden }

// Message is the short text surfaced to callers.
func (e *AuthorizationError) Message() string {
	if e == nil || e.Reason == nil {
		return string(KindForbidden)
	}
	return e.Reason.Error()
}

// Code is a stable label for metrics.
func (e *AuthorizationError) Code() string {
	switch {
	case errors.Is(e.Reason, ErrScopeRequired):
		return "scope_required"
	case errors.Is(e.Reason, ErrRoleRequired):
		return "role_required"
	case errors.Is(e.Reason, ErrInsufficientRole):
		return "insufficient_role"
	default:
		return "unknown"
	}
}

func forbidden(reason error, role Role, required RoleSet) *AuthorizationError {
	return &AuthorizationError{Reason: reason, Role: role, Required: required}
}
