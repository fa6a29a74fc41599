package rbac

import (
	"strings"

	"go.uber.org/zap"
)

// Requirement is the role metadata registered for one route: the set
// declared on its group and, optionally, on the handler itself.
type Requirement struct {
	Group   RoleSet
	Handler RoleSet
}

// Effective applies "most specific wins": a declared handler set replaces
// the group set entirely, it is never merged with it.
func (r Requirement) Effective() RoleSet {
	if r.Handler != nil {
		return r.Handler
	}
	return r.Group
}

// GuardRequest carries everything the guard reads from one request.
type GuardRequest struct {
	PathOrgID   string
	HeaderOrgID string
	HeaderRole  string
	Actor       *Actor
	Required    RoleSet
}

// Guard gates organisation-scoped routes. It holds no per-request state.
type Guard struct {
	log *zap.Logger
}

func NewGuard(log *zap.Logger) *Guard {
	if log == nil {
		log = zap.NewNop()
	}
	return &Guard{log: log.Named("org_role_guard")}
}

// Authorize resolves the organisation scope and role for req and checks the
// role against req.Required. The returned OrgContext is populated whenever an
// organisation id was resolved, including on denial, so callers can attach it
// before acting on the error.
func (g *Guard) Authorize(req GuardRequest) (OrgContext, error) {
	orgID := resolveOrgID(req.PathOrgID, req.HeaderOrgID)
	if orgID == "" {
		g.log.Warn("organisation scope missing from request")
		return OrgContext{}, forbidden(ErrScopeRequired, "", req.Required)
	}

	role := resolveRole(req.HeaderRole, req.Actor)
	oc := OrgContext{OrganisationID: orgID, Role: role}
	if role != "" && !role.Valid() {
		g.log.Debug("unrecognised organisation role", zap.String("org_id", orgID), zap.String("role", string(role)))
	}

	if len(req.Required) == 0 {
		return oc, nil
	}

	if role == "" {
		g.log.Warn("organisation role missing from request", zap.String("org_id", orgID))
		return oc, forbidden(ErrRoleRequired, role, req.Required)
	}

	if !req.Required.Contains(role) {
		g.log.Warn("organisation role not permitted",
			zap.String("org_id", orgID),
			zap.String("candidate_role", string(role)),
			zap.Strings("required_roles", req.Required.Strings()),
		)
		return oc, forbidden(ErrInsufficientRole, role, req.Required)
	}

	return oc, nil
}

func resolveOrgID(pathOrgID, headerOrgID string) string {
	if id := strings.TrimSpace(pathOrgID); id != "" {
		return id
	}
	return strings.TrimSpace(headerOrgID)
}

// resolveRole treats a blank X-Org-Role the same as an absent one.
func resolveRole(headerRole string, actor *Actor) Role {
	if r := ParseRole(headerRole); r != "" {
		return r
	}
	if actor != nil {
		return ParseRole(string(actor.Role))
	}
	return ""
}
