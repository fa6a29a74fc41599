package rbac

import "context"

// Header names consulted by the guard. http.Header lookups are
// case-insensitive, so any casing sent by a client resolves.
const (
	HeaderOrgID   = "X-Org-Id"
	HeaderOrgRole = "X-Org-Role"
)

// OrgContextKey is the gin context key the org scope middleware mirrors
// the resolved OrgContext under, for access logging.
const OrgContextKey = "org_context"

// OrgContext is the request-scoped organisation scope resolved by the guard.
type OrgContext struct {
	OrganisationID string `json:"organisationId"`
	Role           Role   `json:"role,omitempty"`
}

// Actor is the identity supplied by the authentication layer, if any.
type Actor struct {
	UserID string
	OrgID  string
	Role   Role
}

type orgContextKey struct{}
type actorKey struct{}

func WithOrgContext(ctx context.Context, oc OrgContext) context.Context {
	return context.WithValue(ctx, orgContextKey{}, oc)
}

func OrgContextFrom(ctx context.Context) (OrgContext, bool) {
	if ctx == nil {
		return OrgContext{}, false
	}
	oc, ok := ctx.Value(orgContextKey{}).(OrgContext)
	if !ok || oc.OrganisationID == "" {
		return OrgContext{}, false
	}
	return oc, true
}

func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, &a)
}

// ActorFrom returns nil when the request is anonymous.
func ActorFrom(ctx context.Context) *Actor {
	if ctx == nil {
		return nil
	}
	a, _ := ctx.Value(actorKey{}).(*Actor)
	return a
}
