package httpserver

import (
	"net/http"
	"path"
	"sort"
	"sync"

	"github.com/gin-gonic/gin"

	"eventon/internal/rbac"
)

// RouteTable records the role requirement of every organisation-scoped
// route, keyed by method and gin route template. The org scope middleware
// reads it per request; routes absent from it are treated as scope-only.
type RouteTable struct {
	mu     sync.RWMutex
	routes map[string]rbac.Requirement
}

func NewRouteTable() *RouteTable {
	return &RouteTable{routes: make(map[string]rbac.Requirement)}
}

func routeKey(method, fullPath string) string {
	return method + " " + fullPath
}

func (t *RouteTable) Register(method, fullPath string, req rbac.Requirement) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.routes[routeKey(method, fullPath)] = req
}

func (t *RouteTable) Lookup(method, fullPath string) (rbac.Requirement, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	req, ok := t.routes[routeKey(method, fullPath)]
	return req, ok
}

// Routes lists the registered keys in sorted order.
func (t *RouteTable) Routes() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, 0, len(t.routes))
	for k := range t.routes {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// OrgGroup is a gin route group whose routes share a declared role set.
type OrgGroup struct {
	rg    *gin.RouterGroup
	roles rbac.RoleSet
	table *RouteTable
}

// Group opens relPath under parent with the group-level roles. No roles
// makes every route in the group scope-only unless a handler overrides it.
func (t *RouteTable) Group(parent *gin.RouterGroup, relPath string, roles ...rbac.Role) *OrgGroup {
	return &OrgGroup{rg: parent.Group(relPath), roles: rbac.Roles(roles...), table: t}
}

// Handle registers h and its requirement. A nil handlerRoles inherits the
// group set; a non-nil one replaces it.
func (g *OrgGroup) Handle(method, relPath string, handlerRoles rbac.RoleSet, h ...gin.HandlerFunc) {
	full := g.rg.BasePath()
	if relPath != "" {
		full = path.Join(full, relPath)
	}
	g.table.Register(method, full, rbac.Requirement{Group: g.roles, Handler: handlerRoles})
	g.rg.Handle(method, relPath, h...)
}

func (g *OrgGroup) GET(relPath string, h ...gin.HandlerFunc) {
	g.Handle(http.MethodGet, relPath, nil, h...)
}

func (g *OrgGroup) POST(relPath string, h ...gin.HandlerFunc) {
	g.Handle(http.MethodPost, relPath, nil, h...)
}
