// Package gateway implements the edge authentication gate: a declarative
// route table, the bearer-token filter and the reverse proxy that forwards
// requests to the internal services with trusted identity headers.
package gateway

import "strings"

// Access is the authentication level a route requires.
type Access int

const (
	AccessPublic Access = iota
	AccessAuthenticated
	AccessAdmin
)

// Backends a rule can forward to.
const (
	BackendAuth = "auth"
	BackendBlog = "blog"
)

// Rule maps a path prefix to its required access level and target backend.
type Rule struct {
	Prefix  string
	Access  Access
	Backend string
}

// RouteTable classifies request paths in a single ordered pass: the first
// rule whose prefix matches wins, so specific rules must precede catch-alls.
type RouteTable struct {
	rules []Rule
}

func NewRouteTable(rules []Rule) *RouteTable {
	return &RouteTable{rules: rules}
}

// DefaultRouteTable is the platform's routing policy. Registration, login,
// refresh, the public blog listing and the API documentation are reachable
// without credentials; category creation is admin-only; everything else under
// the API prefix requires an authenticated caller.
func DefaultRouteTable() *RouteTable {
	return NewRouteTable([]Rule{
		{Prefix: "/api/v1.0/blogsite/user/register", Access: AccessPublic, Backend: BackendAuth},
		{Prefix: "/api/v1.0/blogsite/user/login", Access: AccessPublic, Backend: BackendAuth},
		{Prefix: "/api/v1.0/blogsite/user/refresh", Access: AccessPublic, Backend: BackendAuth},
		{Prefix: "/api/v1.0/blogsite/user/logout", Access: AccessAuthenticated, Backend: BackendAuth},
		{Prefix: "/api/v1.0/blogsite/user/verify", Access: AccessAuthenticated, Backend: BackendAuth},
		{Prefix: "/api/v1.0/blogsite/blogs/", Access: AccessPublic, Backend: BackendBlog},
		{Prefix: "/api/v1.0/blogsite/category/create", Access: AccessAdmin, Backend: BackendBlog},
		{Prefix: "/v3/api-docs", Access: AccessPublic, Backend: BackendBlog},
		{Prefix: "/swagger", Access: AccessPublic, Backend: BackendBlog},
		{Prefix: "/api/v1.0/blogsite/", Access: AccessAuthenticated, Backend: BackendBlog},
	})
}

// Match returns the first rule whose prefix matches the path.
func (t *RouteTable) Match(path string) (Rule, bool) {
	for _, rule := range t.rules {
		if strings.HasPrefix(path, rule.Prefix) {
			return rule, true
		}
	}
	return Rule{}, false
}
