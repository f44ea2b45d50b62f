package domain

import "strings"

// Identity is the per-request caller identity. The gateway derives it from a
// validated access token; internal services rebuild it from the forwarded
// X-User-* headers. It lives only for the request and is always passed
// explicitly, never through package-level state.
type Identity struct {
	ID       string
	Username string
	Roles    []string
}

// HasRole reports whether the identity carries the given role tag.
func (id *Identity) HasRole(role string) bool {
	for _, r := range id.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// RolesHeader renders the role set in the comma-joined form carried by the
// X-User-Roles header.
func (id *Identity) RolesHeader() string {
	return strings.Join(id.Roles, ",")
}

// ParseRolesHeader splits a comma-joined role list, trimming whitespace and
// discarding empty entries.
func ParseRolesHeader(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	roles := make([]string, 0, len(parts))
	for _, p := range parts {
		if r := strings.TrimSpace(p); r != "" {
			roles = append(roles, r)
		}
	}
	return roles
}
