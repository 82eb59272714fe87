package plan

import "replydesk/internal/shared/authorization"

// CanEditSettings decides whether a caller may mutate a client's feature
// settings. Admins always may. Any other caller may only when the client's
// plan exists and has self-editing enabled; a missing plan yields read-only,
// never an error.
//
// This predicate is pure and must be recomputed on every settings resolution.
// Admins toggle AllowSelfEdit at will, so the result is never cached.
func CanEditSettings(role authorization.UserRole, p *Plan) bool {
	if role.IsAdmin() {
		return true
	}
	return p != nil && p.AllowSelfEdit()
}
