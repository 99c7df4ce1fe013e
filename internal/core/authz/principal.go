package authz

// Role defines the privilege level of a principal over other users' content
type Role string

const (
	RoleUser      Role = "USER"
	RoleModerator Role = "MODERATOR"
	RoleAdmin     Role = "ADMIN"
)

// Principal is the authenticated actor a core operation runs on behalf of.
// It is a plain value built by the caller (transport middleware) from the
// user record; the core never authenticates credentials itself.
type Principal struct {
	ID      int
	Role    Role
	Blocked bool
	Deleted bool
}

// IsModerator reports whether the principal holds moderator-or-above privileges
func (p Principal) IsModerator() bool {
	return p.Role == RoleModerator || p.Role == RoleAdmin
}

// IsAdmin reports whether the principal is an administrator
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
