package authorization

type UserRole string

const (
	RoleEndUser UserRole = "end_user"
	RoleAgent   UserRole = "agent"
	RoleAdmin   UserRole = "admin"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsAgent() bool {
	return r == RoleAgent
}

// IsStaff reports whether the role may act on tickets it does not own.
func (r UserRole) IsStaff() bool {
	return r == RoleAgent || r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleEndUser, RoleAgent, RoleAdmin:
		return true
	}
	return false
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleEndUser
}
