package user

import "time"

// Role of a workspace user
type Role string

const (
	RoleOwner    Role = "OWNER"
	RoleAdmin    Role = "ADMIN"
	RoleManager  Role = "MANAGER"
	RoleEmployee Role = "EMPLOYEE"
)

// ManagerRoles are the roles that receive manager fan-out notifications.
func ManagerRoles() []Role {
	return []Role{RoleOwner, RoleAdmin, RoleManager}
}

// IsManager reports whether the role receives manager notifications and may
// trigger automations by hand.
func (r Role) IsManager() bool {
	return r == RoleOwner || r == RoleAdmin || r == RoleManager
}

// User is a workspace login. Employees link to a User via email.
type User struct {
	ID          string
	WorkspaceID string
	Email       string
	Role        Role
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
