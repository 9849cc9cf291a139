package models

import (
	"time"
)

// Role is the community role assigned to a user.
type Role string

const (
	RoleMember    Role = "member"
	RoleLeader    Role = "leader"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// Valid reports whether the role is one of the known community roles.
func (r Role) Valid() bool {
	switch r {
	case RoleMember, RoleLeader, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// User defines a registered community member.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"` // bcrypt hash, never serialized
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
