package user

import (
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleUser      Role = "user"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleModerator, RoleUser:
		return true
	}
	return false
}

// Elevated reports whether the role may create projects and manage
// project status and membership.
func (r Role) Elevated() bool {
	return r == RoleAdmin || r == RoleModerator
}

type User struct {
	UID          uint      `gorm:"primaryKey;column:u_id;autoIncrement" json:"uid"`
	Username     string    `gorm:"size:50;not null;unique" json:"username"`
	FirstName    string    `gorm:"size:50;not null" json:"firstName"`
	LastName     string    `gorm:"size:50;not null" json:"lastName"`
	Email        string    `gorm:"size:100;not null;unique" json:"email"`
	Password     string    `gorm:"size:255;not null" json:"-"`
	ProfileImage string    `gorm:"size:300" json:"profileImage,omitempty"`
	Role         Role      `gorm:"size:20;default:'user';not null" json:"role"`
	CreatedAt    time.Time `gorm:"column:create_at;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:update_at;autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// ClassifyRole decides the role tier assigned at signup. Accounts whose
// email or username carries the "superadmin" token are promoted to
// admin; everyone else starts as a regular user.
func ClassifyRole(email, username string) Role {
	if strings.Contains(strings.ToLower(email), "superadmin") ||
		strings.Contains(strings.ToLower(username), "superadmin") {
		return RoleAdmin
	}
	return RoleUser
}
