package project

import "time"

type Status string

const (
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOngoing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Project struct {
	PID         uint      `gorm:"primaryKey;column:p_id;autoIncrement" json:"pid"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Status      Status    `gorm:"size:20;default:'ongoing';not null" json:"status"`
	CreatedAt   time.Time `gorm:"column:create_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:update_at;autoUpdateTime" json:"updatedAt"`
}

func (Project) TableName() string {
	return "projects"
}

type MemberRole string

const (
	MemberRoleOwner  MemberRole = "owner"
	MemberRoleMember MemberRole = "member"
)

// Member is one row of the authoritative membership ledger. A user's
// project set and a project's owner/member sets are both views over
// this table, so every membership change is a single row write and the
// two sides can never drift apart. The composite key makes owner and
// member true sets; a user may hold both roles in the same project.
type Member struct {
	ProjectID uint       `gorm:"primaryKey;column:p_id" json:"projectId"`
	UserID    uint       `gorm:"primaryKey;column:u_id" json:"userId"`
	Role      MemberRole `gorm:"primaryKey;size:20;not null" json:"role"`
	CreatedAt time.Time  `gorm:"column:create_at;autoCreateTime" json:"createdAt"`
}

func (Member) TableName() string {
	return "project_members"
}
