package ticket

import "time"

type Type string

const (
	TypeBugfix         Type = "bugfix"
	TypeFeature        Type = "feature"
	TypeHotfix         Type = "hotfix"
	TypeServiceRequest Type = "service_request"
)

func (t Type) Valid() bool {
	switch t {
	case TypeBugfix, TypeFeature, TypeHotfix, TypeServiceRequest:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusClosed     Status = "closed"
)

// Valid checks membership in the status enum. Transitions between
// valid statuses are deliberately unconstrained: once an actor is
// allowed to write status at all, any value is legal, including
// reopening a closed ticket.
func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

type Ticket struct {
	TID         uint      `gorm:"primaryKey;column:t_id;autoIncrement" json:"tid"`
	ProjectID   uint      `gorm:"column:p_id;not null;index" json:"projectId"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Type        Type      `gorm:"size:20;not null" json:"type"`
	Priority    Priority  `gorm:"size:10;not null" json:"priority"`
	Status      Status    `gorm:"size:20;default:'open';not null" json:"status"`
	ReportedBy  uint      `gorm:"not null" json:"reportedBy"`
	AssignedTo  *uint     `json:"assignedTo,omitempty"`
	TicketImg   string    `gorm:"size:300" json:"ticketImg,omitempty"`
	CreatedAt   time.Time `gorm:"column:create_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:update_at;autoUpdateTime" json:"updatedAt"`
}

func (Ticket) TableName() string {
	return "tickets"
}
