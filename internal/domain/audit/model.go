package audit

import (
	"time"

	"gorm.io/datatypes"
)

// Log records one mutating operation: who did what to which resource,
// with before/after snapshots for the project/ticket/comment/user
// entities.
type Log struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint           `gorm:"index" json:"userId"`
	Action       string         `gorm:"size:50;not null" json:"action"`
	ResourceType string         `gorm:"size:50;not null" json:"resourceType"`
	ResourceID   string         `gorm:"size:100" json:"resourceId"`
	OldData      datatypes.JSON `json:"oldData,omitempty"`
	NewData      datatypes.JSON `json:"newData,omitempty"`
	IPAddress    string         `gorm:"size:64" json:"ipAddress"`
	UserAgent    string         `gorm:"size:300" json:"userAgent"`
	CreatedAt    time.Time      `gorm:"column:create_at;autoCreateTime" json:"createdAt"`
}

func (Log) TableName() string {
	return "audit_logs"
}
