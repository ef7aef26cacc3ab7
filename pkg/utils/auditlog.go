package utils

import (
	"encoding/json"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/hsinyu-lin/trackdesk/internal/domain/audit"
	"github.com/hsinyu-lin/trackdesk/internal/repository"
)

// LogAuditWithConsole captures request metadata synchronously and
// persists the audit row in the background; tests override the var.
var LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, repos repository.AuditRepo) {
	var userID uint
	if claims, err := GetClaims(c); err == nil {
		userID = claims.UserID
	}
	ip := c.ClientIP()
	ua := c.GetHeader("User-Agent")

	go func() {
		if err := LogAudit(userID, ip, ua, action, resourceType, resourceID, oldData, newData, repos); err != nil {
			log.Printf("[audit] %s %s failed: %v", action, resourceType, err)
		}
	}()
}

var LogAudit = func(userID uint, ip, ua, action, resourceType, resourceID string, before, after interface{}, repos repository.AuditRepo) error {
	var oldData, newData []byte
	var err error

	if before != nil {
		oldData, err = json.Marshal(before)
		if err != nil {
			log.Printf("Audit marshal oldData error: %v", err)
		}
	}
	if after != nil {
		newData, err = json.Marshal(after)
		if err != nil {
			log.Printf("Audit marshal newData error: %v", err)
		}
	}

	entry := &audit.Log{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      oldData,
		NewData:      newData,
		IPAddress:    ip,
		UserAgent:    ua,
	}
	return repos.CreateAuditLog(entry)
}
