package repository

import (
	"github.com/hsinyu-lin/trackdesk/internal/domain/audit"
	"gorm.io/gorm"
)

type AuditRepo interface {
	CreateAuditLog(entry *audit.Log) error
	ListRecent(limit, offset int) ([]audit.Log, error)
	WithTx(tx *gorm.DB) AuditRepo
}

type DBAuditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *DBAuditRepo {
	return &DBAuditRepo{db: db}
}

func (r *DBAuditRepo) CreateAuditLog(entry *audit.Log) error {
	return r.db.Create(entry).Error
}

func (r *DBAuditRepo) ListRecent(limit, offset int) ([]audit.Log, error) {
	var logs []audit.Log
	err := r.db.
		Order("create_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error
	return logs, err
}

func (r *DBAuditRepo) WithTx(tx *gorm.DB) AuditRepo {
	if tx == nil {
		return r
	}
	return &DBAuditRepo{db: tx}
}
