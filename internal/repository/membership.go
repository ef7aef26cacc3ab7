package repository

import (
	"github.com/hsinyu-lin/trackdesk/internal/domain/project"
	"github.com/hsinyu-lin/trackdesk/internal/domain/user"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MembershipRepo is the authoritative ledger of who belongs to which
// project and in what capacity. Both User.projects and
// Project.owner/members are views over this table.
type MembershipRepo interface {
	// Add inserts a ledger row; inserting an existing row is a no-op.
	Add(m *project.Member) error
	// Remove deletes a ledger row, reporting whether one existed.
	Remove(pid, uid uint, role project.MemberRole) (bool, error)
	// IsParticipant reports whether uid holds any role in pid.
	IsParticipant(uid, pid uint) (bool, error)
	HasRole(uid, pid uint, role project.MemberRole) (bool, error)
	ListUsers(pid uint, role project.MemberRole) ([]user.User, error)
	ListProjectsByUser(uid uint) ([]project.Project, error)
	WithTx(tx *gorm.DB) MembershipRepo
}

type DBMembershipRepo struct {
	db *gorm.DB
}

func NewMembershipRepo(db *gorm.DB) *DBMembershipRepo {
	return &DBMembershipRepo{db: db}
}

func (r *DBMembershipRepo) Add(m *project.Member) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(m).Error
}

func (r *DBMembershipRepo) Remove(pid, uid uint, role project.MemberRole) (bool, error) {
	res := r.db.
		Where("p_id = ? AND u_id = ? AND role = ?", pid, uid, role).
		Delete(&project.Member{})
	return res.RowsAffected > 0, res.Error
}

func (r *DBMembershipRepo) IsParticipant(uid, pid uint) (bool, error) {
	var count int64
	err := r.db.Model(&project.Member{}).
		Where("p_id = ? AND u_id = ?", pid, uid).
		Count(&count).Error
	return count > 0, err
}

func (r *DBMembershipRepo) HasRole(uid, pid uint, role project.MemberRole) (bool, error) {
	var count int64
	err := r.db.Model(&project.Member{}).
		Where("p_id = ? AND u_id = ? AND role = ?", pid, uid, role).
		Count(&count).Error
	return count > 0, err
}

func (r *DBMembershipRepo) ListUsers(pid uint, role project.MemberRole) ([]user.User, error) {
	var users []user.User
	err := r.db.Table("users u").
		Select("u.*").
		Joins("JOIN project_members pm ON pm.u_id = u.u_id").
		Where("pm.p_id = ? AND pm.role = ?", pid, role).
		Order("pm.create_at ASC").
		Scan(&users).Error
	return users, err
}

func (r *DBMembershipRepo) ListProjectsByUser(uid uint) ([]project.Project, error) {
	var projects []project.Project
	err := r.db.Table("projects p").
		Select("DISTINCT p.*").
		Joins("JOIN project_members pm ON pm.p_id = p.p_id").
		Where("pm.u_id = ?", uid).
		Scan(&projects).Error
	return projects, err
}

func (r *DBMembershipRepo) WithTx(tx *gorm.DB) MembershipRepo {
	if tx == nil {
		return r
	}
	return &DBMembershipRepo{db: tx}
}
