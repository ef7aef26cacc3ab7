package repository

import (
	"github.com/hsinyu-lin/trackdesk/internal/domain/comment"
	"gorm.io/gorm"
)

type CommentRepo interface {
	Create(cm *comment.Comment) error
	// GetOwnedInTicket resolves a comment only when it belongs to the
	// ticket and was written by authorID; anything else is a miss.
	GetOwnedInTicket(tid, cid, authorID uint) (comment.Comment, error)
	// DeleteOwned removes the author's comment from the ticket,
	// reporting whether a row matched.
	DeleteOwned(tid, cid, authorID uint) (bool, error)
	// ListByTicket returns the ticket's comments in creation order.
	ListByTicket(tid uint) ([]comment.Comment, error)
	Save(cm *comment.Comment) error
	WithTx(tx *gorm.DB) CommentRepo
}

type DBCommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *DBCommentRepo {
	return &DBCommentRepo{db: db}
}

func (r *DBCommentRepo) Create(cm *comment.Comment) error {
	return r.db.Create(cm).Error
}

func (r *DBCommentRepo) GetOwnedInTicket(tid, cid, authorID uint) (comment.Comment, error) {
	var cm comment.Comment
	err := r.db.
		Where("c_id = ? AND t_id = ? AND comment_by = ?", cid, tid, authorID).
		First(&cm).Error
	return cm, err
}

func (r *DBCommentRepo) DeleteOwned(tid, cid, authorID uint) (bool, error) {
	res := r.db.
		Where("c_id = ? AND t_id = ? AND comment_by = ?", cid, tid, authorID).
		Delete(&comment.Comment{})
	return res.RowsAffected > 0, res.Error
}

func (r *DBCommentRepo) ListByTicket(tid uint) ([]comment.Comment, error) {
	var comments []comment.Comment
	err := r.db.Where("t_id = ?", tid).Order("c_id ASC").Find(&comments).Error
	return comments, err
}

func (r *DBCommentRepo) Save(cm *comment.Comment) error {
	return r.db.Save(cm).Error
}

func (r *DBCommentRepo) WithTx(tx *gorm.DB) CommentRepo {
	if tx == nil {
		return r
	}
	return &DBCommentRepo{db: tx}
}
