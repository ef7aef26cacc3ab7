package repository

import (
	"github.com/hsinyu-lin/trackdesk/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetByID(id uint) (user.User, error)
	GetByUsername(username string) (user.User, error)
	GetByEmail(email string) (user.User, error)
	// GetByLogin matches the login string against email or username.
	GetByLogin(login string) (user.User, error)
	ListAdmins() ([]user.User, error)
	// ListNonAdmins returns non-admin users, newest first.
	ListNonAdmins() ([]user.User, error)
	Create(u *user.User) error
	Save(u *user.User) error
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

func (r *DBUserRepo) GetByID(id uint) (user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	return u, err
}

func (r *DBUserRepo) GetByUsername(username string) (user.User, error) {
	var u user.User
	err := r.db.Where("username = ?", username).First(&u).Error
	return u, err
}

func (r *DBUserRepo) GetByEmail(email string) (user.User, error) {
	var u user.User
	err := r.db.Where("email = ?", email).First(&u).Error
	return u, err
}

func (r *DBUserRepo) GetByLogin(login string) (user.User, error) {
	var u user.User
	err := r.db.Where("email = ? OR username = ?", login, login).First(&u).Error
	return u, err
}

func (r *DBUserRepo) ListAdmins() ([]user.User, error) {
	var users []user.User
	err := r.db.Where("role = ?", user.RoleAdmin).Find(&users).Error
	return users, err
}

func (r *DBUserRepo) ListNonAdmins() ([]user.User, error) {
	var users []user.User
	err := r.db.
		Where("role <> ?", user.RoleAdmin).
		Order("create_at DESC").
		Find(&users).Error
	return users, err
}

func (r *DBUserRepo) Create(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *DBUserRepo) Save(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{db: tx}
}
