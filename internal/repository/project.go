package repository

import (
	"github.com/hsinyu-lin/trackdesk/internal/domain/project"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	GetByID(id uint) (project.Project, error)
	Create(p *project.Project) error
	Save(p *project.Project) error
	WithTx(tx *gorm.DB) ProjectRepo
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{db: db}
}

func (r *DBProjectRepo) GetByID(id uint) (project.Project, error) {
	var p project.Project
	err := r.db.First(&p, id).Error
	return p, err
}

func (r *DBProjectRepo) Create(p *project.Project) error {
	return r.db.Create(p).Error
}

func (r *DBProjectRepo) Save(p *project.Project) error {
	return r.db.Save(p).Error
}

func (r *DBProjectRepo) WithTx(tx *gorm.DB) ProjectRepo {
	if tx == nil {
		return r
	}
	return &DBProjectRepo{db: tx}
}
