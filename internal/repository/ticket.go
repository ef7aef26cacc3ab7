package repository

import (
	"github.com/hsinyu-lin/trackdesk/internal/domain/ticket"
	"gorm.io/gorm"
)

type TicketRepo interface {
	Create(t *ticket.Ticket) error
	// GetInProject resolves a ticket only through its owning project;
	// a ticket id from another project does not resolve.
	GetInProject(pid, tid uint) (ticket.Ticket, error)
	ListByProject(pid uint) ([]ticket.Ticket, error)
	Save(t *ticket.Ticket) error
	WithTx(tx *gorm.DB) TicketRepo
}

type DBTicketRepo struct {
	db *gorm.DB
}

func NewTicketRepo(db *gorm.DB) *DBTicketRepo {
	return &DBTicketRepo{db: db}
}

func (r *DBTicketRepo) Create(t *ticket.Ticket) error {
	return r.db.Create(t).Error
}

func (r *DBTicketRepo) GetInProject(pid, tid uint) (ticket.Ticket, error) {
	var t ticket.Ticket
	err := r.db.Where("t_id = ? AND p_id = ?", tid, pid).First(&t).Error
	return t, err
}

func (r *DBTicketRepo) ListByProject(pid uint) ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	err := r.db.Where("p_id = ?", pid).Order("t_id ASC").Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) Save(t *ticket.Ticket) error {
	return r.db.Save(t).Error
}

func (r *DBTicketRepo) WithTx(tx *gorm.DB) TicketRepo {
	if tx == nil {
		return r
	}
	return &DBTicketRepo{db: tx}
}
