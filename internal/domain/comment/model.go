package comment

import (
	"time"

	"github.com/hsinyu-lin/trackdesk/internal/domain/user"
)

// Comment belongs to exactly one ticket. The ticket linkage lives on
// the row itself, so deleting a comment removes it from the ticket's
// sequence in the same write and an orphaned comment cannot exist.
// Sequence order is creation order: comments are listed by ascending
// primary key and never reordered.
type Comment struct {
	CID        uint      `gorm:"primaryKey;column:c_id;autoIncrement" json:"cid"`
	TicketID   uint      `gorm:"column:t_id;not null;index" json:"ticketId"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	CommentImg string    `gorm:"size:300" json:"commentImg,omitempty"`
	CommentBy  uint      `gorm:"not null" json:"commentBy"`
	CreatedAt  time.Time `gorm:"column:create_at;autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"column:update_at;autoUpdateTime" json:"updatedAt"`
}

func (Comment) TableName() string {
	return "comments"
}

type WithAuthor struct {
	Comment
	Author *user.User `json:"author,omitempty"`
}
