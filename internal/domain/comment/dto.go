package comment

type CreateCommentInput struct {
	Content    string  `json:"content" binding:"required"`
	CommentImg *string `json:"commentImg,omitempty"`
}

type UpdateCommentInput struct {
	Content    string  `json:"content" binding:"required"`
	CommentImg *string `json:"commentImg,omitempty"`
}
