package dto

type CommentRequest struct {
	Text string `json:"comment_text" form:"comment_text"`
}
