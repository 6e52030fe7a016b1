package models

import "time"

// Comment on a post, in insertion order as returned by the server.
type Comment struct {
	ID        any       `json:"id"`
	Author    string    `json:"author,omitempty"`
	Content   string    `json:"content"`
	Likes     int       `json:"likes"`
	UserLiked bool      `json:"userLiked,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

type CommentRequest struct {
	Content string `json:"content"`
}

type CommentResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
	Data    Comment `json:"data"`
}
