package models

import "time"

type VoteDirection string

const (
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

// Post is a reported issue or proposal.
type Post struct {
	ID          any       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Status      string    `json:"status,omitempty"`
	Image       string    `json:"image,omitempty"`
	Author      string    `json:"author,omitempty"`
	Votes       int       `json:"votes"`
	Likes       int       `json:"likes"`
	Comments    int       `json:"comments"`
	Shares      int       `json:"shares"`
	UserVote    string    `json:"userVote,omitempty"`
	UserLiked   bool      `json:"userLiked,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// NewPost carries the fields for reporting an issue. ImagePath, when set, is
// uploaded as a multipart file part.
type NewPost struct {
	Title       string
	Description string
	Category    string
	ImagePath   string
}

type PostsResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   int    `json:"count,omitempty"`
	Data    []Post `json:"data"`
}

type PostResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    Post   `json:"data"`
}
