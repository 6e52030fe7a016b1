package models

import "time"

// User is the identity half of a session. The fields are opaque to the
// access layer; they are persisted and echoed back as the server sent them.
type User struct {
	ID       any    `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Bio      string `json:"bio,omitempty"`
}

// Profile is the full user record returned by the profile endpoints.
type Profile struct {
	User
	CreatedAt  time.Time  `json:"createdAt,omitempty"`
	LastActive time.Time  `json:"lastActive,omitempty"`
	Stats      *UserStats `json:"stats,omitempty"`
}

type UserStats struct {
	TotalPosts    int `json:"totalPosts"`
	TotalComments int `json:"totalComments"`
	TotalVotes    int `json:"totalVotes"`
}

// ProfileUpdate carries the editable profile fields. AvatarPath, when set,
// is uploaded as a multipart file part.
type ProfileUpdate struct {
	Name       string
	Bio        string
	AvatarPath string
}

// Contributor is one entry of the top-contributors leaderboard.
type Contributor struct {
	ID     any    `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Points int    `json:"points"`
}

type ProfileResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
	Data    Profile `json:"data"`
}

type ContributorsResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Data    []Contributor `json:"data"`
}
