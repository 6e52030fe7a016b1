package models

import "time"

type Notification struct {
	ID        any       `json:"id"`
	Type      string    `json:"type,omitempty"`
	Message   string    `json:"message"`
	Sender    string    `json:"sender,omitempty"`
	Image     string    `json:"image,omitempty"`
	URL       string    `json:"url,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// NotificationQuery narrows a notification listing. Read is a tri-state:
// nil means both read and unread.
type NotificationQuery struct {
	Limit int
	Skip  int
	Read  *bool
}

type NotificationsResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Count   int            `json:"count,omitempty"`
	Data    []Notification `json:"data"`
}

type UnreadCountResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Count int `json:"count"`
	} `json:"data"`
}
