package models

type SearchType string

const (
	SearchAll       SearchType = "all"
	SearchIssues    SearchType = "issues"
	SearchPeople    SearchType = "people"
	SearchTopics    SearchType = "topics"
	SearchLocations SearchType = "locations"
)

type SearchIssue struct {
	ID             any    `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	Status         string `json:"status,omitempty"`
	Category       string `json:"category,omitempty"`
	Author         string `json:"author,omitempty"`
	AuthorUsername string `json:"authorUsername,omitempty"`
	PostedAt       string `json:"postedAt,omitempty"`
	Votes          int    `json:"votes"`
	Comments       int    `json:"comments"`
}

type SearchPerson struct {
	ID        any    `json:"id"`
	Name      string `json:"name"`
	Username  string `json:"username,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Followers int    `json:"followers"`
}

type SearchTopic struct {
	ID          any    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Count       int    `json:"count"`
}

type SearchLocation struct {
	ID    any    `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type,omitempty"`
	Count int    `json:"count"`
}

type SearchResults struct {
	Issues    []SearchIssue    `json:"issues,omitempty"`
	People    []SearchPerson   `json:"people,omitempty"`
	Topics    []SearchTopic    `json:"topics,omitempty"`
	Locations []SearchLocation `json:"locations,omitempty"`
}

type SearchResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Data    SearchResults `json:"data"`
}

type SuggestionsResponse struct {
	Success bool     `json:"success"`
	Data    []string `json:"data"`
}
