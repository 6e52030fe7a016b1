package models

// Session is the client's record of an authenticated user and their bearer
// token. At most one exists per process; a session missing either half is
// treated as absent everywhere.
type Session struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// IsValid reports whether the session is complete enough to authenticate
// requests with.
func (s *Session) IsValid() bool {
	return s != nil && s.User != nil && len(s.Token) > 0
}

// StoredSession is the durable on-disk layout, kept bit-compatible with the
// platform's web client: {"user": {...}, "data": {"token": "..."}}.
type StoredSession struct {
	User *User       `json:"user"`
	Data SessionData `json:"data"`
}

type SessionData struct {
	Token string `json:"token"`
}

func (s *StoredSession) ToSession() *Session {
	if s == nil {
		return nil
	}

	session := &Session{
		User:  s.User,
		Token: s.Data.Token,
	}

	if !session.IsValid() {
		return nil
	}

	return session
}

func NewStoredSession(session *Session) *StoredSession {
	if !session.IsValid() {
		return nil
	}

	return &StoredSession{
		User: session.User,
		Data: SessionData{Token: session.Token},
	}
}
