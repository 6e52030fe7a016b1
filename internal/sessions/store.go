package sessions

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/manthan-io/cli/internal/models"
)

var ErrPartialSession = fmt.Errorf("refusing to persist a partial session")

// Store is the durable mirror of the current session: one JSON document at
// a fixed path. It never talks to the network and never validates tokens
// beyond "non-empty". The Manager is its only writer.
type Store struct {
	lock sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the persisted session, or nil when the record is missing,
// malformed, or partial. A bad record is removed so the next load is clean;
// callers never see an error for it.
func (s *Store) Load() *models.Session {
	s.lock.Lock()
	defer s.lock.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logrus.WithError(err).WithFields(logrus.Fields{
				"path": s.path,
			}).Warnln("Failed to read session record")
		}
		return nil
	}

	var stored models.StoredSession
	if err := json.Unmarshal(data, &stored); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"path": s.path,
		}).Warnln("Malformed session record, clearing")
		s.removeLocked()
		return nil
	}

	session := stored.ToSession()
	if session == nil {
		logrus.WithFields(logrus.Fields{
			"path": s.path,
		}).Warnln("Partial session record, clearing")
		s.removeLocked()
		return nil
	}

	return session
}

// Save persists the session atomically from the caller's perspective: the
// record is written to a temp file and renamed into place, so a concurrent
// Load never observes a half-written document.
func (s *Store) Save(session *models.Session) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	stored := models.NewStoredSession(session)
	if stored == nil {
		return ErrPartialSession
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}

	return os.Rename(tmp, s.path)
}

// Clear removes the persisted record. Clearing an absent record is a no-op.
func (s *Store) Clear() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.removeLocked()
}

func (s *Store) removeLocked() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
