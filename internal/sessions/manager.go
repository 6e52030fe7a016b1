package sessions

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/manthan-io/cli/internal/common"
	"github.com/manthan-io/cli/internal/config"
	"github.com/manthan-io/cli/internal/models"
)

// Manager is the single owner of the process-wide session: the only
// component that creates, refreshes, or destroys it. Everything else reads
// through Current/Token.
//
// Auth calls go through the manager's own bare client so that login,
// register and refresh never ride the 401-retry pipeline they back.
type Manager struct {
	store    *Store
	client   *resty.Client
	onLogout func()

	refreshGroup singleflight.Group

	mu      sync.RWMutex
	current *models.Session
}

// NewManager loads any persisted session optimistically: a well-formed
// record means "logged in" without a network round trip, and validity is
// confirmed lazily by the first 401. onLogout is the navigation collaborator
// fired when the session is destroyed; nil is allowed.
func NewManager(cfg *config.Config, store *Store, onLogout func()) *Manager {

	client := resty.New().
		SetBaseURL(cfg.GetAPIEndpoint()).
		SetTimeout(cfg.GetAPITimeout()).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	m := &Manager{
		store:    store,
		client:   client,
		onLogout: onLogout,
		current:  store.Load(),
	}

	if m.current != nil {
		logrus.WithFields(logrus.Fields{
			"user": m.current.User.Name,
		}).Debugln("Restored persisted session")
	}

	return m
}

// Current returns the active session, or nil when anonymous.
func (m *Manager) Current() *models.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Token returns the active bearer token, or empty when anonymous.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return ""
	}
	return m.current.Token
}

// Login exchanges credentials for a session and persists it. A failure
// never persists anything.
func (m *Manager) Login(ctx context.Context, email string, password string) (*models.Session, error) {

	if err := common.ValidateCredentials(email, password); err != nil {
		return nil, err
	}

	return m.authenticate(ctx, "/auth/login", &models.LoginRequest{
		Email:    email,
		Password: password,
	}, "login failed")
}

// Register creates an account and persists the resulting session. Same
// contract as Login.
func (m *Manager) Register(ctx context.Context, name string, email string, password string) (*models.Session, error) {

	if err := common.ValidateRegistration(name, email, password); err != nil {
		return nil, err
	}

	return m.authenticate(ctx, "/auth/register", &models.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}, "registration failed")
}

func (m *Manager) authenticate(ctx context.Context, path string, body any, defaultMessage string) (*models.Session, error) {

	var result models.AuthResponse
	var errorResponse models.ErrorResponse

	res, err := m.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		SetError(&errorResponse).
		Post(path)

	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"path": path,
		}).Errorln("Auth request failed")
		return nil, common.NewNetworkError(err)
	}

	if res.IsError() {
		message := errorResponse.Message
		if len(message) == 0 {
			message = defaultMessage
		}
		return nil, common.NewServerError(res.StatusCode(), message)
	}

	if !result.Success || len(result.Data.Token) == 0 || result.Data.User == nil {
		return nil, common.NewServerError(res.StatusCode(), "invalid response from server")
	}

	session := &models.Session{
		User:  result.Data.User,
		Token: result.Data.Token,
	}

	if err := m.store.Save(session); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	m.mu.Lock()
	m.current = session
	m.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"user": session.User.Name,
		"path": path,
	}).Debugln("Session established")

	return session, nil
}

// Refresh exchanges the current token for a new one. Concurrent calls are
// coalesced: at most one refresh is in flight, and every waiter observes
// the one outcome. Any failure destroys the session before returning.
func (m *Manager) Refresh(ctx context.Context) error {

	_, err, _ := m.refreshGroup.Do("refresh", func() (any, error) {
		return nil, m.refresh(ctx)
	})

	return err
}

func (m *Manager) refresh(ctx context.Context) error {

	token := m.Token()
	if len(token) == 0 {
		return common.NewAuthenticationError("no active session to refresh", nil)
	}

	logrus.Debugln("Refreshing session token")

	var result models.RefreshResponse

	res, err := m.client.R().
		SetContext(ctx).
		SetHeader("Authorization", common.BearerToken(token)).
		SetResult(&result).
		Post("/auth/refresh")

	if err != nil || res.IsError() || len(result.Data.Token) == 0 {
		if err == nil {
			err = fmt.Errorf("refresh rejected with status %d", res.StatusCode())
		}

		logrus.WithError(err).Warnln("Token refresh failed, destroying session")
		m.Logout()

		return common.NewAuthenticationError("your session has expired, please log in again", err)
	}

	// Overwrite the token only; the identity half of the record is untouched.
	m.mu.Lock()
	if m.current == nil {
		m.mu.Unlock()
		return common.NewAuthenticationError("session destroyed during refresh", nil)
	}
	refreshed := &models.Session{
		User:  m.current.User,
		Token: result.Data.Token,
	}
	m.current = refreshed
	m.mu.Unlock()

	if err := m.store.Save(refreshed); err != nil {
		logrus.WithError(err).Errorln("Failed to persist refreshed session")
	}

	return nil
}

// Logout destroys the session and notifies the navigation collaborator.
// Calling it while anonymous is a no-op, so the login redirect fires at
// most once per session.
func (m *Manager) Logout() {
	m.mu.Lock()
	hadSession := m.current != nil
	m.current = nil
	m.mu.Unlock()

	if err := m.store.Clear(); err != nil {
		logrus.WithError(err).Errorln("Failed to clear session record")
	}

	if hadSession {
		logrus.Debugln("Session destroyed")
		if m.onLogout != nil {
			m.onLogout()
		}
	}
}
