package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/manthan-io/cli/internal/common"
	"github.com/manthan-io/cli/internal/config"
	"github.com/manthan-io/cli/internal/models"
)

func testManager(t *testing.T, serverURL string, onLogout func()) (*Manager, *Store) {
	t.Helper()

	cfg := config.DefaultConfig()
	if err := cfg.SetAPIEndpoint(serverURL); err != nil {
		t.Fatalf("Failed to set endpoint: %v", err)
	}

	store := NewStore(filepath.Join(t.TempDir(), "session.json"))
	return NewManager(cfg, store, onLogout), store
}

func TestManager_LoginPersistsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode login body: %v", err)
		}
		if req.Email != "a@b.com" || req.Password != "x" {
			t.Errorf("Unexpected credentials: %+v", req)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"token":"abc","user":{"id":1,"name":"A"}}}`))
	}))
	defer server.Close()

	manager, store := testManager(t, server.URL, nil)

	session, err := manager.Login(context.Background(), "a@b.com", "x")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if session.Token != "abc" || session.User.Name != "A" {
		t.Errorf("Unexpected session: %+v", session)
	}
	if manager.Current() != session {
		t.Error("Expected Current to return the new session")
	}

	persisted := store.Load()
	if persisted == nil || persisted.Token != "abc" || persisted.User.Name != "A" {
		t.Errorf("Persisted session does not match: %+v", persisted)
	}
}

func TestManager_LoginFailureDoesNotPersist(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{
			name:   "server rejects credentials",
			status: http.StatusUnauthorized,
			body:   `{"success":false,"message":"Invalid credentials"}`,
		},
		{
			name:   "success without token",
			status: http.StatusOK,
			body:   `{"success":true,"data":{"user":{"id":1,"name":"A"}}}`,
		},
		{
			name:   "success without user",
			status: http.StatusOK,
			body:   `{"success":true,"data":{"token":"abc"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			manager, store := testManager(t, server.URL, nil)

			if _, err := manager.Login(context.Background(), "a@b.com", "x"); err == nil {
				t.Fatal("Expected login to fail")
			}
			if manager.Current() != nil {
				t.Error("Expected no session")
			}
			if store.Load() != nil {
				t.Error("Expected nothing persisted")
			}
		})
	}
}

func TestManager_LoginServerMessageSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"Invalid credentials"}`))
	}))
	defer server.Close()

	manager, _ := testManager(t, server.URL, nil)

	_, err := manager.Login(context.Background(), "a@b.com", "wrong-password")
	if err == nil {
		t.Fatal("Expected error")
	}
	if err.Error() != "Invalid credentials" {
		t.Errorf("Expected server message, got %q", err.Error())
	}
}

func TestManager_LoginValidatesLocally(t *testing.T) {
	manager, _ := testManager(t, "http://localhost:0", nil)

	_, err := manager.Login(context.Background(), "not-an-email", "x")
	if err == nil {
		t.Fatal("Expected validation error")
	}

	var validationErr *common.ValidationError
	if !errors.As(err, &validationErr) {
		t.Errorf("Expected ValidationError, got %T", err)
	}
}

func TestManager_RegisterPersistsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/register" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"token":"abc","user":{"id":2,"name":"B"}}}`))
	}))
	defer server.Close()

	manager, _ := testManager(t, server.URL, nil)

	session, err := manager.Register(context.Background(), "B", "b@c.com", "secret1")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if session.User.Name != "B" {
		t.Errorf("Unexpected session: %+v", session)
	}
}

func TestManager_RefreshOverwritesTokenOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/refresh" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer old" {
			t.Errorf("Expected old bearer on refresh, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"token":"new"}}`))
	}))
	defer server.Close()

	manager, store := testManager(t, server.URL, nil)

	seed := &models.Session{User: &models.User{Name: "A", Email: "a@b.com"}, Token: "old"}
	if err := store.Save(seed); err != nil {
		t.Fatalf("Failed to seed session: %v", err)
	}
	manager.mu.Lock()
	manager.current = seed
	manager.mu.Unlock()

	if err := manager.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	current := manager.Current()
	if current.Token != "new" {
		t.Errorf("Expected refreshed token, got %q", current.Token)
	}
	if current.User.Name != "A" || current.User.Email != "a@b.com" {
		t.Errorf("Identity fields must be untouched: %+v", current.User)
	}

	persisted := store.Load()
	if persisted == nil || persisted.Token != "new" || persisted.User.Name != "A" {
		t.Errorf("Persisted session does not match: %+v", persisted)
	}
}

func TestManager_RefreshFailureDestroysSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	var logouts int32
	manager, store := testManager(t, server.URL, func() {
		atomic.AddInt32(&logouts, 1)
	})

	seed := &models.Session{User: &models.User{Name: "A"}, Token: "old"}
	store.Save(seed)
	manager.mu.Lock()
	manager.current = seed
	manager.mu.Unlock()

	err := manager.Refresh(context.Background())
	if err == nil {
		t.Fatal("Expected refresh to fail")
	}
	if !common.IsAuthenticationError(err) {
		t.Errorf("Expected AuthenticationError, got %T", err)
	}

	if manager.Current() != nil {
		t.Error("Expected session to be destroyed")
	}
	if store.Load() != nil {
		t.Error("Expected persisted record to be cleared")
	}
	if got := atomic.LoadInt32(&logouts); got != 1 {
		t.Errorf("Expected logout hook to fire exactly once, fired %d times", got)
	}
}

func TestManager_RefreshCoalescesConcurrentCalls(t *testing.T) {
	var refreshCalls int32
	release := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&refreshCalls, 1)
		<-release
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"token":"new"}}`))
	}))
	defer server.Close()

	manager, store := testManager(t, server.URL, nil)

	seed := &models.Session{User: &models.User{Name: "A"}, Token: "old"}
	store.Save(seed)
	manager.mu.Lock()
	manager.current = seed
	manager.mu.Unlock()

	const workers = 8
	started := make(chan struct{}, workers)
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			started <- struct{}{}
			errs[i] = manager.Refresh(context.Background())
		}(i)
	}

	for i := 0; i < workers; i++ {
		<-started
	}
	// Give every worker time to reach the coalescing point before the
	// in-flight refresh is allowed to complete.
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("Worker %d got error: %v", i, err)
		}
	}

	if got := atomic.LoadInt32(&refreshCalls); got != 1 {
		t.Errorf("Expected exactly one upstream refresh call, got %d", got)
	}
	if manager.Token() != "new" {
		t.Errorf("Expected shared refreshed token, got %q", manager.Token())
	}
}

func TestManager_RefreshWithoutSession(t *testing.T) {
	manager, _ := testManager(t, "http://localhost:0", nil)

	err := manager.Refresh(context.Background())
	if err == nil {
		t.Fatal("Expected error refreshing anonymous session")
	}
	if !common.IsAuthenticationError(err) {
		t.Errorf("Expected AuthenticationError, got %T", err)
	}
}

func TestManager_LogoutIsIdempotent(t *testing.T) {
	var logouts int32
	manager, store := testManager(t, "http://localhost:0", func() {
		atomic.AddInt32(&logouts, 1)
	})

	seed := &models.Session{User: &models.User{Name: "A"}, Token: "abc"}
	store.Save(seed)
	manager.mu.Lock()
	manager.current = seed
	manager.mu.Unlock()

	manager.Logout()
	manager.Logout()

	if manager.Current() != nil {
		t.Error("Expected nil session after logout")
	}
	if store.Load() != nil {
		t.Error("Expected no persisted record after logout")
	}
	if got := atomic.LoadInt32(&logouts); got != 1 {
		t.Errorf("Expected one logout notification, got %d", got)
	}
}

func TestManager_RestoresPersistedSession(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.SetAPIEndpoint("http://localhost:0")

	store := NewStore(filepath.Join(t.TempDir(), "session.json"))
	store.Save(&models.Session{User: &models.User{Name: "A"}, Token: "abc"})

	manager := NewManager(cfg, store, nil)

	current := manager.Current()
	if current == nil || current.Token != "abc" {
		t.Errorf("Expected restored session, got %+v", current)
	}
}
