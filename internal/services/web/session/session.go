// Package session owns the signed-in state of one browser: the login flag
// cookie, the opaque handle cookie and the stored upstream credentials.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/adreach/console/internal/services/web/integration/advapi"
	module "github.com/adreach/console/internal/services/web/module"
	"github.com/adreach/console/internal/services/web/platform/flash"
	"github.com/adreach/console/internal/services/web/platform/httpx"
	"github.com/adreach/console/internal/services/web/platform/requestmeta"
	"github.com/adreach/console/internal/services/web/platform/sessioncookie"
	"github.com/adreach/console/internal/services/web/routepath"
	webstorage "github.com/adreach/console/internal/services/web/storage"
	"github.com/google/uuid"
)

// Config wires a Manager.
type Config struct {
	Store  webstorage.SessionStore
	API    *advapi.Client
	Policy requestmeta.SchemePolicy
	TTL    time.Duration
	Logger *slog.Logger
}

// Manager implements the route guard contract and session lifecycle.
type Manager struct {
	store  webstorage.SessionStore
	api    *advapi.Client
	policy requestmeta.SchemePolicy
	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// Record is a resolved session with decoded upstream credentials.
type Record struct {
	webstorage.Session
	Upstream advapi.Credentials
}

// NewManager validates cfg and returns a Manager.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.Store == nil {
		return nil, errors.New("session store is required")
	}
	if cfg.API == nil {
		return nil, errors.New("advertiser api client is required")
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = sessioncookie.SessionTTL
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		store:  cfg.Store,
		api:    cfg.API,
		policy: cfg.Policy,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}, nil
}

// IsAuthenticated reports whether the browser carries login=true. No other
// check is made: an expired upstream session is detected on the next API call.
func (m *Manager) IsAuthenticated(r *http.Request) bool {
	return sessioncookie.HasFlag(r)
}

// Login stores a session for user and sets both session cookies.
func (m *Manager) Login(ctx context.Context, w http.ResponseWriter, r *http.Request, user advapi.User, upstream advapi.Credentials) error {
	raw, err := json.Marshal(upstream)
	if err != nil {
		return fmt.Errorf("encode upstream credentials: %w", err)
	}
	if previous, ok := sessioncookie.Session.Read(r); ok {
		m.deleteRecord(ctx, previous)
	}
	now := m.now().UTC()
	record := webstorage.Session{
		ID:           m.newID(),
		AdvertiserID: strings.TrimSpace(user.ID),
		DisplayName:  strings.TrimSpace(user.Name),
		Phone:        strings.TrimSpace(user.Phone),
		Credentials:  raw,
		CreatedAt:    now,
		ExpiresAt:    now.Add(m.ttl),
	}
	if err := m.store.SaveSession(ctx, record); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	sessioncookie.Session.Write(w, r, record.ID, m.policy)
	sessioncookie.Flag.Write(w, r, sessioncookie.FlagValue, m.policy)
	m.logger.Info("advertiser signed in", "advertiser_id", record.AdvertiserID)
	return nil
}

// Logout invalidates the upstream session on a best-effort basis and always
// clears local state.
func (m *Manager) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if record, ok := m.Resolve(ctx, r); ok {
		api := advapi.SessionFromContext(ctx)
		if api == nil {
			api = m.api.Session(record.Upstream)
		}
		if err := api.LogOut(ctx); err != nil {
			m.logger.Warn("remote logout failed", "advertiser_id", record.AdvertiserID, "error", err)
		}
	}
	m.clear(ctx, w, r)
}

// Expire drops local state after the API rejected the stored credentials and
// sends the browser to the login page.
func (m *Manager) Expire(w http.ResponseWriter, r *http.Request) {
	m.clear(httpx.RequestContext(r), w, r)
	flash.WriteWithPolicy(w, r, flash.Notice{Kind: flash.KindWarning, Key: advapi.KeyExpired}, m.policy)
	httpx.WriteRedirect(w, r, routepath.Login)
}

// Resolve returns the session record of the request.
func (m *Manager) Resolve(ctx context.Context, r *http.Request) (Record, bool) {
	if state := stateFrom(ctx); state != nil {
		if state.dropped {
			return Record{}, false
		}
		return state.record, true
	}
	id, ok := sessioncookie.Session.Read(r)
	if !ok {
		return Record{}, false
	}
	stored, found, err := m.store.LoadSession(ctx, id)
	if err != nil {
		m.logger.Warn("load session failed", "error", err)
		return Record{}, false
	}
	if !found {
		return Record{}, false
	}
	record := Record{Session: stored}
	if len(stored.Credentials) > 0 {
		if err := json.Unmarshal(stored.Credentials, &record.Upstream); err != nil {
			m.logger.Warn("decode session credentials failed", "error", err)
		}
	}
	return record, true
}

// Middleware resolves the session once per request, attaches an API session
// to the context and persists cookies the API rotated during the request.
func (m *Manager) Middleware() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !m.IsAuthenticated(r) {
				next.ServeHTTP(w, r)
				return
			}
			record, ok := m.Resolve(r.Context(), r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			api := m.api.Session(record.Upstream)
			state := &requestState{record: record}
			ctx := withState(advapi.WithSession(r.Context(), api), state)
			next.ServeHTTP(w, r.WithContext(ctx))
			if state.dropped || !api.Changed() {
				return
			}
			// state.record carries any Remember made by the handler.
			m.persistRotated(context.WithoutCancel(ctx), state.record, api.Credentials())
		})
	}
}

// Viewer returns app chrome data for the request.
func (m *Manager) Viewer(r *http.Request) module.Viewer {
	record, ok := m.Resolve(httpx.RequestContext(r), r)
	if !ok {
		return module.Viewer{}
	}
	return module.Viewer{
		AdvertiserID: record.AdvertiserID,
		DisplayName:  record.DisplayName,
		Phone:        record.Phone,
	}
}

// AdvertiserID returns the signed-in advertiser id, or "".
func (m *Manager) AdvertiserID(r *http.Request) string {
	record, ok := m.Resolve(httpx.RequestContext(r), r)
	if !ok {
		return ""
	}
	return record.AdvertiserID
}

// Remember updates the stored display name after a profile change.
func (m *Manager) Remember(ctx context.Context, r *http.Request, user advapi.User) {
	record, ok := m.Resolve(ctx, r)
	if !ok {
		return
	}
	changed := false
	if id := strings.TrimSpace(user.ID); id != "" && id != record.AdvertiserID {
		record.AdvertiserID = id
		changed = true
	}
	if name := strings.TrimSpace(user.Name); name != "" && name != record.DisplayName {
		record.DisplayName = name
		changed = true
	}
	if !changed {
		return
	}
	if err := m.store.SaveSession(ctx, record.Session); err != nil {
		m.logger.Warn("update session failed", "error", err)
		return
	}
	if state := stateFrom(ctx); state != nil {
		state.record = record
	}
}

func (m *Manager) persistRotated(ctx context.Context, record Record, upstream advapi.Credentials) {
	raw, err := json.Marshal(upstream)
	if err != nil {
		m.logger.Warn("encode rotated credentials failed", "error", err)
		return
	}
	record.Session.Credentials = raw
	if err := m.store.SaveSession(ctx, record.Session); err != nil {
		m.logger.Warn("persist rotated credentials failed", "error", err)
	}
}

func (m *Manager) clear(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if id, ok := sessioncookie.Session.Read(r); ok {
		m.deleteRecord(ctx, id)
	}
	if state := stateFrom(ctx); state != nil {
		state.dropped = true
	}
	sessioncookie.Session.Clear(w, r, m.policy)
	sessioncookie.Flag.Clear(w, r, m.policy)
}

func (m *Manager) deleteRecord(ctx context.Context, id string) {
	if err := m.store.DeleteSession(ctx, id); err != nil {
		m.logger.Warn("delete session failed", "error", err)
	}
}

type requestState struct {
	record  Record
	dropped bool
}

type stateContextKey struct{}

func withState(ctx context.Context, state *requestState) context.Context {
	return context.WithValue(ctx, stateContextKey{}, state)
}

func stateFrom(ctx context.Context) *requestState {
	if ctx == nil {
		return nil
	}
	state, _ := ctx.Value(stateContextKey{}).(*requestState)
	return state
}
