package session

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/shopmini/storefront/logger"
	"github.com/shopmini/storefront/models"
)

// CookieName carries the session id between requests.
const CookieName = "sid"

// Store persists sessions by id. Load returns (nil, nil) when no session
// exists for the id.
type Store interface {
	Load(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, id string, s *Session) error
}

// Manager ties sessions to requests through the session cookie. It owns the
// load-at-entry / save-at-exit discipline so handlers deal only in explicit
// Session values.
type Manager struct {
	store Store
	log   *logger.Logger
}

func NewManager(store Store, log *logger.Logger) *Manager {
	return &Manager{
		store: store,
		log:   log.With("component", "sessions"),
	}
}

// Begin resolves the request's session id, issuing a new one (and setting
// the cookie) when absent, and loads the session. A store failure is
// request-scoped: the visitor gets a fresh session and the error is logged.
func (m *Manager) Begin(w http.ResponseWriter, r *http.Request) (string, *Session) {
	id := ""
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		id = c.Value
	}
	if id == "" {
		id = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     CookieName,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
		})
	}

	sess, err := m.store.Load(r.Context(), id)
	if err != nil {
		m.log.Error("load session", "session_id", id, "error", err)
	}
	if sess == nil {
		sess = New()
	}
	if sess.Cart == nil {
		sess.Cart = models.NewCart()
	}
	return id, sess
}

// Save writes the session back to the store.
func (m *Manager) Save(ctx context.Context, id string, s *Session) {
	if err := m.store.Save(ctx, id, s); err != nil {
		m.log.Error("save session", "session_id", id, "error", err)
	}
}
