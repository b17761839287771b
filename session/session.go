package session

import (
	"github.com/shopmini/storefront/models"
)

// Session is the per-visitor state: the cart plus any one-shot notices
// queued for the next rendered page. It is an explicit value: handlers load
// it at entry, mutate it, and save it before responding.
type Session struct {
	Cart    models.Cart `json:"cart"`
	Flashes []string    `json:"flashes,omitempty"`
}

// New returns a fresh session with an empty cart.
func New() *Session {
	return &Session{Cart: models.NewCart()}
}

// Flash queues a one-shot notice for the next rendered page.
func (s *Session) Flash(msg string) {
	s.Flashes = append(s.Flashes, msg)
}

// PopFlashes returns the queued notices and clears them. Notices are
// read-once: rendering them consumes them.
func (s *Session) PopFlashes() []string {
	out := s.Flashes
	s.Flashes = nil
	return out
}
