package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopmini/storefront/logger"
	"github.com/shopmini/storefront/models"
)

func TestFlashesAreReadOnce(t *testing.T) {
	s := New()
	s.Flash("Added to cart")
	s.Flash("Cart updated")

	assert.Equal(t, []string{"Added to cart", "Cart updated"}, s.PopFlashes())
	assert.Empty(t, s.PopFlashes())
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	s := New()
	s.Cart.Add(1, 2)
	s.Cart.Add(3, 1)
	s.Flash("notice")
	require.NoError(t, store.Save(ctx, "abc", s))

	loaded, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, models.Cart{1: 2, 3: 1}, loaded.Cart)
	assert.Equal(t, []string{"notice"}, loaded.Flashes)
}

func TestMemoryStoreMissingSession(t *testing.T) {
	store := NewMemoryStore()

	loaded, err := store.Load(context.Background(), "nope")
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestMemoryStoreIsolatesSavedValue(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	s := New()
	s.Cart.Add(1, 1)
	require.NoError(t, store.Save(ctx, "abc", s))

	// Mutating the saved value must not leak into the store.
	s.Cart.Add(1, 10)

	loaded, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, models.Cart{1: 1}, loaded.Cart)
}

func TestManagerIssuesCookieOnFirstVisit(t *testing.T) {
	m := NewManager(NewMemoryStore(), logger.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	id, sess := m.Begin(rec, req)

	require.NotEmpty(t, id)
	require.NotNil(t, sess)
	assert.True(t, sess.Cart.IsEmpty())

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, id, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestManagerReusesExistingSession(t *testing.T) {
	store := NewMemoryStore()
	m := NewManager(store, logger.NewNop())

	s := New()
	s.Cart.Add(3, 5)
	require.NoError(t, store.Save(context.Background(), "sid-1", s))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "sid-1"})
	id, sess := m.Begin(rec, req)

	assert.Equal(t, "sid-1", id)
	assert.Equal(t, models.Cart{3: 5}, sess.Cart)
	assert.Empty(t, rec.Result().Cookies(), "no new cookie for a known session")
}
