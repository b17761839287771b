package checkout

import (
	"net/http"
	"strings"

	"github.com/shopmini/storefront/logger"
	"github.com/shopmini/storefront/session"
	"github.com/shopmini/storefront/web"
)

type CheckoutHandler struct {
	sessions *session.Manager
	render   *web.Renderer
	log      *logger.Logger
}

func NewCheckoutHandler(sm *session.Manager, render *web.Renderer, log *logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		sessions: sm,
		render:   render,
		log:      log.With("handler", "checkout"),
	}
}

// HandleShow displays the checkout form. An empty cart never reaches the
// form; the visitor is sent back to the catalog with a notice.
func (h *CheckoutHandler) HandleShow(w http.ResponseWriter, r *http.Request) {
	sid, sess := h.sessions.Begin(w, r)

	if sess.Cart.IsEmpty() {
		sess.Flash("Your cart is empty.")
		h.sessions.Save(r.Context(), sid, sess)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := struct {
		Flashes []string
	}{
		Flashes: sess.PopFlashes(),
	}
	h.sessions.Save(r.Context(), sid, sess)
	h.render.Render(w, "checkout.html", data)
}

// HandleSubmit validates the buyer details and, on success, clears the cart
// and renders the confirmation. Validation runs before any mutation, so an
// invalid submit leaves the cart exactly as it was.
func (h *CheckoutHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	sid, sess := h.sessions.Begin(w, r)

	if sess.Cart.IsEmpty() {
		sess.Flash("Your cart is empty.")
		h.sessions.Save(r.Context(), sid, sess)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	name := strings.TrimSpace(r.PostFormValue("name"))
	address := strings.TrimSpace(r.PostFormValue("address"))
	if name == "" || address == "" {
		sess.Flash("Please fill required fields")
		h.sessions.Save(r.Context(), sid, sess)
		http.Redirect(w, r, "/checkout", http.StatusSeeOther)
		return
	}

	sess.Cart.Clear()
	h.sessions.Save(r.Context(), sid, sess)
	h.log.Info("checkout completed", "session_id", sid, "name", name)

	data := struct {
		Flashes []string
		Name    string
	}{
		Name: name,
	}
	h.render.Render(w, "checkout_success.html", data)
}
