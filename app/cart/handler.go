package cart

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopmini/storefront/logger"
	"github.com/shopmini/storefront/models"
	"github.com/shopmini/storefront/session"
	"github.com/shopmini/storefront/web"
)

const qtyFieldPrefix = "qty_"

type Product struct {
	ID    models.ProductID
	Name  string
	Price float64
}

type Line struct {
	Product   Product
	Quantity  int
	LineTotal float64
}

type ProductProvider interface {
	GetAll() ([]models.Product, error)
	GetByID(id models.ProductID) (*models.Product, error)
}

type CartHandler struct {
	repo     ProductProvider
	sessions *session.Manager
	render   *web.Renderer
	log      *logger.Logger
}

func NewCartHandler(r ProductProvider, sm *session.Manager, render *web.Renderer, log *logger.Logger) *CartHandler {
	return &CartHandler{
		repo:     r,
		sessions: sm,
		render:   render,
		log:      log.With("handler", "cart"),
	}
}

// HandleAdd adds the requested quantity of one product to the session cart.
// The stock gate compares the quantity in this request against the product's
// stock; quantities already in the cart are not counted.
func (h *CartHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	sid, sess := h.sessions.Begin(w, r)

	id, err := models.ParseProductID(r.PostFormValue("product_id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	qty := parseQuantity(r.PostFormValue("quantity"))

	product, err := h.repo.GetByID(id)
	if err != nil && !errors.Is(err, models.ErrProductNotFound) {
		h.log.Error("load product", "product_id", id, "error", err)
		http.Error(w, "failed to load product", http.StatusInternalServerError)
		return
	}

	// An id that no longer resolves is still accepted; the cart view drops
	// it later. Only a resolved product can fail the stock gate.
	if product != nil && !product.InStock(qty) {
		sess.Flash("Not enough stock available.")
		h.sessions.Save(r.Context(), sid, sess)
		http.Redirect(w, r, backTo(r), http.StatusSeeOther)
		return
	}

	sess.Cart.Add(id, qty)
	sess.Flash("Added to cart")
	h.sessions.Save(r.Context(), sid, sess)
	http.Redirect(w, r, backTo(r), http.StatusSeeOther)
}

// HandleView renders the cart with line totals and the grand total.
func (h *CartHandler) HandleView(w http.ResponseWriter, r *http.Request) {
	sid, sess := h.sessions.Begin(w, r)

	catalog, err := h.repo.GetAll()
	if err != nil {
		h.log.Error("list products", "error", err)
		http.Error(w, "failed to load products", http.StatusInternalServerError)
		return
	}

	quote := sess.Cart.Quote(catalog)
	lines := make([]Line, len(quote.Lines))
	for i, l := range quote.Lines {
		lines[i] = Line{
			Product: Product{
				ID:    l.Product.ID,
				Name:  l.Product.Name,
				Price: l.Product.Price.InexactFloat64(),
			},
			Quantity:  l.Quantity,
			LineTotal: l.LineTotal.InexactFloat64(),
		}
	}

	data := struct {
		Flashes []string
		Lines   []Line
		Total   float64
	}{
		Flashes: sess.PopFlashes(),
		Lines:   lines,
		Total:   quote.Total.InexactFloat64(),
	}
	h.sessions.Save(r.Context(), sid, sess)
	h.render.Render(w, "cart.html", data)
}

// HandleUpdate applies a batch of quantity edits. A non-positive or
// malformed quantity removes its entry; products not named in the form are
// left untouched.
func (h *CartHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	sid, sess := h.sessions.Begin(w, r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	for key, vals := range r.PostForm {
		if !strings.HasPrefix(key, qtyFieldPrefix) || len(vals) == 0 {
			continue
		}
		id, err := models.ParseProductID(strings.TrimPrefix(key, qtyFieldPrefix))
		if err != nil {
			continue
		}
		qty, err := strconv.Atoi(strings.TrimSpace(vals[0]))
		if err != nil {
			qty = 0
		}
		sess.Cart.Set(id, qty)
	}

	sess.Flash("Cart updated")
	h.sessions.Save(r.Context(), sid, sess)
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// parseQuantity reads the add form's quantity field. Absent or malformed
// input falls back to a single unit.
func parseQuantity(s string) int {
	qty, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || qty < 1 {
		return 1
	}
	return qty
}

// backTo sends the visitor back to the page the add came from.
func backTo(r *http.Request) string {
	if ref := r.Header.Get("Referer"); ref != "" {
		return ref
	}
	return "/"
}
