package catalog

import (
	"errors"
	"net/http"

	"github.com/shopmini/storefront/logger"
	"github.com/shopmini/storefront/models"
	"github.com/shopmini/storefront/session"
	"github.com/shopmini/storefront/web"
)

type Product struct {
	ID          models.ProductID
	Name        string
	Price       float64
	Description string
	Image       string
	Stock       int
	StockKnown  bool
}

type ProductProvider interface {
	GetAll() ([]models.Product, error)
	GetByID(id models.ProductID) (*models.Product, error)
}

type CatalogHandler struct {
	repo     ProductProvider
	sessions *session.Manager
	render   *web.Renderer
	log      *logger.Logger
}

func NewCatalogHandler(r ProductProvider, sm *session.Manager, render *web.Renderer, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		repo:     r,
		sessions: sm,
		render:   render,
		log:      log.With("handler", "catalog"),
	}
}

// HandleIndex renders the product listing.
func (h *CatalogHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	sid, sess := h.sessions.Begin(w, r)

	products, err := h.repo.GetAll()
	if err != nil {
		h.log.Error("list products", "error", err)
		http.Error(w, "failed to load products", http.StatusInternalServerError)
		return
	}

	data := struct {
		Flashes  []string
		Products []Product
	}{
		Flashes:  sess.PopFlashes(),
		Products: toViews(products),
	}
	h.sessions.Save(r.Context(), sid, sess)
	h.render.Render(w, "index.html", data)
}

// HandleProduct renders a single product's detail page.
func (h *CatalogHandler) HandleProduct(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseProductID(r.PathValue("id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	product, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			http.NotFound(w, r)
			return
		}
		h.log.Error("load product", "product_id", id, "error", err)
		http.Error(w, "failed to load product", http.StatusInternalServerError)
		return
	}

	sid, sess := h.sessions.Begin(w, r)
	data := struct {
		Flashes []string
		Product Product
	}{
		Flashes: sess.PopFlashes(),
		Product: toView(*product),
	}
	h.sessions.Save(r.Context(), sid, sess)
	h.render.Render(w, "product.html", data)
}

func toView(p models.Product) Product {
	v := Product{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price.InexactFloat64(),
		Description: p.Description,
		Image:       p.Image,
	}
	if p.Stock != nil {
		v.Stock = *p.Stock
		v.StockKnown = true
	}
	return v
}

func toViews(products []models.Product) []Product {
	views := make([]Product, len(products))
	for i, p := range products {
		views[i] = toView(p)
	}
	return views
}
