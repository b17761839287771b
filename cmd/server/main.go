package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shopmini/storefront/app/cart"
	"github.com/shopmini/storefront/app/catalog"
	"github.com/shopmini/storefront/app/checkout"
	"github.com/shopmini/storefront/config"
	"github.com/shopmini/storefront/logger"
	"github.com/shopmini/storefront/models"
	"github.com/shopmini/storefront/session"
	"github.com/shopmini/storefront/web"
)

func main() {
	// Best effort; the environment wins when both are set.
	_ = godotenv.Load()

	cfg := config.Load()

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := openDB(cfg)
	if err != nil {
		log.Fatal("open database", "driver", cfg.DBDriver, "error", err)
	}
	if err := models.Migrate(db); err != nil {
		log.Fatal("migrate", "error", err)
	}
	if err := models.Seed(db); err != nil {
		log.Fatal("seed", "error", err)
	}

	store, err := openSessionStore(cfg)
	if err != nil {
		log.Fatal("open session store", "backend", cfg.SessionBackend, "error", err)
	}
	sessions := session.NewManager(store, log)

	render, err := web.NewRenderer(log)
	if err != nil {
		log.Fatal("templates", "error", err)
	}

	repo := models.NewProductsRepository(db)
	catalogHandler := catalog.NewCatalogHandler(repo, sessions, render, log)
	cartHandler := cart.NewCartHandler(repo, sessions, render, log)
	checkoutHandler := checkout.NewCheckoutHandler(sessions, render, log)

	mux := http.NewServeMux()
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))
	mux.HandleFunc("GET /{$}", catalogHandler.HandleIndex)
	mux.HandleFunc("GET /product/{id}", catalogHandler.HandleProduct)
	mux.HandleFunc("POST /add_to_cart", cartHandler.HandleAdd)
	mux.HandleFunc("GET /cart", cartHandler.HandleView)
	mux.HandleFunc("POST /update_cart", cartHandler.HandleUpdate)
	mux.HandleFunc("GET /checkout", checkoutHandler.HandleShow)
	mux.HandleFunc("POST /checkout", checkoutHandler.HandleSubmit)

	log.Info("listening", "addr", cfg.HTTPAddr, "db_driver", cfg.DBDriver, "session_backend", cfg.SessionBackend)
	if err := http.ListenAndServe(cfg.HTTPAddr, mux); err != nil {
		log.Fatal("serve", "error", err)
	}
}

func openDB(cfg config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=disable",
			cfg.PostgresUser,
			cfg.PostgresPassword,
			cfg.PostgresHost,
			cfg.PostgresPort,
			cfg.PostgresName,
		)
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	case "sqlite":
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create db dir: %w", err)
			}
		}
		return gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
}

func openSessionStore(cfg config.Config) (session.Store, error) {
	switch cfg.SessionBackend {
	case "redis":
		return session.NewRedisStore(cfg.RedisAddr, cfg.SessionTTL)
	case "memory":
		return session.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown SESSION_BACKEND %q", cfg.SessionBackend)
	}
}
