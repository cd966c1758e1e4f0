package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/erazemk/ogled/internal/api"
	"github.com/erazemk/ogled/internal/builder"
	"github.com/erazemk/ogled/internal/config"
	"github.com/erazemk/ogled/internal/db"
	"github.com/erazemk/ogled/internal/metrics"
	"github.com/erazemk/ogled/internal/photo"
	"github.com/erazemk/ogled/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Flags override environment settings.
	addr := flag.String("addr", cfg.Addr, "listen address")
	dbPath := flag.String("db", cfg.DBPath, "path to SQLite database file")
	flag.Parse()

	// Open database (created on first run).
	database, err := db.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	// Run migrations (idempotent).
	if err := db.Migrate(database); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	store := &photo.Store{DB: database}
	b := builder.New(store)

	// Set up routers.
	apiRouter := api.NewRouter(b, store, cfg.MaxPhotoMB*1024*1024)
	webRouter, err := web.NewRouter()
	if err != nil {
		log.Fatalf("Failed to set up web router: %v", err)
	}

	// Combine: API routes take priority, web routes handle the rest.
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/metrics", metrics.Handler())
	mux.Handle("/", webRouter)

	handler := api.LoggingMiddleware(metrics.Middleware(mux))

	fmt.Printf("Server listening on %s\n", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
