package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"messagedesk/internal/config"
	"messagedesk/internal/scheduler"
	"messagedesk/internal/server"
	"messagedesk/internal/storage"
	"messagedesk/internal/storage/providers"
	httptransport "messagedesk/internal/transport/http"
)

func main() {
	cfg := config.MustLoad()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	db, err := storage.InitDB(cfg.DatabaseUrl)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	allProviders := providers.New(db)
	scheduler.NewTemplateScheduler(
		allProviders.TemplateProvider,
		cfg.Lifecycle.Interval,
		cfg.Lifecycle.StaleDraftAfter,
	).Start(ctx)

	router := httptransport.Router(allProviders, cfg)

	addr := ":" + cfg.Server.Port
	log.Printf("listening on %s", addr)
	if err := server.Start(ctx, addr, cfg.Server.AllowedOrigins, router); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
