package main

import (
	"fmt"

	"remstroy-site/internal/config"
	"remstroy-site/internal/database"
	"remstroy-site/internal/handlers"
	"remstroy-site/internal/notifier"
	"remstroy-site/internal/server"

	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	store := database.NewStore(cfg.DatabasePath)
	if err := store.Initialize(); err != nil {
		log.Fatalf("database error: %v", err)
	}

	h := handlers.New(cfg, store, notifier.New(cfg.SMTP))
	r := server.NewRouter(cfg, h)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Infof("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
