package main

import (
	"context"
	"log"

	"github.com/skuffcall/phoneinv/internal/config"
	"github.com/skuffcall/phoneinv/internal/db"
	"github.com/skuffcall/phoneinv/internal/inventory"
	"github.com/skuffcall/phoneinv/internal/logging"
	"github.com/skuffcall/phoneinv/internal/service"
	"github.com/skuffcall/phoneinv/internal/store"
	"github.com/skuffcall/phoneinv/internal/web"
	"github.com/skuffcall/phoneinv/internal/web/templates"
)

func main() {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	state := store.NewStateStore(database)
	snap, err := state.LoadSnapshot(context.Background(), logger)
	if err != nil {
		logger.Error("failed to load saved state", "error", err)
		return
	}

	inv := inventory.New(snap.Phones, snap.Columns, snap.Activities)
	svc := service.NewInventoryService(inv, state, snap.Theme, logger)
	server := web.NewServer(svc, templates.FS, logger)

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}
