package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/Inventario-console/internal/application/notify"
	"github.com/jhoicas/Inventario-console/internal/application/session"
	"github.com/jhoicas/Inventario-console/internal/application/state"
	"github.com/jhoicas/Inventario-console/internal/infrastructure/api"
	"github.com/jhoicas/Inventario-console/internal/infrastructure/localstore"
	"github.com/jhoicas/Inventario-console/internal/interfaces/inventory"
	"github.com/jhoicas/Inventario-console/pkg/config"
	"github.com/jhoicas/Inventario-console/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando variante inventario")

	store, err := localstore.New(cfg.Storage.Resolve(cfg.App.Name))
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento local")
	}

	nc := notify.New(log)

	var sess *session.Store
	apiClient := api.New(cfg.API.BaseURL, cfg.API.Timeout, session.TokenFunc(func() string {
		if sess == nil {
			return ""
		}
		return sess.Token()
	}), log)
	sess = session.NewStore(apiClient, store, log)

	data := state.New(apiClient, nc, log)

	app := inventory.New(cfg, log, sess, data, nc, os.Stdin, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("la aplicación terminó con error")
	}

	log.Info().Msg("variante inventario detenida")
}
