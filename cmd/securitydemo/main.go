// Command securitydemo runs every ULMA input-safety helper against sample
// data and prints the results. The store backend and codec come from the
// environment (see internal/demo.Config).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/WassimBlilita7/ULMA/internal/demo"
	"github.com/WassimBlilita7/ULMA/pkg/environment"
	"github.com/WassimBlilita7/ULMA/pkg/logger"
	"github.com/WassimBlilita7/ULMA/pkg/login"
	"github.com/WassimBlilita7/ULMA/pkg/securestore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "securitydemo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := demo.LoadConfig()
	if err != nil {
		return err
	}

	log := demo.NewLogger(cfg, logger.WithOutput(os.Stderr))
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = environment.WithContext(ctx, environment.Parse(cfg.Env))

	backend, closeBackend, err := demo.OpenBackend(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeBackend(); err != nil {
			log.ErrorContext(ctx, "close backend", logger.Error(err))
		}
	}()

	codec, err := demo.NewCodec(ctx, cfg, log)
	if err != nil {
		return err
	}

	store := securestore.New(backend, securestore.WithCodec(codec), securestore.WithLogger(log))
	svc := login.NewService(store, demo.NewDirectory(), login.WithLogger(log))

	return demo.Run(ctx, os.Stdout, demo.Deps{
		Store:   store,
		Backend: backend,
		Login:   svc,
		Lang:    cfg.Language(),
	})
}
