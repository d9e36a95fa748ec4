package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"settlers/internal/config"
	"settlers/internal/engine"
	"settlers/internal/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "settlers: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	port := flag.Int("port", cfg.Port, "server port")
	flag.Parse()

	logger, err := newLogger(cfg.Dev)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()

	rules := engine.DefaultConfig()
	if cfg.RulesPath != "" {
		if rules, err = engine.LoadConfig(cfg.RulesPath); err != nil {
			return fmt.Errorf("load rules: %w", err)
		}
		logger.Info("rules loaded", zap.String("path", cfg.RulesPath))
	}
	if cfg.DecisionTimeout > 0 {
		rules.DecisionTimeout = cfg.DecisionTimeout
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(*port, cfg.ShutdownWait, server.HubOptions{
		Rules:        rules,
		BotFill:      cfg.BotFill,
		MessageRate:  cfg.MessageRate,
		MessageBurst: cfg.MessageBurst,
		Log:          logger,
	})
	return srv.Run(ctx)
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
