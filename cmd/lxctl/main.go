// Package main is the entry point for lxctl, the administrative CLI of the
// lx registry service.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"lx-registry-service/cmd/lxctl/internal/commands"
	"lx-registry-service/internal/config"
	"lx-registry-service/internal/logging"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logging.Init(cfg.Logger)

	rootCmd := &cobra.Command{
		Use:   "lxctl",
		Short: "Administrative commands for the lx registry service",
		Long: `lxctl runs one-shot maintenance operations against the registry database.

Connection settings are read from the same DATABASE_* environment variables
as the server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	commands.InitScheduleCommands(rootCmd, commands.NewScheduleResetter(cfg))
	commands.InitMigrateCommands(rootCmd, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}
	return nil
}
