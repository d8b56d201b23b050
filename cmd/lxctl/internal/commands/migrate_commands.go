package commands

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"lx-registry-service/internal/adapters/secondary/postgres"
	"lx-registry-service/internal/config"
)

// InitMigrateCommands registers the migrate command group on root.
func InitMigrateCommands(root *cobra.Command, cfg *config.Config) {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the registry schema",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := postgres.MigrateUp(cfg.Database.DSN()); err != nil {
				return err
			}
			log.Info("migrations applied")
			return nil
		},
	}

	var steps int
	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if steps <= 0 {
				return fmt.Errorf("--steps must be positive, got %d", steps)
			}
			if err := postgres.MigrateDown(cfg.Database.DSN(), steps); err != nil {
				return err
			}
			log.WithField("steps", steps).Info("migrations rolled back")
			return nil
		},
	}
	downCmd.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	migrateCmd.AddCommand(upCmd, downCmd)
	root.AddCommand(migrateCmd)
}
