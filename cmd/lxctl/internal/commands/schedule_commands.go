package commands

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"lx-registry-service/internal/adapters/secondary/postgres"
	"lx-registry-service/internal/config"
	"lx-registry-service/internal/core/services"
	"lx-registry-service/internal/metrics"
)

// ResetScheduleMessage is printed to stdout after a successful reset.
const ResetScheduleMessage = "Successfully deleted all periodic tasks."

// ScheduleResetter wipes the periodic task store.
type ScheduleResetter interface {
	Reset(ctx context.Context) (int64, error)
}

// ResetterFactory opens whatever the resetter needs; the returned func
// releases it.
type ResetterFactory func(ctx context.Context) (ScheduleResetter, func(), error)

// InitScheduleCommands registers reset-schedule on root.
func InitScheduleCommands(root *cobra.Command, factory ResetterFactory) {
	root.AddCommand(newResetScheduleCmd(factory))
}

func newResetScheduleCmd(factory ResetterFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "reset-schedule",
		Short: "Delete every periodic task from the scheduler store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			resetter, release, err := factory(ctx)
			if err != nil {
				return err
			}
			defer release()

			if _, err := resetter.Reset(ctx); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ResetScheduleMessage)
			return nil
		},
	}
}

// NewScheduleResetter returns a factory backed by postgres. When a
// pushgateway is configured the purge counters are pushed on release.
func NewScheduleResetter(cfg *config.Config) ResetterFactory {
	return func(ctx context.Context) (ScheduleResetter, func(), error) {
		pool, err := postgres.NewPool(ctx, &cfg.Database)
		if err != nil {
			return nil, nil, err
		}

		reg := prometheus.NewRegistry()
		collector := metrics.NewCollector(reg)
		svc := services.NewScheduleService(postgres.NewPeriodicTaskRepository(pool), collector)

		release := func() {
			pool.Close()
			pushMetrics(cfg.Metrics.PushgatewayURL, reg)
		}
		return svc, release, nil
	}
}

func pushMetrics(url string, gatherer prometheus.Gatherer) {
	if url == "" {
		return
	}
	if err := push.New(url, "lxctl_reset_schedule").Gatherer(gatherer).Push(); err != nil {
		log.WithError(err).Warn("push metrics failed")
	}
}
