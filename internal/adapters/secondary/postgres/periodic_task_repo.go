package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"lx-registry-service/internal/core/domain"
	output "lx-registry-service/internal/core/ports/output"
)

type periodicTaskRepo struct {
	pool *pgxpool.Pool
}

// NewPeriodicTaskRepository creates a repository over the scheduler's task table.
func NewPeriodicTaskRepository(pool *pgxpool.Pool) output.PeriodicTaskRepository {
	return &periodicTaskRepo{pool: pool}
}

// DeleteAll issues a single unscoped DELETE. Concurrent callers are ordered
// by postgres alone.
func (r *periodicTaskRepo) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", domain.PeriodicTaskSchema.Table))
	if err != nil {
		return 0, fmt.Errorf("delete periodic tasks: %w", err)
	}
	return result.RowsAffected(), nil
}

func (r *periodicTaskRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", domain.PeriodicTaskSchema.Table)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count periodic tasks: %w", err)
	}
	return n, nil
}
