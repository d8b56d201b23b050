package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lx-registry-service/internal/core/domain"
	output "lx-registry-service/internal/core/ports/output"
)

type modelMetaRepo struct {
	pool *pgxpool.Pool
}

// NewModelMetaRepository creates a new ModelMetaRepository
func NewModelMetaRepository(pool *pgxpool.Pool) output.ModelMetaRepository {
	return &modelMetaRepo{pool: pool}
}

func (r *modelMetaRepo) Create(ctx context.Context, meta *domain.ModelMeta) error {
	s := domain.ModelMetaSchema
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`, s.Table, s.ColumnList(""), s.Placeholders())

	_, err := r.pool.Exec(ctx, query,
		meta.ID, meta.CreatedAt, meta.Name, meta.Version, meta.Description,
	)
	if err != nil {
		if code, _ := pgCode(err); code == codeUniqueViolation {
			return domain.ErrModelMetaConflict
		}
		return fmt.Errorf("create model meta: %w", err)
	}
	return nil
}

func (r *modelMetaRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ModelMeta, error) {
	s := domain.ModelMetaSchema
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, s.ColumnList(""), s.Table)

	m := &domain.ModelMeta{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&m.ID, &m.CreatedAt, &m.Name, &m.Version, &m.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrModelMetaNotFound
		}
		return nil, fmt.Errorf("get model meta by id: %w", err)
	}
	return m, nil
}

// Delete relies on the active_model foreign key (ON DELETE SET NULL) to
// detach any active model that referenced this row.
func (r *modelMetaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM model_meta WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete model meta: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrModelMetaNotFound
	}
	return nil
}
