package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lx-registry-service/internal/core/domain"
	output "lx-registry-service/internal/core/ports/output"
)

const activeModelMetaConstraint = "active_model_model_meta_id_key"

type activeModelRepo struct {
	pool *pgxpool.Pool
}

// NewActiveModelRepository creates a new ActiveModelRepository
func NewActiveModelRepository(pool *pgxpool.Pool) output.ActiveModelRepository {
	return &activeModelRepo{pool: pool}
}

func (r *activeModelRepo) Create(ctx context.Context, model *domain.ActiveModel) error {
	s := domain.ActiveModelSchema
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`, s.Table, s.ColumnList(""), s.Placeholders())

	_, err := r.pool.Exec(ctx, query,
		model.ID, model.CreatedAt, model.UpdatedAt, model.Name, model.ModelMetaID,
	)
	if err != nil {
		return mapActiveModelError(err, "create active model")
	}
	return nil
}

// GetByName reads every row matching name so a broken unique constraint
// surfaces as ErrMultipleFound instead of an arbitrary pick.
func (r *activeModelRepo) GetByName(ctx context.Context, name string) (*domain.ActiveModel, error) {
	s := domain.ActiveModelSchema
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE name = $1 LIMIT 2`, s.ColumnList(""), s.Table)

	rows, err := r.pool.Query(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("get active model by name: %w", err)
	}
	defer rows.Close()

	var found []*domain.ActiveModel
	for rows.Next() {
		m, err := scanActiveModel(rows)
		if err != nil {
			return nil, fmt.Errorf("scan active model row: %w", err)
		}
		found = append(found, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate active model rows: %w", err)
	}

	switch len(found) {
	case 0:
		return nil, domain.ErrActiveModelNotFound
	case 1:
		return found[0], nil
	default:
		return nil, domain.ErrMultipleFound
	}
}

func (r *activeModelRepo) Update(ctx context.Context, model *domain.ActiveModel) error {
	s := domain.ActiveModelSchema
	set, idPos := s.UpdateSet("created_at")
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id=$%d`, s.Table, set, idPos)

	result, err := r.pool.Exec(ctx, query, model.UpdatedAt, model.Name, model.ModelMetaID, model.ID)
	if err != nil {
		return mapActiveModelError(err, "update active model")
	}
	if result.RowsAffected() == 0 {
		return domain.ErrActiveModelNotFound
	}
	return nil
}

func (r *activeModelRepo) Delete(ctx context.Context, name string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM active_model WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("delete active model: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrActiveModelNotFound
	}
	return nil
}

func (r *activeModelRepo) List(ctx context.Context, filter output.ListFilter) ([]*domain.ActiveModel, int, error) {
	s := domain.ActiveModelSchema
	where, args := nameSearch("name", filter.Search)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", s.Table, where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count active models: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY name ASC LIMIT $%d OFFSET $%d`,
		s.ColumnList(""), s.Table, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list active models: %w", err)
	}
	defer rows.Close()

	var models []*domain.ActiveModel
	for rows.Next() {
		m, err := scanActiveModel(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan active model row: %w", err)
		}
		models = append(models, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate active model rows: %w", err)
	}
	return models, total, nil
}

func scanActiveModel(row pgx.Row) (*domain.ActiveModel, error) {
	m := &domain.ActiveModel{}
	if err := row.Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt, &m.Name, &m.ModelMetaID); err != nil {
		return nil, err
	}
	return m, nil
}

func mapActiveModelError(err error, op string) error {
	code, constraint := pgCode(err)
	switch {
	case code == codeUniqueViolation && constraint == activeModelMetaConstraint:
		return domain.ErrModelMetaAlreadyBound
	case code == codeUniqueViolation:
		return domain.ErrActiveModelNameConflict
	case code == codeForeignKeyViolation:
		return domain.ErrModelMetaNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

// nameSearch builds an optional ILIKE filter on column.
func nameSearch(column, search string) (string, []interface{}) {
	if search == "" {
		return "", nil
	}
	return fmt.Sprintf("WHERE %s ILIKE $1", column), []interface{}{"%" + search + "%"}
}
