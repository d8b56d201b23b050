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

type centerRepo struct {
	pool *pgxpool.Pool
}

// NewCenterRepository creates a new CenterRepository
func NewCenterRepository(pool *pgxpool.Pool) output.CenterRepository {
	return &centerRepo{pool: pool}
}

func (r *centerRepo) Create(ctx context.Context, center *domain.Center) error {
	s := domain.CenterSchema
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`, s.Table, s.ColumnList(""), s.Placeholders())

	_, err := r.pool.Exec(ctx, query, center.ID, center.Name, center.NameDe, center.NameEn)
	if err != nil {
		if code, _ := pgCode(err); code == codeUniqueViolation {
			return domain.ErrCenterNameConflict
		}
		return fmt.Errorf("create center: %w", err)
	}
	return nil
}

func (r *centerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Center, error) {
	s := domain.CenterSchema
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, s.ColumnList(""), s.Table)

	c, err := scanCenter(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCenterNotFound
		}
		return nil, fmt.Errorf("get center by id: %w", err)
	}
	return c, nil
}

func (r *centerRepo) Update(ctx context.Context, center *domain.Center) error {
	s := domain.CenterSchema
	set, idPos := s.UpdateSet()
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id=$%d`, s.Table, set, idPos)

	result, err := r.pool.Exec(ctx, query, center.Name, center.NameDe, center.NameEn, center.ID)
	if err != nil {
		if code, _ := pgCode(err); code == codeUniqueViolation {
			return domain.ErrCenterNameConflict
		}
		return fmt.Errorf("update center: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrCenterNotFound
	}
	return nil
}

func (r *centerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM center WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete center: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrCenterNotFound
	}
	return nil
}

func (r *centerRepo) List(ctx context.Context, filter output.ListFilter) ([]*domain.Center, int, error) {
	s := domain.CenterSchema
	where, args := nameSearch("name", filter.Search)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", s.Table, where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count centers: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY name ASC LIMIT $%d OFFSET $%d`,
		s.ColumnList(""), s.Table, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list centers: %w", err)
	}
	defer rows.Close()

	var centers []*domain.Center
	for rows.Next() {
		c, err := scanCenter(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan center row: %w", err)
		}
		centers = append(centers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate center rows: %w", err)
	}
	return centers, total, nil
}

func scanCenter(row pgx.Row) (*domain.Center, error) {
	c := &domain.Center{}
	if err := row.Scan(&c.ID, &c.Name, &c.NameDe, &c.NameEn); err != nil {
		return nil, err
	}
	return c, nil
}
