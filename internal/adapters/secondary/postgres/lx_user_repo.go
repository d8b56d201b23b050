package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lx-registry-service/internal/core/domain"
	output "lx-registry-service/internal/core/ports/output"
)

type lxUserRepo struct {
	pool *pgxpool.Pool
}

// NewLxUserRepository creates a new LxUserRepository
func NewLxUserRepository(pool *pgxpool.Pool) output.LxUserRepository {
	return &lxUserRepo{pool: pool}
}

func (r *lxUserRepo) Create(ctx context.Context, user *domain.LxUser) error {
	s := domain.LxUserSchema
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`, s.Table, s.ColumnList(""), s.Placeholders())

	_, err := r.pool.Exec(ctx, query,
		user.ID, user.CreatedAt, user.UpdatedAt, user.Name, user.Description,
	)
	if err != nil {
		if code, _ := pgCode(err); code == codeUniqueViolation {
			return domain.ErrLxUserNameConflict
		}
		return fmt.Errorf("create lx user: %w", err)
	}
	return nil
}

func (r *lxUserRepo) GetByName(ctx context.Context, name string) (*domain.LxUser, error) {
	s := domain.LxUserSchema
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE name = $1 LIMIT 2`, s.ColumnList(""), s.Table)

	rows, err := r.pool.Query(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("get lx user by name: %w", err)
	}
	defer rows.Close()

	var found []*domain.LxUser
	for rows.Next() {
		u, err := scanLxUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lx user row: %w", err)
		}
		found = append(found, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lx user rows: %w", err)
	}

	switch len(found) {
	case 0:
		return nil, domain.ErrLxUserNotFound
	case 1:
		return found[0], nil
	default:
		return nil, domain.ErrMultipleFound
	}
}

func (r *lxUserRepo) Delete(ctx context.Context, name string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM lx_user WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("delete lx user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrLxUserNotFound
	}
	return nil
}

func (r *lxUserRepo) List(ctx context.Context, filter output.ListFilter) ([]*domain.LxUser, int, error) {
	s := domain.LxUserSchema
	where, args := nameSearch("name", filter.Search)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", s.Table, where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count lx users: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY name ASC LIMIT $%d OFFSET $%d`,
		s.ColumnList(""), s.Table, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list lx users: %w", err)
	}
	defer rows.Close()

	var users []*domain.LxUser
	for rows.Next() {
		u, err := scanLxUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan lx user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate lx user rows: %w", err)
	}
	return users, total, nil
}

func scanLxUser(row pgx.Row) (*domain.LxUser, error) {
	u := &domain.LxUser{}
	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt, &u.Name, &u.Description); err != nil {
		return nil, err
	}
	return u, nil
}
