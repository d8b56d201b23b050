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

type frameRepo struct {
	pool *pgxpool.Pool
}

// NewFrameRepository creates a new FrameRepository
func NewFrameRepository(pool *pgxpool.Pool) output.FrameRepository {
	return &frameRepo{pool: pool}
}

func (r *frameRepo) Create(ctx context.Context, f *domain.Frame) error {
	s := domain.FrameSchema
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`, s.Table, s.ColumnList(""), s.Placeholders())

	_, err := r.pool.Exec(ctx, query, f.ID, f.VideoID, f.FrameNumber, f.Image, f.Suffix, f.Extracted)
	if err != nil {
		if code, _ := pgCode(err); code == codeUniqueViolation {
			return domain.ErrFrameConflict
		}
		return fmt.Errorf("create frame: %w", err)
	}
	return nil
}

func (r *frameRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Frame, error) {
	s := domain.FrameSchema
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, s.ColumnList(""), s.Table)

	f, err := scanFrame(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFrameNotFound
		}
		return nil, fmt.Errorf("get frame by id: %w", err)
	}
	return f, nil
}

func (r *frameRepo) Update(ctx context.Context, f *domain.Frame) error {
	s := domain.FrameSchema
	set, idPos := s.UpdateSet()
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id=$%d`, s.Table, set, idPos)

	result, err := r.pool.Exec(ctx, query, f.VideoID, f.FrameNumber, f.Image, f.Suffix, f.Extracted, f.ID)
	if err != nil {
		if code, _ := pgCode(err); code == codeUniqueViolation {
			return domain.ErrFrameConflict
		}
		return fmt.Errorf("update frame: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrFrameNotFound
	}
	return nil
}

func (r *frameRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM frame WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete frame: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrFrameNotFound
	}
	return nil
}

func (r *frameRepo) List(ctx context.Context, filter output.ListFilter) ([]*domain.Frame, int, error) {
	s := domain.FrameSchema

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM frame").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count frames: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY video_id, frame_number LIMIT $1 OFFSET $2`,
		s.ColumnList(""), s.Table)
	rows, err := r.pool.Query(ctx, query, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list frames: %w", err)
	}
	defer rows.Close()

	var frames []*domain.Frame
	for rows.Next() {
		f, err := scanFrame(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan frame row: %w", err)
		}
		frames = append(frames, f)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate frame rows: %w", err)
	}
	return frames, total, nil
}

func scanFrame(row pgx.Row) (*domain.Frame, error) {
	f := &domain.Frame{}
	if err := row.Scan(&f.ID, &f.VideoID, &f.FrameNumber, &f.Image, &f.Suffix, &f.Extracted); err != nil {
		return nil, err
	}
	return f, nil
}
