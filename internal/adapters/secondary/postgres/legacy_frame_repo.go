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

type legacyFrameRepo struct {
	pool *pgxpool.Pool
}

// NewLegacyFrameRepository creates a new LegacyFrameRepository
func NewLegacyFrameRepository(pool *pgxpool.Pool) output.LegacyFrameRepository {
	return &legacyFrameRepo{pool: pool}
}

func (r *legacyFrameRepo) Create(ctx context.Context, f *domain.LegacyFrame) error {
	s := domain.LegacyFrameSchema
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`, s.Table, s.ColumnList(""), s.Placeholders())

	_, err := r.pool.Exec(ctx, query, f.ID, f.VideoID, f.FrameNumber, f.Image, f.Suffix)
	if err != nil {
		return fmt.Errorf("create legacy frame: %w", err)
	}
	return nil
}

func (r *legacyFrameRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.LegacyFrame, error) {
	s := domain.LegacyFrameSchema
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, s.ColumnList(""), s.Table)

	f, err := scanLegacyFrame(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLegacyFrameNotFound
		}
		return nil, fmt.Errorf("get legacy frame by id: %w", err)
	}
	return f, nil
}

func (r *legacyFrameRepo) Update(ctx context.Context, f *domain.LegacyFrame) error {
	s := domain.LegacyFrameSchema
	set, idPos := s.UpdateSet()
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id=$%d`, s.Table, set, idPos)

	result, err := r.pool.Exec(ctx, query, f.VideoID, f.FrameNumber, f.Image, f.Suffix, f.ID)
	if err != nil {
		return fmt.Errorf("update legacy frame: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrLegacyFrameNotFound
	}
	return nil
}

func (r *legacyFrameRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM legacy_frame WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete legacy frame: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrLegacyFrameNotFound
	}
	return nil
}

func (r *legacyFrameRepo) List(ctx context.Context, filter output.ListFilter) ([]*domain.LegacyFrame, int, error) {
	s := domain.LegacyFrameSchema

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM legacy_frame").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count legacy frames: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY video_id, frame_number LIMIT $1 OFFSET $2`,
		s.ColumnList(""), s.Table)
	rows, err := r.pool.Query(ctx, query, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list legacy frames: %w", err)
	}
	defer rows.Close()

	var frames []*domain.LegacyFrame
	for rows.Next() {
		f, err := scanLegacyFrame(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan legacy frame row: %w", err)
		}
		frames = append(frames, f)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate legacy frame rows: %w", err)
	}
	return frames, total, nil
}

func scanLegacyFrame(row pgx.Row) (*domain.LegacyFrame, error) {
	f := &domain.LegacyFrame{}
	if err := row.Scan(&f.ID, &f.VideoID, &f.FrameNumber, &f.Image, &f.Suffix); err != nil {
		return nil, err
	}
	return f, nil
}
