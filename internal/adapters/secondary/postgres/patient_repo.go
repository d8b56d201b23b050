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

type patientRepo struct {
	pool *pgxpool.Pool
}

// NewPatientRepository creates a new PatientRepository
func NewPatientRepository(pool *pgxpool.Pool) output.PatientRepository {
	return &patientRepo{pool: pool}
}

func (r *patientRepo) Create(ctx context.Context, p *domain.Patient) error {
	s := domain.PatientSchema
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`, s.Table, s.ColumnList(""), s.Placeholders())

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.FirstName, p.LastName, p.Dob, p.Gender,
		p.Email, p.Phone, p.CenterID, p.IsRealPerson,
	)
	if err != nil {
		if code, _ := pgCode(err); code == codeForeignKeyViolation {
			return domain.ErrCenterNotFound
		}
		return fmt.Errorf("create patient: %w", err)
	}
	return nil
}

func (r *patientRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	s := domain.PatientSchema
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, s.ColumnList(""), s.Table)

	p, err := scanPatient(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient by id: %w", err)
	}
	return p, nil
}

func (r *patientRepo) Update(ctx context.Context, p *domain.Patient) error {
	s := domain.PatientSchema
	set, idPos := s.UpdateSet()
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id=$%d`, s.Table, set, idPos)

	result, err := r.pool.Exec(ctx, query,
		p.FirstName, p.LastName, p.Dob, p.Gender,
		p.Email, p.Phone, p.CenterID, p.IsRealPerson, p.ID,
	)
	if err != nil {
		if code, _ := pgCode(err); code == codeForeignKeyViolation {
			return domain.ErrCenterNotFound
		}
		return fmt.Errorf("update patient: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrPatientNotFound
	}
	return nil
}

func (r *patientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM patient WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrPatientNotFound
	}
	return nil
}

func (r *patientRepo) List(ctx context.Context, filter output.ListFilter) ([]*domain.Patient, int, error) {
	s := domain.PatientSchema
	where, args := nameSearch("last_name", filter.Search)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", s.Table, where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count patients: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY last_name ASC, first_name ASC LIMIT $%d OFFSET $%d`,
		s.ColumnList(""), s.Table, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list patients: %w", err)
	}
	defer rows.Close()

	var patients []*domain.Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan patient row: %w", err)
		}
		patients = append(patients, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate patient rows: %w", err)
	}
	return patients, total, nil
}

func scanPatient(row pgx.Row) (*domain.Patient, error) {
	p := &domain.Patient{}
	err := row.Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.Dob, &p.Gender,
		&p.Email, &p.Phone, &p.CenterID, &p.IsRealPerson,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}
