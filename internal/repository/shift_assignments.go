package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/portaprosoftware/portapro-backend/internal/domain"
)

func (r *Repository) GetShiftAssignmentsForWeek(window domain.WeekWindow) ([]*domain.ShiftAssignment, error) {
	query := `
		SELECT id, driver_id, shift_date, start_time, end_time, template_id, status, created_at, version
		FROM shift_assignments
		WHERE shift_date BETWEEN $1 AND $2
		ORDER BY shift_date, start_time, id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, window.Start, window.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make([]*domain.ShiftAssignment, 0)
	for rows.Next() {
		a := &domain.ShiftAssignment{}
		dst := []any{&a.ID, &a.DriverID, &a.ShiftDate, &a.StartTime, &a.EndTime, &a.TemplateID, &a.Status, &a.CreatedAt, &a.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

func (r *Repository) GetShiftAssignment(id uuid.UUID) (*domain.ShiftAssignment, error) {
	query := `
		SELECT driver_id, shift_date, start_time, end_time, template_id, status, created_at, version
		FROM shift_assignments WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	a := &domain.ShiftAssignment{
		ID: id,
	}

	dst := []any{&a.DriverID, &a.ShiftDate, &a.StartTime, &a.EndTime, &a.TemplateID, &a.Status, &a.CreatedAt, &a.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return a, nil
}

func (r *Repository) CreateShiftAssignment(a *domain.ShiftAssignment) error {
	query := `
		INSERT INTO shift_assignments (driver_id, shift_date, start_time, end_time, template_id, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{a.DriverID, a.ShiftDate, a.StartTime, a.EndTime, a.TemplateID, a.Status}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.CreatedAt, &a.Version); err != nil {
		return err
	}

	return nil
}

// UpdateShiftAssignmentDate persists a re-dated assignment produced by
// MovedTo; only the shift date is written. Moves are last-write-wins: the
// version column is deliberately not consulted, so two clients dragging
// the same chip concurrently both succeed and the later write stands.
func (r *Repository) UpdateShiftAssignmentDate(a *domain.ShiftAssignment) error {
	query := `
		UPDATE shift_assignments
		SET shift_date = $1, version = version + 1
		WHERE id = $2
		RETURNING shift_date, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, a.ShiftDate, a.ID).Scan(&a.ShiftDate, &a.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteShiftAssignment(id uuid.UUID) error {
	query := `
		DELETE FROM shift_assignments WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
