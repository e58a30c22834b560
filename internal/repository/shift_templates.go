package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/portaprosoftware/portapro-backend/internal/domain"
)

func (r *Repository) GetAllShiftTemplates() ([]*domain.ShiftTemplate, error) {
	query := `
		SELECT id, name, shift_type, start_time, end_time, spans_midnight, description, created_at, version
		FROM shift_templates
		ORDER BY created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := make([]*domain.ShiftTemplate, 0)
	for rows.Next() {
		tmpl := &domain.ShiftTemplate{}
		dst := []any{&tmpl.ID, &tmpl.Name, &tmpl.ShiftType, &tmpl.StartTime, &tmpl.EndTime, &tmpl.SpansMidnight, &tmpl.Description, &tmpl.CreatedAt, &tmpl.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		templates = append(templates, tmpl)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return templates, nil
}

func (r *Repository) GetShiftTemplate(id uuid.UUID) (*domain.ShiftTemplate, error) {
	query := `
		SELECT name, shift_type, start_time, end_time, spans_midnight, description, created_at, version
		FROM shift_templates WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	tmpl := &domain.ShiftTemplate{
		ID: id,
	}

	dst := []any{&tmpl.Name, &tmpl.ShiftType, &tmpl.StartTime, &tmpl.EndTime, &tmpl.SpansMidnight, &tmpl.Description, &tmpl.CreatedAt, &tmpl.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return tmpl, nil
}

func (r *Repository) CreateShiftTemplate(tmpl *domain.ShiftTemplate) error {
	query := `
		INSERT INTO shift_templates (name, shift_type, start_time, end_time, spans_midnight, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{tmpl.Name, tmpl.ShiftType, tmpl.StartTime, tmpl.EndTime, tmpl.SpansMidnight, tmpl.Description}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&tmpl.ID, &tmpl.CreatedAt, &tmpl.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateShiftTemplate(tmpl *domain.ShiftTemplate) error {
	query := `
		UPDATE shift_templates
		SET
			name = $1,
			shift_type = $2,
			start_time = $3,
			end_time = $4,
			spans_midnight = $5,
			description = $6,
			version = version + 1
		WHERE id = $7 AND version = $8
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{tmpl.Name, tmpl.ShiftType, tmpl.StartTime, tmpl.EndTime, tmpl.SpansMidnight, tmpl.Description, tmpl.ID, tmpl.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&tmpl.Version); err != nil {
		return err
	}

	return nil
}

// DeleteShiftTemplate removes the template only. Dependent assignments
// keep their copied times; the template_id column clears via ON DELETE SET
// NULL and display falls back to a generic label.
func (r *Repository) DeleteShiftTemplate(id uuid.UUID) error {
	query := `
		DELETE FROM shift_templates WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
