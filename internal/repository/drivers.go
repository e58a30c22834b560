package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/portaprosoftware/portapro-backend/internal/domain"
)

func (r *Repository) GetAllDrivers() ([]*domain.Driver, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, status, created_at, version
		FROM drivers
		ORDER BY last_name, first_name
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := make([]*domain.Driver, 0)
	for rows.Next() {
		driver := &domain.Driver{}
		dst := []any{&driver.ID, &driver.FirstName, &driver.LastName, &driver.Email, &driver.Phone, &driver.Status, &driver.CreatedAt, &driver.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		drivers = append(drivers, driver)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}

func (r *Repository) GetDriver(id uuid.UUID) (*domain.Driver, error) {
	query := `
		SELECT first_name, last_name, email, phone, status, created_at, version
		FROM drivers WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	driver := &domain.Driver{
		ID: id,
	}

	dst := []any{&driver.FirstName, &driver.LastName, &driver.Email, &driver.Phone, &driver.Status, &driver.CreatedAt, &driver.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return driver, nil
}

func (r *Repository) CreateDriver(driver *domain.Driver) error {
	query := `
		INSERT INTO drivers (first_name, last_name, email, phone, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{driver.FirstName, driver.LastName, driver.Email, driver.Phone, driver.Status}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&driver.ID, &driver.CreatedAt, &driver.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateDriver(driver *domain.Driver) error {
	query := `
		UPDATE drivers
		SET
			first_name = $1,
			last_name = $2,
			email = $3,
			phone = $4,
			status = $5,
			version = version + 1
		WHERE id = $6 AND version = $7
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{driver.FirstName, driver.LastName, driver.Email, driver.Phone, driver.Status, driver.ID, driver.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&driver.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteDriver(id uuid.UUID) error {
	query := `
		DELETE FROM drivers WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
