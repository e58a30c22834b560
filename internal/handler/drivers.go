package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/portaprosoftware/portapro-backend/internal/domain"
)

func (h *Handler) GetAllDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.repository.GetAllDrivers()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "drivers fetched", drivers)
}

func (h *Handler) CreateDriver(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email" validate:"required,email"`
		Phone     string `json:"phone"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	driver := &domain.Driver{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Status:    domain.DriverActive,
	}

	if err := h.repository.CreateDriver(driver); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "drivers_email_key":
				h.badRequest(w, r, errors.New("a driver with this email already exists"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	mailMessage := domain.MailMessage{
		Type: "driver_welcome",
		To:   driver.Email,
		Data: domain.DriverWelcomeMailData{
			FullName: driver.DisplayName(),
		},
	}

	emailData, err := json.Marshal(mailMessage)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        emailData,
		},
	); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "driver created", driver)
}

func (h *Handler) GetDriver(w http.ResponseWriter, r *http.Request) {
	driver := r.Context().Value(DriverCtx).(*domain.Driver)
	h.successResponse(w, r, "driver fetched", driver)
}

func (h *Handler) UpdateDriver(w http.ResponseWriter, r *http.Request) {
	driver := r.Context().Value(DriverCtx).(*domain.Driver)

	var req struct {
		FirstName *string `json:"firstName"`
		LastName  *string `json:"lastName"`
		Email     *string `json:"email" validate:"omitempty,email"`
		Phone     *string `json:"phone"`
		Status    *string `json:"status" validate:"omitempty,oneof=active inactive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.FirstName != nil {
		driver.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		driver.LastName = *req.LastName
	}
	if req.Email != nil {
		driver.Email = *req.Email
	}
	if req.Phone != nil {
		driver.Phone = *req.Phone
	}
	if req.Status != nil {
		driver.Status = domain.DriverStatus(*req.Status)
	}

	if err := h.repository.UpdateDriver(driver); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "drivers_email_key":
				h.badRequest(w, r, errors.New("a driver with this email already exists"))
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "driver updated", driver)
}

func (h *Handler) DeleteDriver(w http.ResponseWriter, r *http.Request) {
	driver := r.Context().Value(DriverCtx).(*domain.Driver)

	if err := h.repository.DeleteDriver(driver.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// The driver's assignments go unassigned in any week, so every cached
	// week is stale now.
	if err := h.weekCache.InvalidateAll(r.Context()); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "driver deleted", nil)
}
