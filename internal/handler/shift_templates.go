package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/portaprosoftware/portapro-backend/internal/domain"
	"github.com/portaprosoftware/portapro-backend/internal/utils"
)

func (h *Handler) GetAllShiftTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.repository.GetAllShiftTemplates()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "templates fetched", templates)
}

func (h *Handler) CreateShiftTemplate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name          string `json:"name" validate:"required"`
		ShiftType     string `json:"shiftType" validate:"required,oneof=driver warehouse office"`
		StartTime     string `json:"startTime" validate:"required"`
		EndTime       string `json:"endTime" validate:"required"`
		SpansMidnight bool   `json:"spansMidnight"`
		Description   string `json:"description"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	tmpl := &domain.ShiftTemplate{
		Name:          req.Name,
		ShiftType:     domain.ShiftType(req.ShiftType),
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		SpansMidnight: req.SpansMidnight,
		Description:   req.Description,
	}

	if err := utils.ValidateShiftTemplateTimes(tmpl); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.CreateShiftTemplate(tmpl); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "shift_templates_name_key":
				h.errorResponse(w, r, "a template with this name already exists")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "template created", tmpl)
}

func (h *Handler) GetShiftTemplate(w http.ResponseWriter, r *http.Request) {
	tmpl := r.Context().Value(ShiftTemplateCtx).(*domain.ShiftTemplate)
	h.successResponse(w, r, "template fetched", tmpl)
}

func (h *Handler) UpdateShiftTemplate(w http.ResponseWriter, r *http.Request) {
	tmpl := r.Context().Value(ShiftTemplateCtx).(*domain.ShiftTemplate)

	var req struct {
		Name          *string `json:"name"`
		ShiftType     *string `json:"shiftType" validate:"omitempty,oneof=driver warehouse office"`
		StartTime     *string `json:"startTime"`
		EndTime       *string `json:"endTime"`
		SpansMidnight *bool   `json:"spansMidnight"`
		Description   *string `json:"description"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Name != nil {
		tmpl.Name = *req.Name
	}
	if req.ShiftType != nil {
		tmpl.ShiftType = domain.ShiftType(*req.ShiftType)
	}
	if req.StartTime != nil {
		tmpl.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		tmpl.EndTime = *req.EndTime
	}
	if req.SpansMidnight != nil {
		tmpl.SpansMidnight = *req.SpansMidnight
	}
	if req.Description != nil {
		tmpl.Description = *req.Description
	}

	if err := utils.ValidateShiftTemplateTimes(tmpl); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.UpdateShiftTemplate(tmpl); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "shift_templates_name_key":
				h.errorResponse(w, r, "a template with this name already exists")
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

	h.successResponse(w, r, "template updated", tmpl)
}

// DuplicateShiftTemplate clones the loaded template under a marked name.
// The copy gets its own identity; everything else carries over verbatim.
func (h *Handler) DuplicateShiftTemplate(w http.ResponseWriter, r *http.Request) {
	source := r.Context().Value(ShiftTemplateCtx).(*domain.ShiftTemplate)

	copy := source.Duplicate()

	if err := h.repository.CreateShiftTemplate(copy); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "shift_templates_name_key":
				h.errorResponse(w, r, "a template with this name already exists")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "template duplicated", copy)
}

func (h *Handler) DeleteShiftTemplate(w http.ResponseWriter, r *http.Request) {
	tmpl := r.Context().Value(ShiftTemplateCtx).(*domain.ShiftTemplate)

	if err := h.repository.DeleteShiftTemplate(tmpl.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// Assignments referencing the template keep their times but lose the
	// reference, so every cached week is stale now.
	if err := h.weekCache.InvalidateAll(r.Context()); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "template deleted", nil)
}
