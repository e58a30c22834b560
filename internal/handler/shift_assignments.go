package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/portaprosoftware/portapro-backend/internal/cache"
	"github.com/portaprosoftware/portapro-backend/internal/domain"
	"github.com/portaprosoftware/portapro-backend/internal/schedule"
	"github.com/portaprosoftware/portapro-backend/internal/utils"
)

// weekAnchor reads the anchor query parameter and returns the week window
// containing it. A missing anchor means the current week.
func (h *Handler) weekAnchor(r *http.Request) (domain.WeekWindow, error) {
	anchorParam := r.URL.Query().Get("anchor")
	if anchorParam == "" {
		return domain.WeekOf(domain.Today()), nil
	}

	anchor, err := domain.ParseDate(anchorParam)
	if err != nil {
		return domain.WeekWindow{}, err
	}
	return domain.WeekOf(anchor), nil
}

// loadWeek serves the window's assignments from the week cache, falling
// back to the database and filling the cache on a miss.
func (h *Handler) loadWeek(r *http.Request, window domain.WeekWindow) ([]*domain.ShiftAssignment, error) {
	assignments, err := h.weekCache.Get(r.Context(), window)
	if err == nil {
		return assignments, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		return nil, err
	}

	assignments, err = h.repository.GetShiftAssignmentsForWeek(window)
	if err != nil {
		return nil, err
	}

	if err := h.weekCache.Set(r.Context(), window, assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// ShiftChip is the denormalized per-assignment view the board renders.
type ShiftChip struct {
	*domain.ShiftAssignment
	Label          string `json:"label"`
	DriverName     string `json:"driverName"`
	DriverInitials string `json:"driverInitials"`
}

type WeekShiftsView struct {
	Window        domain.WeekWindow `json:"window"`
	Shifts        []*ShiftChip      `json:"shifts"`
	ConflictCount int               `json:"conflictCount"`
}

func (h *Handler) GetWeekShifts(w http.ResponseWriter, r *http.Request) {
	window, err := h.weekAnchor(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	assignments, err := h.loadWeek(r, window)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	templates, err := h.repository.GetAllShiftTemplates()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	templatesByID := make(map[uuid.UUID]*domain.ShiftTemplate, len(templates))
	for _, t := range templates {
		templatesByID[t.ID] = t
	}

	drivers, err := h.repository.GetAllDrivers()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	driversByID := make(map[uuid.UUID]*domain.Driver, len(drivers))
	for _, d := range drivers {
		driversByID[d.ID] = d
	}

	chips := make([]*ShiftChip, 0, len(assignments))
	for _, a := range assignments {
		chip := &ShiftChip{
			ShiftAssignment: a,
			Label:           a.Label(templatesByID),
			DriverInitials:  "DR",
		}
		if a.DriverID != nil {
			if d, ok := driversByID[*a.DriverID]; ok {
				chip.DriverName = d.DisplayName()
				chip.DriverInitials = d.Initials()
			}
		}
		chips = append(chips, chip)
	}

	view := &WeekShiftsView{
		Window:        window,
		Shifts:        chips,
		ConflictCount: schedule.CountConflicts(assignments),
	}

	h.successResponse(w, r, "week fetched", view)
}

func (h *Handler) GetWeekConflicts(w http.ResponseWriter, r *http.Request) {
	window, err := h.weekAnchor(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	assignments, err := h.loadWeek(r, window)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "conflict count fetched", map[string]any{
		"window":        window,
		"conflictCount": schedule.CountConflicts(assignments),
	})
}

func (h *Handler) AssignShift(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DriverID   string  `json:"driverID" validate:"required,uuid"`
		ShiftDate  string  `json:"shiftDate" validate:"required"`
		TemplateID *string `json:"templateID" validate:"omitempty,uuid"`
		StartTime  *string `json:"startTime"`
		EndTime    *string `json:"endTime"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	driverID, err := uuid.Parse(req.DriverID)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	date, err := domain.ParseDate(req.ShiftDate)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	a := &domain.ShiftAssignment{
		DriverID:  &driverID,
		ShiftDate: date,
		Status:    domain.AssignmentPending,
	}

	if req.TemplateID != nil {
		templateID, err := uuid.Parse(*req.TemplateID)
		if err != nil {
			h.badRequest(w, r, err)
			return
		}

		tmpl, err := h.repository.GetShiftTemplate(templateID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "template not found")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		// Times are copied at write time; later template edits do not
		// propagate.
		a.TemplateID = &tmpl.ID
		a.StartTime = tmpl.StartTime
		a.EndTime = tmpl.EndTime
	}

	if req.StartTime != nil {
		a.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		a.EndTime = *req.EndTime
	}

	if a.StartTime == "" || a.EndTime == "" {
		h.badRequest(w, r, errors.New("start and end times are required when no template is given"))
		return
	}
	if err := utils.ValidateAssignmentTimes(a); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// Overlaps are deliberately not rejected here; the board surfaces
	// them through the conflict counter instead.
	if err := h.repository.CreateShiftAssignment(a); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "shift_assignments_driver_id_fkey":
				h.errorResponse(w, r, "driver not found")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.weekCache.Invalidate(r.Context(), domain.WeekOf(a.ShiftDate)); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "shift assigned", a)
}

func (h *Handler) MoveShift(w http.ResponseWriter, r *http.Request) {
	a := r.Context().Value(ShiftAssignmentCtx).(*domain.ShiftAssignment)

	var req struct {
		NewDate string `json:"newDate" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	newDate, err := domain.ParseDate(req.NewDate)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	oldWindow := domain.WeekOf(a.ShiftDate)
	moved := a.MovedTo(newDate)

	if err := h.repository.UpdateShiftAssignmentDate(&moved); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "shift not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.weekCache.Invalidate(r.Context(), oldWindow, domain.WeekOf(moved.ShiftDate)); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "shift moved", moved)
}

func (h *Handler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	a := r.Context().Value(ShiftAssignmentCtx).(*domain.ShiftAssignment)

	if err := h.repository.DeleteShiftAssignment(a.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := h.weekCache.Invalidate(r.Context(), domain.WeekOf(a.ShiftDate)); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "shift deleted", nil)
}

// AutofillWeek proposes assignments covering the week's uncovered
// templates. It is a dry run: nothing is written, the dispatcher reviews
// and assigns explicitly.
func (h *Handler) AutofillWeek(w http.ResponseWriter, r *http.Request) {
	window, err := h.weekAnchor(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	existing, err := h.repository.GetShiftAssignmentsForWeek(window)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	templates, err := h.repository.GetAllShiftTemplates()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	drivers, err := h.repository.GetAllDrivers()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	planner := schedule.NewPlanner(
		schedule.Parameters{MaxShiftsPerDriverPerDay: h.config.Autofill.MaxShiftsPerDriverPerDay},
		window,
		drivers,
		templates,
		existing,
	)

	proposals, err := planner.Plan()
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	h.successResponse(w, r, "autofill proposals generated", map[string]any{
		"window":    window,
		"proposals": proposals,
	})
}
