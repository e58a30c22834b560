package seed

import (
	"log/slog"

	"github.com/portaprosoftware/portapro-backend/internal/repository"
	"github.com/portaprosoftware/portapro-backend/internal/utils"
)

// Drivers inserts n random driver directory entries.
func Drivers(r *repository.Repository, n int) {
	for i := 0; i < n; i++ {
		driver := utils.GenerateRandomDriver()
		if err := r.CreateDriver(driver); err != nil {
			slog.Error("failed to seed driver", "error", err)
			continue
		}
		slog.Info("driver seeded", "name", driver.DisplayName())
	}
}

// ShiftTemplates inserts n random shift templates.
func ShiftTemplates(r *repository.Repository, n int) {
	for i := 0; i < n; i++ {
		tmpl := utils.GenerateRandomShiftTemplate()
		if err := r.CreateShiftTemplate(tmpl); err != nil {
			slog.Error("failed to seed shift template", "error", err)
			continue
		}
		slog.Info("shift template seeded", "name", tmpl.Name)
	}
}

// Assignments instantiates n random template/driver pairs across the
// current week. Drivers and templates must be seeded first.
func Assignments(r *repository.Repository, n int) {
	drivers, err := r.GetAllDrivers()
	if err != nil {
		slog.Error("failed to load drivers", "error", err)
		return
	}
	templates, err := r.GetAllShiftTemplates()
	if err != nil {
		slog.Error("failed to load shift templates", "error", err)
		return
	}
	if len(drivers) == 0 || len(templates) == 0 {
		slog.Error("seed drivers and templates before assignments")
		return
	}

	for i := 0; i < n; i++ {
		driver := drivers[i%len(drivers)]
		tmpl := templates[i%len(templates)]
		a := utils.GenerateRandomAssignment(driver, tmpl)
		if err := r.CreateShiftAssignment(a); err != nil {
			slog.Error("failed to seed shift assignment", "error", err)
			continue
		}
		slog.Info("shift assignment seeded", "driver", driver.DisplayName(), "date", a.ShiftDate.String())
	}
}
