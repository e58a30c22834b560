package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/portaprosoftware/portapro-backend/internal/domain"
)

var firstNames = []string{
	"James", "Maria", "Robert", "Linda", "Michael", "Sarah", "David", "Karen",
	"Carlos", "Nancy", "Kevin", "Laura", "Brian", "Amanda", "Jason", "Emily",
	"Marcus", "Diana", "Tyler", "Rachel",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
}

var digits = "0123456789"

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	password := make([]rune, length)
	for i := range password {
		password[i] = letters[rand.Intn(len(letters))]
	}
	return string(password)
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

func GenerateRandomDriver() *domain.Driver {
	first := firstNames[rand.Intn(len(firstNames))]
	last := lastNames[rand.Intn(len(lastNames))]

	suffix := make([]byte, 3)
	for i := range suffix {
		suffix[i] = digits[rand.Intn(len(digits))]
	}

	return &domain.Driver{
		FirstName: first,
		LastName:  last,
		Email:     strings.ToLower(first) + "." + strings.ToLower(last) + string(suffix) + "@example.com",
		Phone:     fmt.Sprintf("555-%04d", rand.Intn(10000)),
		Status:    domain.DriverActive,
	}
}

var shiftTypes = []domain.ShiftType{
	domain.ShiftTypeDriver,
	domain.ShiftTypeWarehouse,
	domain.ShiftTypeOffice,
}

func GenerateRandomShiftTemplate() *domain.ShiftTemplate {
	startHour := rand.Intn(14)            // 00..13
	duration := rand.Intn(8) + 2          // 2..9 hours
	startMinute := rand.Intn(2) * 30      // :00 or :30
	endMinute := rand.Intn(2) * 30        // :00 or :30
	endHour := startHour + duration       // at most 22

	return &domain.ShiftTemplate{
		Name:        fmt.Sprintf("Route %c%d", 'A'+rune(rand.Intn(26)), rand.Intn(90)+10),
		ShiftType:   shiftTypes[rand.Intn(len(shiftTypes))],
		StartTime:   fmt.Sprintf("%02d:%02d:00", startHour, startMinute),
		EndTime:     fmt.Sprintf("%02d:%02d:00", endHour, endMinute),
		Description: "Seeded shift template",
	}
}

// GenerateRandomAssignment instantiates a template for a driver on a
// random day of the week containing today.
func GenerateRandomAssignment(driver *domain.Driver, tmpl *domain.ShiftTemplate) *domain.ShiftAssignment {
	window := domain.WeekOf(domain.Today())
	date := window.Start.AddDays(rand.Intn(7))

	return &domain.ShiftAssignment{
		DriverID:   &driver.ID,
		ShiftDate:  date,
		StartTime:  tmpl.StartTime,
		EndTime:    tmpl.EndTime,
		TemplateID: &tmpl.ID,
		Status:     domain.AssignmentPending,
	}
}
