package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

type DriverStatus string

const (
	DriverActive   DriverStatus = "active"
	DriverInactive DriverStatus = "inactive"
)

// Driver is a directory entry for field staff. The schedule board only
// reads it to resolve display names and initials.
type Driver struct {
	ID        uuid.UUID    `json:"id"`
	FirstName string       `json:"firstName"`
	LastName  string       `json:"lastName"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone"`
	Status    DriverStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
	Version   int32        `json:"-"`
}

// DisplayName prefers the full name and falls back to the email address
// when both name fields are empty.
func (d *Driver) DisplayName() string {
	name := strings.TrimSpace(d.FirstName + " " + d.LastName)
	if name != "" {
		return name
	}
	return d.Email
}

// Initials renders the two-letter chip label for the schedule grid. When
// no usable name or email exists it falls back to "DR".
func (d *Driver) Initials() string {
	first := strings.TrimSpace(d.FirstName)
	last := strings.TrimSpace(d.LastName)

	switch {
	case first != "" && last != "":
		return strings.ToUpper(initialOf(first) + initialOf(last))
	case first != "":
		return strings.ToUpper(initialOf(first))
	case last != "":
		return strings.ToUpper(initialOf(last))
	}

	if email := strings.TrimSpace(d.Email); email != "" {
		return strings.ToUpper(initialOf(email))
	}
	return "DR"
}

// initialOf takes the first rune, not the first byte, so multi-byte names
// keep a valid initial.
func initialOf(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	return string(r)
}
