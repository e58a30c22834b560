package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleDispatcher Role = "dispatcher"
	RoleAdmin      Role = "admin"
)

// User is a back-office operator: a dispatcher working the schedule board
// or an admin managing accounts.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}
