package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDriverDisplayName(t *testing.T) {
	tests := []struct {
		name   string
		driver Driver
		want   string
	}{
		{"full name", Driver{FirstName: "Ada", LastName: "Miles", Email: "ada@portapro.io"}, "Ada Miles"},
		{"first name only", Driver{FirstName: "Ada", Email: "ada@portapro.io"}, "Ada"},
		{"email fallback", Driver{Email: "ada@portapro.io"}, "ada@portapro.io"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.driver.DisplayName())
		})
	}
}

func TestDriverInitials(t *testing.T) {
	tests := []struct {
		name   string
		driver Driver
		want   string
	}{
		{"first and last", Driver{FirstName: "Ada", LastName: "Miles"}, "AM"},
		{"lowercase input is uppercased", Driver{FirstName: "ada", LastName: "miles"}, "AM"},
		{"first name only", Driver{FirstName: "Ada"}, "A"},
		{"last name only", Driver{LastName: "Miles"}, "M"},
		{"email only", Driver{Email: "zoe@portapro.io"}, "Z"},
		{"multi-byte name", Driver{FirstName: "Óscar", LastName: "Núñez"}, "ÓN"},
		{"multi-byte email", Driver{Email: "émile@portapro.io"}, "É"},
		{"nothing usable", Driver{}, "DR"},
		{"whitespace counts as empty", Driver{FirstName: "  ", LastName: " "}, "DR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.driver.Initials())
		})
	}
}
