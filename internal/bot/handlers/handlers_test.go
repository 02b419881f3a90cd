package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hafizn/kirimbot/internal/database"
	"github.com/hafizn/kirimbot/internal/report"
)

func TestCommandArgs(t *testing.T) {
	assert.Equal(t, "", commandArgs("/list"))
	assert.Equal(t, "42", commandArgs("/delete 42"))
	assert.Equal(t, "42", commandArgs("/delete   42  "))
	assert.Equal(t, "rahasia kata", commandArgs("/admin rahasia kata"))
}

func TestParseFormInput(t *testing.T) {
	customer, err := parseFormInput("Budi; nomor saya 08123456789; Jl. Merdeka 10; 27 September 2025 jam 17.00")
	require.NoError(t, err)
	assert.Equal(t, database.Customer{
		Name:         "Budi",
		Phone:        "08123456789",
		Address:      "Jl. Merdeka 10",
		DeliveryDate: "2025-09-27 17:00",
	}, customer)
}

func TestParseFormInputRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"too few parts", "Budi; 08123456789; Jl. Merdeka 10"},
		{"too many parts", "Budi; 08123456789; Jl. Merdeka 10; 27 September 2025; extra"},
		{"empty name", " ; 08123456789; Jl. Merdeka 10; 27 September 2025"},
		{"unreadable phone", "Budi; tidak ada; Jl. Merdeka 10; 27 September 2025"},
		{"empty address", "Budi; 08123456789; ; 27 September 2025"},
		{"invalid date", "Budi; 08123456789; Jl. Merdeka 10; 31 Februari 2025"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseFormInput(tc.input)
			assert.Error(t, err)
		})
	}
}

func TestAdminSetLoginLogout(t *testing.T) {
	admins := NewAdminSet()

	assert.False(t, admins.IsAdmin(1))

	admins.Login(1)
	assert.True(t, admins.IsAdmin(1))
	assert.False(t, admins.IsAdmin(2))

	admins.Logout(1)
	assert.False(t, admins.IsAdmin(1))

	// Logout of a chat that never logged in is a no-op.
	admins.Logout(2)
	assert.False(t, admins.IsAdmin(2))
}

func TestFormatSummary(t *testing.T) {
	got := formatSummary(report.Summary{
		Total:        4,
		Upcoming:     2,
		UniquePhones: 3,
		PerMonth:     map[string]int{"2025-10": 1, "2025-09": 3},
	})

	assert.Contains(t, got, "Total data: 4")
	assert.Contains(t, got, "Pengiriman mendatang: 2")
	assert.Contains(t, got, "Nomor telepon unik: 3")

	// Months are listed in chronological order.
	assert.Less(t, strings.Index(got, "2025-09"), strings.Index(got, "2025-10"))
}

func TestFormatSummaryOmitsEmptyMonthSection(t *testing.T) {
	got := formatSummary(report.Summary{})
	assert.NotContains(t, got, "Per bulan")
}
