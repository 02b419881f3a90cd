package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hafizn/kirimbot/internal/normalize"
)

func TestExtractPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
		found bool
	}{
		{
			name:  "plain number",
			input: "08123456789",
			want:  "08123456789",
			found: true,
		},
		{
			name:  "embedded in sentence",
			input: "Hubungi saya di 08123456789 ya",
			want:  "08123456789",
			found: true,
		},
		{
			name:  "international prefix",
			input: "nomor saya +628123456789",
			want:  "+628123456789",
			found: true,
		},
		{
			name:  "too short",
			input: "kode pos 12345",
			found: false,
		},
		{
			name:  "no digits",
			input: "tidak ada nomor di sini",
			found: false,
		},
		{
			name:  "first of several runs",
			input: "08123456789 atau 08987654321",
			want:  "08123456789",
			found: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := normalize.ExtractPhone(tt.input)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Re-running extraction on its own output must return the same value, so
// pre-extracted numbers survive a second pass through the pipeline.
func TestExtractPhoneIdempotent(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"08123456789", "+628123456789", "WA: 081234567890"} {
		first, ok := normalize.ExtractPhone(input)
		require.True(t, ok)

		second, ok := normalize.ExtractPhone(first)
		require.True(t, ok)
		assert.Equal(t, first, second)
	}
}

func TestExtractDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
		found bool
	}{
		{
			name:  "month name with jam time",
			input: "27 September 2025 jam 17.00",
			want:  "2025-09-27 17:00",
			found: true,
		},
		{
			name:  "month name with colon time",
			input: "5 mei 2026 14:30",
			want:  "2026-05-05 14:30",
			found: true,
		},
		{
			name:  "no time defaults to ten o'clock",
			input: "1 Januari 2026",
			want:  "2026-01-01 10:00",
			found: true,
		},
		{
			name:  "embedded in sentence",
			input: "tolong kirim 27 september 2025 jam 17.00 WIB",
			want:  "2025-09-27 17:00",
			found: true,
		},
		{
			name:  "canonical form round-trips",
			input: "2025-09-27 17:00",
			want:  "2025-09-27 17:00",
			found: true,
		},
		{
			name:  "invalid calendar date does not roll over",
			input: "31 februari 2025",
			found: false,
		},
		{
			name:  "31st of a 30 day month",
			input: "31 november 2025",
			found: false,
		},
		{
			name:  "unknown month name",
			input: "27 month 2025",
			found: false,
		},
		{
			name:  "hour out of range",
			input: "27 september 2025 jam 25.00",
			found: false,
		},
		{
			name:  "leap day on a leap year",
			input: "29 Februari 2024",
			want:  "2024-02-29 10:00",
			found: true,
		},
		{
			name:  "leap day on a non-leap year",
			input: "29 Februari 2025",
			found: false,
		},
		{
			name:  "garbage input",
			input: "besok sore saja",
			found: false,
		},
		{
			name:  "canonical form with invalid day",
			input: "2025-02-31 10:00",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := normalize.ExtractDate(tt.input)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Every valid month name must map through to the canonical form with the
// default 10:00 time when no time is given.
func TestExtractDateAllMonths(t *testing.T) {
	t.Parallel()

	monthInputs := map[string]string{
		"15 januari 2025":   "2025-01-15 10:00",
		"15 februari 2025":  "2025-02-15 10:00",
		"15 maret 2025":     "2025-03-15 10:00",
		"15 april 2025":     "2025-04-15 10:00",
		"15 mei 2025":       "2025-05-15 10:00",
		"15 juni 2025":      "2025-06-15 10:00",
		"15 juli 2025":      "2025-07-15 10:00",
		"15 agustus 2025":   "2025-08-15 10:00",
		"15 september 2025": "2025-09-15 10:00",
		"15 oktober 2025":   "2025-10-15 10:00",
		"15 november 2025":  "2025-11-15 10:00",
		"15 desember 2025":  "2025-12-15 10:00",
	}

	for input, want := range monthInputs {
		got, ok := normalize.ExtractDate(input)
		require.True(t, ok, "input %q", input)
		assert.Equal(t, want, got)
	}
}
