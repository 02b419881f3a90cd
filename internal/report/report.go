// Package report turns a customer listing into admin-facing artifacts:
// a CSV export and summary statistics. Both are pure transformations of
// the listing and carry no storage contract of their own.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/hafizn/kirimbot/internal/database"
	"github.com/hafizn/kirimbot/internal/normalize"
)

// WriteCSV writes the listing as comma-separated rows with a header line.
func WriteCSV(w io.Writer, customers []database.Customer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"id", "name", "phone", "address", "delivery_date"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, c := range customers {
		row := []string{
			fmt.Sprintf("%d", c.ID),
			c.Name,
			c.Phone,
			c.Address,
			c.DeliveryDate,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Summary aggregates the stored record set for the admin dashboard.
type Summary struct {
	Total        int
	Upcoming     int
	UniquePhones int
	PerMonth     map[string]int
}

// Summarize computes summary statistics over a listing. Upcoming counts
// deliveries due today or later relative to now. Records whose stored
// delivery date no longer parses are counted in Total but skipped for the
// date-derived figures.
func Summarize(customers []database.Customer, now time.Time) Summary {
	s := Summary{
		Total:    len(customers),
		PerMonth: make(map[string]int),
	}

	phones := make(map[string]struct{}, len(customers))
	today := dayOf(now)

	for _, c := range customers {
		if c.Phone != "" {
			phones[c.Phone] = struct{}{}
		}

		t, err := time.Parse(normalize.TimestampLayout, c.DeliveryDate)
		if err != nil {
			continue
		}

		s.PerMonth[t.Format("2006-01")]++
		if !dayOf(t).Before(today) {
			s.Upcoming++
		}
	}

	s.UniquePhones = len(phones)
	return s
}

// dayOf reduces a time to its wall-clock calendar day. Comparing these
// keeps "due today" aligned with the clock the caller sees, whatever its
// zone offset.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
