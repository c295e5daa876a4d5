package web

import (
	"fmt"
	"time"

	"equipdash/models"
)

const highlightClass = "bg-warning"

// TableRow is one rendered line of the equipment table. Values are plain
// text; the template escapes them.
type TableRow struct {
	Model              string
	SerialNumber       string
	IPAddress          string
	Port               string
	Status             string
	LastConnectionDate string
	LastConnectionTime string
	LastTrafficDate    string
	// Highlight marks a row whose last connection is not on the reference day.
	Highlight bool
}

// Class is the CSS class of the row.
func (r TableRow) Class() string {
	if r.Highlight {
		return highlightClass
	}
	return ""
}

// BuildTable turns records into table rows, highlighting those whose last
// connection date differs from reference.
func BuildTable(records []models.EquipmentRecord, reference time.Time) []TableRow {
	rows := make([]TableRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, TableRow{
			Model:              r.Model,
			SerialNumber:       r.SerialNumber,
			IPAddress:          r.IPAddress,
			Port:               r.Port,
			Status:             string(r.Status),
			LastConnectionDate: models.FormatDate(r.LastConnectionDate),
			LastConnectionTime: FormatClock(r.LastConnectionTime),
			LastTrafficDate:    models.FormatDate(r.LastTrafficDate),
			Highlight:          !r.ConnectedOn(reference),
		})
	}
	return rows
}

// FormatClock renders a time of day as HH:MM:SS. Durations since midnight
// and timestamps are converted; text passes through unchanged.
func FormatClock(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case time.Duration:
		if t < 0 {
			t = -t
		}
		t %= 24 * time.Hour
		return fmt.Sprintf("%02d:%02d:%02d", int(t/time.Hour), int(t%time.Hour/time.Minute), int(t%time.Minute/time.Second))
	case time.Time:
		return t.Format("15:04:05")
	}
	return fmt.Sprint(v)
}
