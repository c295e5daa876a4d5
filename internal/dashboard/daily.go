package dashboard

import (
	"context"
	"fmt"
	"time"

	"equipdash/models"
)

// Counts splits a population of records by status.
type Counts struct {
	Total        int64
	Connected    int64
	Disconnected int64
}

// Traffic buckets the records last connected on the selected day by how
// recently they carried traffic. NotRecent is Total minus Recent as computed
// by two independent queries and may be negative; it is never clamped.
type Traffic struct {
	Total     int64
	Recent    int64
	NotRecent int64
}

type DailyDashboard struct {
	Date     time.Time
	Previous time.Time
	// Records is the snapshot created on Date.
	Records []models.EquipmentRecord
	// TodayRecords are the records whose last connection happened on Date.
	TodayRecords []models.EquipmentRecord
	// Totals counts the creation-date population, Today the last-connection
	// population. The two predicates differ on purpose until domain owners
	// decide otherwise.
	Totals   Counts
	Today    Counts
	Traffic  Traffic
	Failures []error
}

// DayMonth renders Date as dd/mm.
func (d DailyDashboard) DayMonth() string {
	return d.Date.Format("02/01")
}

// Complete renders Date as dd/mm/yyyy.
func (d DailyDashboard) Complete() string {
	return d.Date.Format("02/01/2006")
}

// PreviousDayMonth renders the day before Date as dd/mm.
func (d DailyDashboard) PreviousDayMonth() string {
	return d.Previous.Format("02/01")
}

// ParseDate parses an ISO calendar day (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// Daily builds the dashboard of one selected day.
func (s *Service) Daily(ctx context.Context, date time.Time) DailyDashboard {
	date = models.Day(date)
	previous := date.AddDate(0, 0, -1)
	day := models.FormatDate(date)
	previousDay := models.FormatDate(previous)

	r := s.newRun(ctx)

	dashboard := DailyDashboard{
		Date:         date,
		Previous:     previous,
		Records:      recordsFrom(r.query(recordsByCreationQuery, day).Table),
		TodayRecords: recordsFrom(r.query(recordsByLastConnectionQuery, day).Table),
		Totals:       r.counts(byCreation, day),
		Today:        r.counts(byLastConnection, day),
	}

	dashboard.Traffic.Total = r.count(trafficTotalQuery, day, day)
	dashboard.Traffic.Recent = r.count(trafficRecentQuery, day, day, previousDay)
	dashboard.Traffic.NotRecent = dashboard.Traffic.Total - dashboard.Traffic.Recent

	dashboard.Failures = r.failures
	if len(r.failures) > 0 {
		s.log.WithField("date", day).WithField("failures", len(r.failures)).Warn("daily dashboard rendered with failed queries")
	}

	return dashboard
}

func (r *run) counts(dateColumn, day string) Counts {
	return Counts{
		Total:        r.count(countQuery(dateColumn, ""), day),
		Connected:    r.count(countQuery(dateColumn, models.StatusConnected), statusArgs(models.StatusConnected, day)...),
		Disconnected: r.count(countQuery(dateColumn, models.StatusDisconnected), statusArgs(models.StatusDisconnected, day)...),
	}
}
