package dashboard

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"equipdash/db"
	"equipdash/models"
)

// Month identifies a calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses YYYY-MM.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) String() string {
	return fmt.Sprintf("%d-%02d", m.Year, int(m.Month))
}

// Count is a per-day value that may be absent from its series.
type Count struct {
	Value int64
	Valid bool
}

// DayCount is one row of a per-day GROUP BY.
type DayCount struct {
	Day   time.Time
	Count int64
}

// DayPoint is one day of the combined monthly series.
type DayPoint struct {
	Day          time.Time
	Registered   Count
	Connected    Count
	Disconnected Count
}

// Averages are floored means of the per-creation counts of a month.
type Averages struct {
	Registered   int64
	Connected    int64
	Disconnected int64
}

type MonthlyDashboard struct {
	Month    Month
	Series   []DayPoint
	Averages Averages
	// Today and Records describe the snapshot created today, shown below the chart.
	Today    time.Time
	Records  []models.EquipmentRecord
	Failures []error
}

// TodayLabel renders Today as dd/mm/yyyy.
func (m MonthlyDashboard) TodayLabel() string {
	return m.Today.Format("02/01/2006")
}

// Monthly builds the dashboard of month; today selects the snapshot listed
// under the chart.
func (s *Service) Monthly(ctx context.Context, month Month, today time.Time) MonthlyDashboard {
	dialect := s.querier.Dialect()
	today = models.Day(today)
	year, mon := month.Year, int(month.Month)

	r := s.newRun(ctx)

	registered := r.perDay(perDayQuery(dialect, ""), year, mon)
	connected := r.perDay(perDayQuery(dialect, models.StatusConnected), statusArgs(models.StatusConnected, year, mon)...)
	disconnected := r.perDay(perDayQuery(dialect, models.StatusDisconnected), statusArgs(models.StatusDisconnected, year, mon)...)

	dashboard := MonthlyDashboard{
		Month:  month,
		Series: JoinSeries(registered, connected, disconnected),
		Averages: Averages{
			Registered:   r.average(averageQuery(dialect, ""), year, mon),
			Connected:    r.average(averageQuery(dialect, models.StatusConnected), statusArgs(models.StatusConnected, year, mon)...),
			Disconnected: r.average(averageQuery(dialect, models.StatusDisconnected), statusArgs(models.StatusDisconnected, year, mon)...),
		},
		Today:   today,
		Records: recordsFrom(r.query(recordsByCreationQuery, models.FormatDate(today)).Table),
	}

	dashboard.Failures = r.failures
	if len(r.failures) > 0 {
		s.log.WithField("month", month.String()).WithField("failures", len(r.failures)).Warn("monthly dashboard rendered with failed queries")
	}

	return dashboard
}

func (r *run) perDay(query string, args ...interface{}) []DayCount {
	table := r.query(query, args...).Table
	counts := make([]DayCount, 0, table.Len())
	for i := 0; i < table.Len(); i++ {
		day := db.AsDate(table.Value(i, "day"))
		if day.IsZero() {
			continue
		}
		counts = append(counts, DayCount{Day: day, Count: db.AsInt64(table.Value(i, "equips"))})
	}
	return counts
}

func (r *run) average(query string, args ...interface{}) int64 {
	return FloorAverage(r.query(query, args...).Table.Value(0, "average"))
}

// FloorAverage floors an AVG result to a non-negative integer; NULL (no
// samples) is 0.
func FloorAverage(v interface{}) int64 {
	f, ok := db.AsFloat(v)
	if !ok || math.IsNaN(f) || f < 0 {
		return 0
	}
	return int64(math.Floor(f))
}

// JoinSeries full-outer-joins the three per-day series on the day key. A day
// missing from a series keeps that series absent; no day is dropped.
func JoinSeries(registered, connected, disconnected []DayCount) []DayPoint {
	points := make(map[time.Time]*DayPoint)
	point := func(day time.Time) *DayPoint {
		day = models.Day(day)
		p, ok := points[day]
		if !ok {
			p = &DayPoint{Day: day}
			points[day] = p
		}
		return p
	}

	for _, c := range registered {
		point(c.Day).Registered = Count{Value: c.Count, Valid: true}
	}
	for _, c := range connected {
		point(c.Day).Connected = Count{Value: c.Count, Valid: true}
	}
	for _, c := range disconnected {
		point(c.Day).Disconnected = Count{Value: c.Count, Valid: true}
	}

	series := make([]DayPoint, 0, len(points))
	for _, p := range points {
		series = append(series, *p)
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Day.Before(series[j].Day)
	})
	return series
}
