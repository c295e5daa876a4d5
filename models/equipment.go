package models

import (
	"time"
)

type EquipmentStatus string

// Values stored in dados.statusEquip
const (
	StatusConnected    EquipmentStatus = "Conectado"
	StatusDisconnected EquipmentStatus = "Desconectado"
)

// DateLayout is the ISO calendar-day layout used for query parameters and display.
const DateLayout = "2006-01-02"

// EquipmentRecord is one row of the dados table: a piece of equipment as
// observed on the snapshot day given by CreatedOn.
type EquipmentRecord struct {
	Model              string
	SerialNumber       string
	IPAddress          string
	Port               string
	Status             EquipmentStatus
	LastConnectionDate time.Time
	// LastConnectionTime is kept as the driver delivered it: a
	// time.Duration since midnight, a time.Time or clock text.
	LastConnectionTime interface{}
	LastTrafficDate    time.Time
	CreatedOn          time.Time
}

// ConnectedOn reports whether the record's last connection happened on day.
func (r EquipmentRecord) ConnectedOn(day time.Time) bool {
	return SameDay(r.LastConnectionDate, day)
}

// SameDay compares the calendar days of a and b, ignoring clock and location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Day truncates t to its calendar day in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a calendar day, or an empty string for a missing date.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
