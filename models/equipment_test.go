package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEquipmentStatus_Constants(t *testing.T) {
	assert.Equal(t, EquipmentStatus("Conectado"), StatusConnected)
	assert.Equal(t, EquipmentStatus("Desconectado"), StatusDisconnected)
}

func TestEquipmentRecord_ConnectedOn(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	record := EquipmentRecord{
		Model:              "ONT-100",
		SerialNumber:       "SN123",
		Status:             StatusConnected,
		LastConnectionDate: time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC),
	}

	assert.True(t, record.ConnectedOn(day))
	assert.False(t, record.ConnectedOn(day.AddDate(0, 0, 1)))
}

func TestSameDay_IgnoresClock(t *testing.T) {
	a := time.Date(2024, 3, 10, 0, 0, 1, 0, time.UTC)
	b := time.Date(2024, 3, 10, 23, 59, 59, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, a.AddDate(0, 1, 0)))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "", FormatDate(time.Time{}))
	assert.Equal(t, "2024-03-01", FormatDate(time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Day(time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)))
}
