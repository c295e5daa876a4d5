package web

import (
	"testing"
	"time"

	"equipdash/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTable_Highlight(t *testing.T) {
	reference := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	records := []models.EquipmentRecord{
		{
			Model:              "ONT-1",
			SerialNumber:       "SN1",
			IPAddress:          "10.0.0.1",
			Port:               "8080",
			Status:             models.StatusConnected,
			LastConnectionDate: reference,
			LastConnectionTime: 8*time.Hour + 15*time.Minute,
			LastTrafficDate:    reference.AddDate(0, 0, -1),
		},
		{
			Model:              "ONT-2",
			Status:             models.StatusDisconnected,
			LastConnectionDate: reference.AddDate(0, 0, -2),
			LastConnectionTime: "23:59:01",
		},
	}

	rows := BuildTable(records, reference)

	require.Len(t, rows, 2)
	assert.False(t, rows[0].Highlight)
	assert.Equal(t, "", rows[0].Class())
	assert.Equal(t, "2024-03-10", rows[0].LastConnectionDate)
	assert.Equal(t, "08:15:00", rows[0].LastConnectionTime)
	assert.Equal(t, "2024-03-09", rows[0].LastTrafficDate)
	assert.Equal(t, "Conectado", rows[0].Status)

	assert.True(t, rows[1].Highlight)
	assert.Equal(t, highlightClass, rows[1].Class())
	assert.Equal(t, "23:59:01", rows[1].LastConnectionTime)
	assert.Equal(t, "", rows[1].LastTrafficDate)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00:00", FormatClock(time.Duration(0)))
	assert.Equal(t, "13:05:09", FormatClock(13*time.Hour+5*time.Minute+9*time.Second))
	assert.Equal(t, "02:00:00", FormatClock(26*time.Hour))
	assert.Equal(t, "07:30:00", FormatClock(time.Date(2024, 3, 10, 7, 30, 0, 0, time.UTC)))
	assert.Equal(t, "7:30", FormatClock("7:30"))
	assert.Equal(t, "", FormatClock(nil))
}
