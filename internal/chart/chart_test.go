package chart

import (
	"strings"
	"testing"
	"time"

	"equipdash/internal/dashboard"
	"equipdash/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusSlices(t *testing.T) {
	records := []models.EquipmentRecord{
		{Status: models.StatusDisconnected},
		{Status: models.StatusConnected},
		{Status: models.StatusDisconnected},
		{Status: "Manutencao"},
	}

	assert.Equal(t, []Slice{
		{Label: "Conectado", Value: 1},
		{Label: "Desconectado", Value: 2},
		{Label: "Manutencao", Value: 1},
	}, StatusSlices(records))
}

func TestStatusSlices_SingleStatusHasOneSlice(t *testing.T) {
	slices := StatusSlices([]models.EquipmentRecord{{Status: models.StatusConnected}})

	require.Len(t, slices, 1)
	assert.Equal(t, Slice{Label: "Conectado", Value: 1}, slices[0])
	assert.Empty(t, StatusSlices(nil))
}

func TestTrafficSlices_KeepsNegativeValue(t *testing.T) {
	assert.Equal(t, []Slice{
		{Label: RecentTraffic, Value: 5},
		{Label: NotRecentTraffic, Value: -2},
	}, TrafficSlices(5, -2))
}

func TestPie(t *testing.T) {
	html := string(Pie("pie_all", "Geral - Conectados x Desconectados",
		[]Slice{{Label: "Conectado", Value: 3}, {Label: "Desconectado", Value: 1}}, StatusPalette))

	assert.Contains(t, html, `id="pie_all"`)
	assert.Contains(t, html, "Geral - Conectados x Desconectados")
	assert.Contains(t, html, darkGreen)
	assert.Contains(t, html, lightGray)
	assert.Contains(t, html, "echarts.init")
	assert.Contains(t, html, `"fontSize":30`)
}

func TestPie_Empty(t *testing.T) {
	var html string
	assert.NotPanics(t, func() {
		html = string(Pie("pie_today", "Conectados x Desconectados", nil, StatusPalette))
	})
	assert.Contains(t, html, `id="pie_today"`)
	assert.NotContains(t, html, darkGreen)
}

func TestLine(t *testing.T) {
	series := []dashboard.DayPoint{
		{
			Day:          time1(),
			Registered:   dashboard.Count{Value: 2, Valid: true},
			Connected:    dashboard.Count{Value: 1, Valid: true},
			Disconnected: dashboard.Count{Value: 1, Valid: true},
		},
		{
			Day:          time1().AddDate(0, 0, 1),
			Registered:   dashboard.Count{Value: 1, Valid: true},
			Disconnected: dashboard.Count{Value: 1, Valid: true},
		},
	}

	html := string(Line("line_month", "Movimentação de Equipamentos por Dia", series))

	assert.Contains(t, html, `id="line_month"`)
	assert.Contains(t, html, "goecharts_line_month.setOption")
	assert.Contains(t, html, "width:1900px;height:700px;")
	assert.Contains(t, html, `"data":["01/03","02/03"]`, "x axis carries the day ticks")
	for name, color := range LinePalette {
		assert.Contains(t, html, name)
		assert.Contains(t, html, color)
	}
	assert.Contains(t, html, `"-"`, "absent connected value on 02/03 is a gap")
}

func TestLine_Empty(t *testing.T) {
	var html string
	assert.NotPanics(t, func() {
		html = string(Line("line_month", "Movimentação de Equipamentos por Dia", nil))
	})
	assert.True(t, strings.Contains(html, `id="line_month"`))
}

func time1() time.Time {
	return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
}
