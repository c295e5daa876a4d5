package chart

import (
	"html/template"

	"equipdash/internal/dashboard"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Monthly series names and colours
const (
	SeriesRegistered   = "Cadastrados"
	SeriesConnected    = "Conectados"
	SeriesDisconnected = "Desconectados"
)

var LinePalette = Palette{
	SeriesRegistered:   "#2180de",
	SeriesConnected:    "#1bb15e",
	SeriesDisconnected: "#de2121",
}

const (
	lineWidth  = "1900px"
	lineHeight = "700px"
	gridColor  = "lightgrey"
)

// absent is ECharts' marker for a missing point; the line breaks there.
const absent = "-"

// Line renders the monthly series: one marked line per category, dd/mm
// ticks, light grid lines on a white canvas.
func Line(id, title string, series []dashboard.DayPoint) template.HTML {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			ChartID:         id,
			Width:           lineWidth,
			Height:          lineHeight,
			BackgroundColor: "white",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:      title,
			Left:       "center",
			TitleStyle: &opts.TextStyle{FontSize: 22},
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:      opts.Bool(true),
			Orient:    "horizontal",
			Left:      "center",
			Bottom:    "0",
			TextStyle: &opts.TextStyle{FontSize: 12},
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Data",
			Type: "category",
			SplitLine: &opts.SplitLine{
				Show:      opts.Bool(true),
				LineStyle: &opts.LineStyle{Color: gridColor},
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Quantidade",
			Type: "value",
			SplitLine: &opts.SplitLine{
				Show:      opts.Bool(true),
				LineStyle: &opts.LineStyle{Color: gridColor},
			},
		}),
	)

	ticks := make([]string, 0, len(series))
	registered := make([]opts.LineData, 0, len(series))
	connected := make([]opts.LineData, 0, len(series))
	disconnected := make([]opts.LineData, 0, len(series))
	for _, p := range series {
		ticks = append(ticks, p.Day.Format("02/01"))
		registered = append(registered, point(p.Registered))
		connected = append(connected, point(p.Connected))
		disconnected = append(disconnected, point(p.Disconnected))
	}

	line.SetXAxis(ticks).
		AddSeries(SeriesRegistered, registered, seriesStyle(SeriesRegistered)...).
		AddSeries(SeriesConnected, connected, seriesStyle(SeriesConnected)...).
		AddSeries(SeriesDisconnected, disconnected, seriesStyle(SeriesDisconnected)...)

	return render(id, line)
}

func point(c dashboard.Count) opts.LineData {
	if !c.Valid {
		return opts.LineData{Value: absent}
	}
	return opts.LineData{Value: c.Value}
}

func seriesStyle(name string) []charts.SeriesOpts {
	color := LinePalette[name]
	return []charts.SeriesOpts{
		charts.WithLineChartOpts(opts.LineChart{
			ShowSymbol: opts.Bool(true),
			Symbol:     "circle",
			SymbolSize: 12,
		}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: color}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: color}),
	}
}
