package chart

import (
	"html/template"

	"equipdash/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Palette maps a slice label to its colour.
type Palette map[string]string

const (
	darkGreen = "#0f6636"
	lightGray = "#dcdcdc"

	sliceLabelSize = 30
)

// Traffic recency labels
const (
	RecentTraffic    = "Com Tráfego Recente"
	NotRecentTraffic = "Sem Tráfego Recente"
)

var (
	StatusPalette = Palette{
		string(models.StatusConnected):    darkGreen,
		string(models.StatusDisconnected): lightGray,
	}
	TrafficPalette = Palette{
		RecentTraffic:    darkGreen,
		NotRecentTraffic: lightGray,
	}
)

// Slice is one labelled category of a pie.
type Slice struct {
	Label string
	Value int64
}

// StatusSlices counts records per status. Connected and Disconnected come
// first; statuses without rows get no slice.
func StatusSlices(records []models.EquipmentRecord) []Slice {
	counts := make(map[models.EquipmentStatus]int64)
	order := []models.EquipmentStatus{models.StatusConnected, models.StatusDisconnected}
	for _, r := range records {
		if _, seen := counts[r.Status]; !seen && r.Status != models.StatusConnected && r.Status != models.StatusDisconnected {
			order = append(order, r.Status)
		}
		counts[r.Status]++
	}

	var slices []Slice
	for _, status := range order {
		if n := counts[status]; n > 0 {
			slices = append(slices, Slice{Label: string(status), Value: n})
		}
	}
	return slices
}

// TrafficSlices builds the recency pie from its two explicit values.
func TrafficSlices(recent, notRecent int64) []Slice {
	return []Slice{
		{Label: RecentTraffic, Value: recent},
		{Label: NotRecentTraffic, Value: notRecent},
	}
}

// Pie renders a status pie: 22px centred title, slice labels inside the
// plot, 12px horizontal legend below it.
func Pie(id, title string, slices []Slice, palette Palette) template.HTML {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			ChartID: id,
			Width:   "100%",
			Height:  "450px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:      title,
			Left:       "center",
			TitleStyle: &opts.TextStyle{FontSize: 22},
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "item",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:      opts.Bool(true),
			Orient:    "horizontal",
			Left:      "center",
			Bottom:    "0",
			TextStyle: &opts.TextStyle{FontSize: 12},
		}),
	)

	data := make([]opts.PieData, 0, len(slices))
	for _, s := range slices {
		item := opts.PieData{Name: s.Label, Value: s.Value}
		if color, ok := palette[s.Label]; ok {
			item.ItemStyle = &opts.ItemStyle{Color: color}
		}
		data = append(data, item)
	}

	pie.AddSeries(title, data).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Position:  "inside",
				Formatter: "{d}%",
				FontSize:  sliceLabelSize,
			}),
			charts.WithPieChartOpts(opts.PieChart{
				Radius: "65%",
			}),
		)

	return render(id, pie)
}
