package web

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"equipdash/internal/chart"
	"equipdash/internal/dashboard"
	"equipdash/internal/metrics"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageDaily   = "daily"
	pageMonthly = "monthly"
)

// DashboardService builds the dashboards rendered by the handlers.
type DashboardService interface {
	Daily(ctx context.Context, date time.Time) dashboard.DailyDashboard
	Monthly(ctx context.Context, month dashboard.Month, today time.Time) dashboard.MonthlyDashboard
}

type WebHandler struct {
	service   DashboardService
	templates *template.Template
	log       logrus.FieldLogger
	now       func() time.Time
}

type pageData struct {
	Title        string
	Page         string
	AssetsHost   string
	Degraded     bool
	FailureCount int
	Table        []TableRow
}

type dailyPageData struct {
	pageData
	SelectedDate string
	Daily        dashboard.DailyDashboard
	GraphAll     template.HTML
	GraphToday   template.HTML
	GraphTraffic template.HTML
}

type monthlyPageData struct {
	pageData
	SelectedMonth string
	Monthly       dashboard.MonthlyDashboard
	LineChart     template.HTML
}

func NewWebHandler(service DashboardService, log logrus.FieldLogger) (*WebHandler, error) {
	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &WebHandler{
		service:   service,
		templates: tmpl,
		log:       log,
		now:       time.Now,
	}, nil
}

// WithClock replaces the clock used to pick default dates.
func (h *WebHandler) WithClock(now func() time.Time) *WebHandler {
	h.now = now
	return h
}

// Index renders the daily dashboard of selected_date, today by default.
// A selected_date that is not YYYY-MM-DD is answered with 400 Bad Request.
func (h *WebHandler) Index(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer observePage(pageDaily, start)

	date := h.now()
	if raw := r.URL.Query().Get("selected_date"); raw != "" {
		parsed, err := dashboard.ParseDate(raw)
		if err != nil {
			http.Error(w, "invalid selected_date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		date = parsed
	}

	daily := h.service.Daily(r.Context(), date)
	data := dailyPageData{
		pageData: h.page("Dashboard Diário", pageDaily, daily.Failures,
			BuildTable(daily.Records, daily.Date)),
		SelectedDate: daily.Date.Format("2006-01-02"),
		Daily:        daily,
		GraphAll: chart.Pie("graph_all",
			"Geral - Conectados x Desconectados",
			chart.StatusSlices(daily.Records), chart.StatusPalette),
		GraphToday: chart.Pie("graph_today",
			"Conectados x Desconectados em "+daily.Complete(),
			chart.StatusSlices(daily.TodayRecords), chart.StatusPalette),
		GraphTraffic: chart.Pie("graph_traffic",
			"Tráfego de Equipamentos em "+daily.Complete(),
			chart.TrafficSlices(daily.Traffic.Recent, daily.Traffic.NotRecent), chart.TrafficPalette),
	}
	h.render(w, "index.html", data)
}

// UpdateDate forwards the submitted date to the daily dashboard.
func (h *WebHandler) UpdateDate(w http.ResponseWriter, r *http.Request) {
	target := "/"
	if date := r.PostFormValue("date"); date != "" {
		target += "?selected_date=" + url.QueryEscape(date)
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// Monthly renders the monthly dashboard of month, the current month by
// default. A month that is not YYYY-MM is answered with 400 Bad Request.
func (h *WebHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer observePage(pageMonthly, start)

	today := h.now()
	month := dashboard.MonthOf(today)
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := dashboard.ParseMonth(raw)
		if err != nil {
			http.Error(w, "invalid month, expected YYYY-MM", http.StatusBadRequest)
			return
		}
		month = parsed
	}

	monthly := h.service.Monthly(r.Context(), month, today)
	data := monthlyPageData{
		pageData: h.page("Dashboard Mensal", pageMonthly, monthly.Failures,
			BuildTable(monthly.Records, monthly.Today)),
		SelectedMonth: month.String(),
		Monthly:       monthly,
		LineChart:     chart.Line("graph_monthly", "Movimentação de Equipamentos por Dia", monthly.Series),
	}
	h.render(w, "dashboard-mensal.html", data)
}

// UpdateMonth forwards the submitted month to the monthly dashboard.
func (h *WebHandler) UpdateMonth(w http.ResponseWriter, r *http.Request) {
	target := "/dashboard-mensal"
	if month := r.PostFormValue("month"); month != "" {
		target += "?month=" + url.QueryEscape(month)
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func (h *WebHandler) page(title, page string, failures []error, table []TableRow) pageData {
	return pageData{
		Title:        title,
		Page:         page,
		AssetsHost:   chart.AssetsHost,
		Degraded:     len(failures) > 0,
		FailureCount: len(failures),
		Table:        table,
	}
}

// render executes into a buffer first so a template failure never leaves a
// half-written 200 behind.
func (h *WebHandler) render(w http.ResponseWriter, name string, data interface{}) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		h.log.WithError(err).WithField("template", name).Error("Failed to execute template")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		h.log.WithError(err).Debug("Failed to write response")
	}
}

func observePage(page string, start time.Time) {
	metrics.PageRenders.WithLabelValues(page).Inc()
	metrics.PageHistogram.WithLabelValues(page).Observe(time.Since(start).Seconds())
}
