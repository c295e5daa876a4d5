package web

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all routes for the web interface
func (h *WebHandler) SetupRoutes() *mux.Router {
	r := mux.NewRouter()

	// Dashboards
	r.HandleFunc("/", h.Index).Methods("GET")
	r.HandleFunc("/update_date", h.UpdateDate).Methods("POST")
	r.HandleFunc("/dashboard-mensal", h.Monthly).Methods("GET")
	r.HandleFunc("/update_month", h.UpdateMonth).Methods("POST")

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return r
}
