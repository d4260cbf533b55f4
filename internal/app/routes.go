package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Availability report
	r.HandleFunc("/api/report", deps.ReportHandler.GetReport).Methods("GET")

	// Pairing windows
	r.HandleFunc("/api/pairing/{calendarId}/next", deps.PairingHandler.GetNextPeriod).Methods("GET")

	// Google authentication
	r.HandleFunc("/api/auth/login", deps.GoogleAuth.OAuthLogin).Methods("GET")
	r.HandleFunc("/api/auth/callback", deps.GoogleAuth.OAuthCallback).Methods("GET")
	r.HandleFunc("/api/auth/logout", deps.GoogleAuth.OAuthLogout).Methods("DELETE")
	r.HandleFunc("/api/auth/status", deps.GoogleAuth.IsAuthenticated).Methods("GET")
}
