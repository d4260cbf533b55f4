package app

import (
	"github.com/cosroom/cosroom/internal/config"
	"github.com/cosroom/cosroom/internal/utils"
	"github.com/cosroom/cosroom/pkg/google"
	"github.com/cosroom/cosroom/pkg/pairing"
	"github.com/cosroom/cosroom/pkg/report"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	GoogleAuth    *google.GoogleAuth
	GoogleService *google.Service

	ReportService report.Service
	ReportHandler *report.Handler

	PairingHandler *pairing.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Clock = &utils.SystemClock{}

	deps.GoogleAuth = google.NewGoogleAuth(cfg)
	deps.GoogleService = google.NewService(deps.GoogleAuth)

	deps.ReportService = report.NewService(deps.GoogleService, deps.Clock, cfg.Rooms)
	deps.ReportHandler = report.NewHandler(deps.ReportService)

	deps.PairingHandler = pairing.NewHandler(deps.GoogleService, deps.Clock, cfg.Rooms.PairingQuery)

	return deps
}
