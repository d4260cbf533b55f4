package report

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cosroom/cosroom/internal/rest"
	"github.com/cosroom/cosroom/pkg/calendar"
	"github.com/cosroom/cosroom/pkg/directory"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GetReport serves the current availability report as JSON. It renders the
// report as-is; no classification logic lives here.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	report, err := h.service.Generate(r.Context())
	if err != nil {
		if errors.Is(err, calendar.ErrUnauthenticated) {
			w.WriteHeader(http.StatusUnauthorized)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error: "log in required",
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		if errors.Is(err, directory.ErrNoPrimaryCalendar) {
			log.Errorf("workspace misconfiguration: %v", err)
			w.WriteHeader(http.StatusInternalServerError)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "workspace misconfiguration",
				Details: err.Error(),
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		log.Errorf("failed to generate report: %v", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(report); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
