package pairing

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cosroom/cosroom/internal/rest"
	"github.com/cosroom/cosroom/internal/utils"
	"github.com/cosroom/cosroom/pkg/calendar"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	provider calendar.DataSourceProvider
	clock    utils.Clock
	marker   string
}

func NewHandler(provider calendar.DataSourceProvider, clock utils.Clock, marker string) *Handler {
	return &Handler{provider: provider, clock: clock, marker: marker}
}

// GetNextPeriod serves the earliest open pairing window for one person's
// calendar, or 404 when they have no open availability.
func (h *Handler) GetNextPeriod(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	calendarID := mux.Vars(r)["calendarId"]

	ds, err := h.provider.DataSource(r.Context())
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
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	window, err := NewService(ds, h.marker).NextPeriod(r.Context(), calendarID, h.clock.Now())
	if err != nil {
		log.Errorf("failed to find pairing period for %s: %v", calendarID, err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	if window == nil {
		w.WriteHeader(http.StatusNotFound)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "no open pairing window",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(window); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
