package app

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const requestIdHeader = "X-Request-Id"

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router) {

	// Tag every request with an id so log lines from one report computation
	// can be correlated.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			requestId := req.Header.Get(requestIdHeader)
			if requestId == "" {
				requestId = uuid.New().String()
			}
			w.Header().Set(requestIdHeader, requestId)
			log.Debugf("[%s] %s %s", requestId, req.Method, req.URL.Path)
			next.ServeHTTP(w, req)
		})
	})
}
