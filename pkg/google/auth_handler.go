package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/cosroom/cosroom/internal/config"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

type googleAuthRedirect struct {
	RedirectUrl string `json:"redirectUrl"`
}

type authStatus struct {
	Authenticated bool `json:"authenticated"`
}

// GoogleAuth runs the OAuth flow for the read-only calendar scope. The token
// lives in memory only: a restart means logging in again, and nothing about
// the session is ever written anywhere.
type GoogleAuth struct {
	oauthConfig *oauth2.Config

	mu    sync.Mutex
	token *oauth2.Token
	nonce string
}

func NewGoogleAuth(cfg config.Application) *GoogleAuth {
	oauthConfig := &oauth2.Config{
		ClientID:     cfg.Google.ClientId,
		ClientSecret: cfg.Google.ClientSecret,
		Endpoint:     google.Endpoint,
		RedirectURL:  cfg.Host + "/api/auth/callback",
		Scopes:       []string{calendar.CalendarReadonlyScope},
	}

	return &GoogleAuth{oauthConfig: oauthConfig}
}

func (g *GoogleAuth) OAuthLogin(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	stateNonce := uuid.New().String()
	finalUrl := r.URL.Query().Get("finalUrl")

	g.mu.Lock()
	g.nonce = stateNonce
	g.mu.Unlock()

	log.Tracef("Redirecting to Google auth URL with nonce: %s", stateNonce)
	u := g.oauthConfig.AuthCodeURL(finalUrl+"|"+stateNonce, oauth2.AccessTypeOffline, oauth2.ApprovalForce)

	w.WriteHeader(http.StatusOK)
	encodeErr := json.NewEncoder(w).Encode(googleAuthRedirect{
		RedirectUrl: u,
	})
	if encodeErr != nil {
		http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
	}
}

func (g *GoogleAuth) OAuthCallback(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	code := r.FormValue("code")
	state := r.FormValue("state")

	parts := strings.SplitN(state, "|", 2)
	if len(parts) != 2 {
		http.Error(w, "malformed state parameter", http.StatusBadRequest)
		return
	}
	finalUrl := parts[0]
	nonce := parts[1]

	g.mu.Lock()
	expectedNonce := g.nonce
	g.mu.Unlock()
	if nonce == "" || nonce != expectedNonce {
		log.Errorf("OAuth state nonce mismatch")
		http.Redirect(w, r, finalUrl+"?success=false", http.StatusFound)
		return
	}

	token, err := g.oauthConfig.Exchange(context.Background(), code)
	if err != nil {
		err := fmt.Errorf("unable to exchange code for token: %v", err)
		log.Error(err)
		http.Redirect(w, r, finalUrl+"?success=false", http.StatusFound)
		return
	}

	g.mu.Lock()
	g.token = token
	g.nonce = ""
	g.mu.Unlock()

	log.Debug("Successfully obtained Google auth token")
	http.Redirect(w, r, finalUrl+"?success=true", http.StatusFound)
}

func (g *GoogleAuth) OAuthLogout(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	g.mu.Lock()
	g.token = nil
	g.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

func (g *GoogleAuth) IsAuthenticated(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	g.mu.Lock()
	authenticated := g.token != nil
	g.mu.Unlock()

	w.WriteHeader(http.StatusOK)
	encodeErr := json.NewEncoder(w).Encode(authStatus{Authenticated: authenticated})
	if encodeErr != nil {
		http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
	}
}

// getClient returns an authorized HTTP client, or nil when no token is held.
func (g *GoogleAuth) getClient(ctx context.Context) *http.Client {
	g.mu.Lock()
	token := g.token
	g.mu.Unlock()
	if token == nil {
		return nil
	}
	return g.oauthConfig.Client(ctx, token)
}
