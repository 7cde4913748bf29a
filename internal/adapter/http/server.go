package adapthttp

import (
	"net/http"

	"github.com/FeliCaldas/WeightTrackPro/internal/app"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// OIDCConfig holds the optional single-sign-on configuration. When
// Enabled is false the SSO endpoints answer 404.
type OIDCConfig struct {
	Enabled      bool
	Provider     *oidc.Provider
	OAuth2Config *oauth2.Config
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	users   *app.UserService
	records *app.RecordService
	stats   *app.StatsService
	auth    *app.AuthService
	oidc    OIDCConfig
	webDir  string
}

// New creates a Server wired to the given application services.
func New(us *app.UserService, rs *app.RecordService, st *app.StatsService, au *app.AuthService, oidc OIDCConfig, webDir string) *Server {
	return &Server{users: us, records: rs, stats: st, auth: au, oidc: oidc, webDir: webDir}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/auth/login", s.handleLogin)
	api.HandleFunc("/auth/logout", s.handleLogout)
	api.HandleFunc("/auth/setup", s.handleSetup)
	api.HandleFunc("/auth/config", s.handleAuthConfig)
	api.HandleFunc("/auth/sso/login", s.handleSSOLogin)
	api.HandleFunc("/auth/sso/callback", s.handleSSOCallback)
	api.HandleFunc("/roster", s.handleRoster)

	protected := http.NewServeMux()
	protected.HandleFunc("/auth/me", s.handleMe)
	protected.HandleFunc("/users", s.handleUsers)
	protected.HandleFunc("/users/active", s.handleActiveWorkers)
	protected.HandleFunc("/users/", s.handleUserByID)
	protected.HandleFunc("/records", s.handleRecords)
	protected.HandleFunc("/stats/daily", s.handleDailyStats)
	protected.HandleFunc("/stats/monthly", s.handleMonthlyStats)
	protected.HandleFunc("/stats/summary", s.handleSummaryStats)
	protected.HandleFunc("/stats/dashboard", s.handleDashboardStats)
	api.Handle("/", s.authMiddleware(protected))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	if s.webDir != "" {
		root.Handle("/", spaFromDisk(s.webDir))
	}

	return s.loggingMiddleware(withNoCache(root))
}
