package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"time"

	adapthttp "github.com/FeliCaldas/WeightTrackPro/internal/adapter/http"
	"github.com/FeliCaldas/WeightTrackPro/internal/adapter/memory"
	"github.com/FeliCaldas/WeightTrackPro/internal/adapter/postgres"
	"github.com/FeliCaldas/WeightTrackPro/internal/app"
	"github.com/FeliCaldas/WeightTrackPro/internal/config"
	"github.com/FeliCaldas/WeightTrackPro/internal/domain"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default config.yaml if present)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var (
		users    domain.UserRepository
		records  domain.RecordRepository
		sessions domain.SessionRepository
	)
	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		defer func() { _ = db.Close() }()
		users = db
		records = postgres.NewRecordRepo(db)
		sessions = postgres.NewSessionRepo(db)
	} else {
		log.Print("WARNING: no database_url configured, using in-memory storage; all data is lost on restart")
		db := memory.New()
		users = db
		records = db.NewRecordRepo()
		sessions = db.NewSessionRepo()
	}

	ttl := time.Duration(cfg.SessionTTLHours) * time.Hour

	userSvc := app.NewUserService(users, cfg.BcryptCost)
	recordSvc := app.NewRecordService(records, users)
	statsSvc := app.NewStatsService(records, users)
	authSvc := app.NewAuthService(users, sessions, ttl)

	oidcCfg, err := buildOIDC(cfg)
	if err != nil {
		log.Fatalf("oidc: %v", err)
	}

	go sessionJanitor(sessions)

	h := adapthttp.New(userSvc, recordSvc, statsSvc, authSvc, oidcCfg, cfg.WebDir).Handler()
	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func buildOIDC(cfg *config.Config) (adapthttp.OIDCConfig, error) {
	if !cfg.OIDC.Enabled {
		return adapthttp.OIDCConfig{}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	provider, err := oidc.NewProvider(ctx, cfg.OIDC.IssuerURL)
	if err != nil {
		return adapthttp.OIDCConfig{}, err
	}

	return adapthttp.OIDCConfig{
		Enabled:  true,
		Provider: provider,
		OAuth2Config: &oauth2.Config{
			ClientID:     cfg.OIDC.ClientID,
			ClientSecret: cfg.OIDC.ClientSecret,
			RedirectURL:  cfg.OIDC.RedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
		},
	}, nil
}

// sessionJanitor periodically removes expired sessions so the store
// does not grow without bound.
func sessionJanitor(sessions domain.SessionRepository) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := sessions.DeleteExpired(ctx); err != nil {
			log.Printf("session cleanup: %v", err)
		}
		cancel()
	}
}
