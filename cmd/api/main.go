package main

import (
	"net/http"
	"time"

	tokenadapter "pawcare-service/internal/adapters/auth/token"
	"pawcare-service/internal/platform/config"
	"pawcare-service/internal/platform/logger"
	"pawcare-service/internal/router"
)

// @title PawCare API
// @version 1.0
// @description API de salud de mascotas: perfiles, historial médico, peso y catálogo de enfermedades.
// @BasePath /
func main() {
	cfg := config.Load()
	log := logger.NewFromEnv()

	opts := router.Options{
		WriteDelay: cfg.WriteDelay,
		SeedDemo:   cfg.SeedDemo,
		Log:        log,
	}

	// Sin JWT_SECRET: modo dev; /auth emite tokens con un secreto efímero y
	// además se acepta X-Debug-User-ID.
	secret := cfg.JWTSecret
	if secret == "" {
		secret = "dev-secret-do-not-use"
		log.Warn("JWT_SECRET vacío, usando secreto de dev", nil)
	}
	issuer := tokenadapter.New(secret, cfg.AppName)
	opts.TokenIssuer = issuer
	opts.AuthVerifier = issuer

	r := router.NewRouter(opts)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": srv.Addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
	}
}
