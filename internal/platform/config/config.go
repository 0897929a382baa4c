package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config agrupa todo lo que el servicio lee del entorno.
type Config struct {
	Port string

	// DB_DSN vacío => stores en memoria
	DBDSN string

	JWTSecret string
	AppName   string

	// Latencia simulada de escritura en los stores en memoria (solo dev)
	WriteDelay time.Duration

	// SEED_DEMO=true carga datos de demostración al arrancar (solo memoria)
	SeedDemo bool
}

// Load lee .env (si existe) y luego el entorno.
func Load() Config {
	// .env es opcional; en prod las vars vienen del entorno directamente
	_ = godotenv.Load()

	return Config{
		Port:       getEnv("PORT", "8080"),
		DBDSN:      strings.TrimSpace(os.Getenv("DB_DSN")),
		JWTSecret:  strings.TrimSpace(os.Getenv("JWT_SECRET")),
		AppName:    getEnv("APP_NAME", "pawcare-service"),
		WriteDelay: getEnvMillis("WRITE_DELAY_MS", 0),
		SeedDemo:   getEnvBool("SEED_DEMO", false),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvMillis(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms < 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}
