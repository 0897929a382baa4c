package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	_ "pawcare-service/docs" // registro del spec swagger
	mem "pawcare-service/internal/adapters/storage/memory"
	pg "pawcare-service/internal/adapters/storage/postgres"
	"pawcare-service/internal/domain/auth"
	"pawcare-service/internal/domain/illnesses"
	"pawcare-service/internal/domain/pets"
	"pawcare-service/internal/domain/records"
	"pawcare-service/internal/domain/weights"
	"pawcare-service/internal/middleware"
	"pawcare-service/internal/platform/logger"
	ports "pawcare-service/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier ports.AuthVerifier // puede ser nil (modo dev con X-Debug-User-ID)
	TokenIssuer  ports.TokenIssuer

	// Opcional: si viene, usa Postgres para pets/records/weights.
	// Usuarios e illnesses viven siempre en memoria (auth simulada + catálogo).
	DB *sql.DB

	// Solo stores en memoria: latencia simulada de escritura y seed de demo.
	WriteDelay time.Duration
	SeedDemo   bool

	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	var (
		petRepo    pets.Repository
		recordRepo records.Repository
		weightRepo weights.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres no disponible, usando memoria", map[string]any{"error": err.Error()})
			}
		}
	}

	feed := mem.NewFeed()
	memOpts := []mem.Option{mem.WithFeed(feed)}
	if opts.WriteDelay > 0 {
		memOpts = append(memOpts, mem.WithWriteDelay(opts.WriteDelay))
	}

	if db != nil {
		petRepo = pg.NewPetsRepo(db)
		recordRepo = pg.NewRecordsRepo(db)
		weightRepo = pg.NewWeightsRepo(db)
	} else {
		petRepo = mem.NewPetRepo(memOpts...)
		recordRepo = mem.NewRecordRepo(memOpts...)
		weightRepo = mem.NewWeightRepo(memOpts...)
	}

	illnessRepo := mem.NewIllnessRepo(memOpts...)
	userRepo := mem.NewUserRepo(memOpts...)

	// Listener de cambios: solo logging por ahora
	feed.Subscribe(func(c mem.Change) {
		log.Debug("store change", map[string]any{
			"entity": c.Entity,
			"id":     c.ID,
			"kind":   string(c.Kind),
		})
	})

	// Services por módulo; records y weights entran como cascades de pets
	recordsSvc := records.NewService(recordRepo)
	weightsSvc := weights.NewService(weightRepo)
	petsSvc := pets.NewService(petRepo, recordsSvc, weightsSvc)
	illnessesSvc := illnesses.NewService(illnessRepo)
	authSvc := auth.NewService(userRepo, opts.TokenIssuer)

	if db == nil && opts.SeedDemo {
		if err := mem.SeedDemo(context.Background(), time.Now(), userRepo, petRepo, recordRepo, weightRepo); err != nil {
			log.Warn("seed demo falló", map[string]any{"error": err.Error()})
		}
	}

	// Rutas por módulo
	auth.RegisterRoutes(r, authSvc)
	pets.RegisterRoutes(r, petsSvc)
	records.RegisterRoutes(r, recordsSvc, petsSvc)
	weights.RegisterRoutes(r, weightsSvc, petsSvc)
	illnesses.RegisterRoutes(r, illnessesSvc)

	return r
}
