package router

import (
	"context"
	"database/sql"
	"net/http"

	mem "pocket-pets/internal/adapters/storage/memory"
	mdb "pocket-pets/internal/adapters/storage/mongo"
	pg "pocket-pets/internal/adapters/storage/postgres"
	"pocket-pets/internal/domain/care"
	"pocket-pets/internal/domain/pets"
	"pocket-pets/internal/domain/players"
	"pocket-pets/internal/domain/shop"
	"pocket-pets/internal/middleware"
	"pocket-pets/internal/platform/logger"
	"pocket-pets/internal/ports/auth"

	_ "pocket-pets/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // nil => modo dev (X-Debug-User-ID)

	// Storage: DB gana sobre Mongo; sin ninguno, in-memory.
	DB    *sql.DB
	Mongo *mongodriver.Database

	Log logger.Logger

	StartingBalance int
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.RequestLog(opts.Log))
	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		playersRepo players.Repository
		petsRepo    pets.Repository
		careRepo    care.Repository
		shopRepo    shop.Repository
	)

	inMemory := false
	switch {
	case opts.DB != nil:
		playersRepo = pg.NewPlayersRepo(opts.DB)
		petsRepo = pg.NewPetsRepo(opts.DB)
		careRepo = pg.NewCareRepo(opts.DB)
		shopRepo = pg.NewShopRepo(opts.DB)
	case opts.Mongo != nil:
		playersRepo = mdb.NewPlayersRepo(opts.Mongo)
		petsRepo = mdb.NewPetsRepo(opts.Mongo)
		careRepo = mdb.NewCareRepo(opts.Mongo)
		shopRepo = mdb.NewShopRepo(opts.Mongo)
	default:
		inMemory = true
		playersRepo = mem.NewPlayersRepo()
		petsRepo = mem.NewPetsRepo()
		careRepo = mem.NewCareRepo()
		shopRepo = mem.NewShopRepo()
	}

	// Services por módulo. care y shop comparten los locks por jugador:
	// ambos debitan el mismo balance.
	playerLocks := players.NewLocks()
	playersSvc := players.NewService(playersRepo, opts.StartingBalance)
	petsSvc := pets.NewService(petsRepo, playersRepo)
	careSvc := care.NewService(careRepo, petsRepo, playersRepo, playerLocks)
	shopSvc := shop.NewService(shopRepo, playersRepo, playerLocks)

	// En modo dev el catálogo arranca sembrado.
	if inMemory {
		_ = shopSvc.Seed(context.Background())
	}

	// Rutas por módulo
	players.RegisterRoutes(r, playersSvc)
	pets.RegisterRoutes(r, petsSvc)
	care.RegisterRoutes(r, careSvc)
	shop.RegisterRoutes(r, shopSvc)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}
