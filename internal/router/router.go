package router

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	_ "adoptme/docs"
	mem "adoptme/internal/adapters/storage/memory"
	pg "adoptme/internal/adapters/storage/postgres"
	"adoptme/internal/domain/adoptions"
	"adoptme/internal/domain/pets"
	"adoptme/internal/domain/sessions"
	"adoptme/internal/domain/users"
	"adoptme/internal/middleware"
	"adoptme/internal/platform/ident"
	"adoptme/internal/platform/logger"
	"adoptme/internal/platform/passwords"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, intenta DB_DSN y cae a in-memory.
	DB *sql.DB

	Log logger.Logger

	// Secret HS256 para la cookie de sesión. Fallback: SESSION_SECRET.
	SessionSecret string

	// BcryptCost 0 => default. En tests conviene bcrypt.MinCost.
	BcryptCost int
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/apidocs/*", httpSwagger.Handler(
		httpSwagger.URL("/apidocs/doc.json"),
	))

	var (
		usersRepo     users.Repository
		petsRepo      pets.Repository
		adoptionsRepo adoptions.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres no disponible, usando memoria", map[string]any{"err": err.Error()})
			}
		}
	}

	if db != nil {
		usersRepo = pg.NewUsersRepo(db)
		petsRepo = pg.NewPetsRepo(db)
		adoptionsRepo = pg.NewAdoptionsRepo(db)
	} else {
		memPets := mem.NewPetRepo()
		usersRepo = mem.NewUserRepo()
		petsRepo = memPets
		adoptionsRepo = mem.NewAdoptionRepo(memPets)
	}

	ids := ident.UUID{}
	hasher := passwords.Bcrypt{Cost: opts.BcryptCost}

	secret := opts.SessionSecret
	if secret == "" {
		secret = os.Getenv("SESSION_SECRET")
	}
	if secret == "" {
		// Deploy siempre lo trae por env; si falta, los tokens de sesión
		// quedan firmados con una clave conocida.
		log.Warn("SESSION_SECRET no configurado, usando clave de desarrollo", map[string]any{
			"env": "SESSION_SECRET",
		})
		secret = "adoptme-dev-secret"
	}
	tokens := sessions.NewTokenManager(secret, time.Hour)

	// Services por módulo
	usersSvc := users.NewService(usersRepo, ids, hasher)
	petsSvc := pets.NewService(petsRepo, ids)
	sessionsSvc := sessions.NewService(usersSvc, hasher, tokens)
	adoptionsSvc := adoptions.NewService(adoptionsRepo, usersRepo, petsRepo, ids)

	// Rutas por módulo
	r.Route("/api", func(api chi.Router) {
		users.RegisterRoutes(api, usersSvc)
		pets.RegisterRoutes(api, petsSvc)
		sessions.RegisterRoutes(api, sessionsSvc)
		adoptions.RegisterRoutes(api, adoptionsSvc)
	})

	return r
}
