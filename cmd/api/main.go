package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	"adoptme/internal/adapters/storage/postgres"
	"adoptme/internal/platform/logger"
	"adoptme/internal/router"
)

//	@title			Documentacion de app para adoptar mascotas
//	@description	Esta es una descripcion de la documentacion de adoptame

func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	var db *sql.DB
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		opened, err := postgres.Open(dsn)
		if err != nil {
			log.Error("no se pudo abrir postgres", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := postgres.EnsureSchema(ctx, opened); err != nil {
			cancel()
			log.Error("no se pudo preparar el schema", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		cancel()
		db = opened
	}

	r := router.NewRouter(router.Options{
		DB:  db,
		Log: log,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr, "storage": storageName(db)})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}

func storageName(db *sql.DB) string {
	if db != nil {
		return "postgres"
	}
	return "memory"
}
