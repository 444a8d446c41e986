package main

import (
	"log"
	"net/http"
	"os"

	"currency-mask/internal/api"
	"currency-mask/internal/config"
	"currency-mask/internal/session"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	manager := session.NewManager(cfg.Server.SessionTTL.Duration, cfg.Server.CleanupInterval.Duration)
	manager.Start()
	defer manager.Stop()

	router := api.NewRouter(manager, cfg.Field)
	addr := getenv("APP_ADDR", cfg.Server.Addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
	}

	log.Println("Listening on", addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
