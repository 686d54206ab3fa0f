package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"slotsplanet/api/internal/app"
	"slotsplanet/api/internal/auth"
	"slotsplanet/api/internal/config"
	"slotsplanet/api/internal/email"
	"slotsplanet/api/internal/session"
	"slotsplanet/api/internal/store"
	"slotsplanet/api/internal/upload"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// Postgres when configured, otherwise the volatile in-memory store.
	var dataStore app.DataStore
	persistent := strings.TrimSpace(cfg.DatabaseURL) != ""
	if persistent {
		db, err := store.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("database connection failed: %v", err)
		}
		defer db.Close()
		if err := store.ApplyMigrations(ctx, db, cfg.MigrationsDir); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
		dataStore = store.NewPostgresStore(db)
	} else {
		log.Printf("DATABASE_URL not set, using in-memory storage")
		dataStore = store.NewMemoryStore()
	}

	var sessions auth.SessionStore
	if strings.TrimSpace(cfg.RedisURL) != "" {
		log.Printf("Using Redis for session storage")
		redisStore, err := session.NewRedisStore(cfg.RedisURL)
		if err != nil {
			log.Fatalf("redis connection failed: %v", err)
		}
		defer redisStore.Close()
		sessions = redisStore
	} else {
		log.Printf("Using in-process session storage")
		sessions = session.NewMemoryStore()
	}

	gate, err := auth.NewGate(cfg.AdminUsername, cfg.AdminPassword, cfg.SessionTTL, sessions)
	if err != nil {
		log.Fatalf("session gate setup failed: %v", err)
	}

	var relay app.Uploader
	if strings.TrimSpace(cfg.S3Endpoint) != "" {
		objects, err := upload.NewMinioStore(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3UseSSL)
		if err != nil {
			log.Fatalf("object storage setup failed: %v", err)
		}
		relay = upload.NewRelay(objects, upload.Config{
			LogoBucket:      cfg.LogoBucket,
			BillboardBucket: cfg.BillboardBucket,
			BaseURL:         cfg.AssetBaseURL,
			Limits: upload.Limits{
				LogoMaxBytes:      cfg.LogoMaxBytes,
				BillboardMaxBytes: cfg.BillboardMaxBytes,
			},
		})
	} else {
		log.Printf("S3_ENDPOINT not set, uploads disabled")
	}

	mail := email.NewService(email.Config{
		Host:      cfg.SMTPHost,
		Port:      cfg.SMTPPort,
		Username:  cfg.SMTPUsername,
		Password:  cfg.SMTPPassword,
		From:      cfg.SMTPFrom,
		FromName:  cfg.SMTPFromName,
		ContactTo: cfg.ContactTo,
	})
	if !mail.IsConfigured() {
		log.Printf("SMTP not configured, contact form disabled")
	}

	service := app.New(cfg, dataStore, gate, relay, mail, persistent)

	httpServer := app.NewHTTPServer(service, cfg.CORSOrigin)
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpServer.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Slots Planet API listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
