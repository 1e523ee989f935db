package main // Entry point of the hospital admin API server

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/config"
	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/database"
	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/handler"
	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/queue"
	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/repository"
	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set env vars directly

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient() // nil disables caching and rate limiting

	admin := handler.NewAdminHandler(
		repository.NewHospitalRepo(db),
		repository.NewRoleRepo(db),
		repository.NewUserRepo(db),
		repository.NewDoctorRepo(db),
		cfg.BcryptCost,
	)
	auth := handler.NewAuthHandler(cfg, repository.NewUserRepo(db))

	// Background audit trail consumer; reconnects on its own.
	go queue.StartAuditConsumer()

	e := echo.New()
	router.Register(e, admin, auth, rdb, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
