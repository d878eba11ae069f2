package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/examhall/seatwise/internal/config"
	"github.com/examhall/seatwise/internal/database"
	"github.com/examhall/seatwise/internal/handler"
	"github.com/examhall/seatwise/internal/middleware"
	"github.com/examhall/seatwise/internal/queue"
	"github.com/examhall/seatwise/internal/repository"
	"github.com/examhall/seatwise/internal/router"
)

func main() {
	// A local .env is a dev convenience; in production the variables come
	// from the environment and the file is simply absent.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("database: schema: %v", err)
	}
	cancel()

	rdb := config.NewRedisClient()
	cacheCfg := config.LoadCacheConfig()
	rlCfg := config.LoadRateLimitConfig()

	hallRepo := repository.NewHallRepo(db)
	seatRepo := repository.NewSeatRepo(db)
	studentRepo := repository.NewStudentRepo(db)
	departmentRepo := repository.NewDepartmentRepo(db)
	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)

	authH := handler.NewAuthHandler(cfg, userRepo, tokenRepo)
	hallH := handler.NewHallHandler(hallRepo, seatRepo)
	seatH := handler.NewSeatHandler(hallRepo, seatRepo, studentRepo, cacheCfg, rdb)
	studentH := handler.NewStudentHandler(studentRepo, seatRepo)
	departmentH := handler.NewDepartmentHandler(departmentRepo)
	reportH := handler.NewReportHandler(seatRepo, hallRepo)

	// The consumer reconnects on its own; a broker outage only pauses the
	// seating log, never the API.
	go func() {
		if err := queue.StartSeatingConsumer(); err != nil {
			log.Printf("seating-consumer: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterSeating(e, hallH, seatH, studentH, departmentH, reportH, cfg.JWTSecret, cacheCfg, rlCfg, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
