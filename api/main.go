package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/AnkitPandit120/DukaanMate1/internal/auth"
	"github.com/AnkitPandit120/DukaanMate1/internal/config"
	"github.com/AnkitPandit120/DukaanMate1/internal/db"
	apihttp "github.com/AnkitPandit120/DukaanMate1/internal/http"
	"github.com/AnkitPandit120/DukaanMate1/internal/http/handlers"
	rl "github.com/AnkitPandit120/DukaanMate1/internal/http/rate_limiter"
	"github.com/AnkitPandit120/DukaanMate1/internal/redissvc"
	"github.com/AnkitPandit120/DukaanMate1/internal/repo"
)

// @title DukaanMate API
// @version 1.0
// @description REST API for small-shop sales, stock, expenses, payments and business insights.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	auth.Configure(cfg.JWTSecret, cfg.AccessTokenTTL)
	auth.ConfigureRefresh(cfg.RefreshTokenTTL)
	go auth.StartRefreshTokenCleaner(30 * time.Minute)
	go rl.StartVisitorCleanupLoop()

	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("could not connect to redis: %v", err)
	}
	defer rdb.Close()
	handlers.SetInsightCache(redissvc.NewRedisService(rdb, ctx), cfg.InsightCacheTTL)

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	defer database.Close()

	handlers.SetSaleRepo(repo.NewPostgresSaleRepository(database))
	handlers.SetStockRepo(repo.NewPostgresStockRepository(database))
	handlers.SetExpenseRepo(repo.NewPostgresExpenseRepository(database))
	handlers.SetPaymentRepo(repo.NewPostgresPaymentRepository(database))
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))

	r := apihttp.NewRouter()
	log.Printf("server running on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
