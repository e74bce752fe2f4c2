package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/craftbridge/platform_be_craftbridge/internal/config"
	"github.com/craftbridge/platform_be_craftbridge/internal/db"
	"github.com/craftbridge/platform_be_craftbridge/internal/handlers"
	"github.com/craftbridge/platform_be_craftbridge/internal/middleware"
	"github.com/craftbridge/platform_be_craftbridge/internal/models"
	"github.com/craftbridge/platform_be_craftbridge/internal/store/gormstore"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	gdb, err := db.Connect(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	if err := gdb.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Bid{},
		&models.ChatMessage{},
	); err != nil {
		log.Fatal(err)
	}

	st := gormstore.New(gdb)

	var limiter middleware.Limiter = middleware.NewRateLimiter()
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Println("redis unavailable, falling back to in-process rate limiting:", err)
		} else {
			log.Println("redis connected, shared rate limiting enabled")
			limiter = middleware.NewRedisLimiter(rdb)
		}
	}

	app := handlers.NewApp(handlers.Deps{
		Store:   st,
		Cfg:     cfg,
		Limiter: limiter,
	})

	log.Fatal(app.Listen(":" + cfg.AppPort))
}
