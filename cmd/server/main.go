package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/umisachi/fishing-charter-booking/internal/config"     // environment configuration
	"github.com/umisachi/fishing-charter-booking/internal/database"   // MySQL connection pool
	"github.com/umisachi/fishing-charter-booking/internal/handler"    // HTTP handlers
	appmw "github.com/umisachi/fishing-charter-booking/internal/middleware" // rate limiting and caching
	"github.com/umisachi/fishing-charter-booking/internal/queue"      // booking event consumer
	"github.com/umisachi/fishing-charter-booking/internal/repository" // data access layer
	"github.com/umisachi/fishing-charter-booking/internal/router"     // route registration
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis backs the rate limiter and the public catalog cache.  A nil
	// client disables both; the booking core does not depend on Redis.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and response caching disabled")
	}
	limiter := appmw.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := appmw.NewRedisCache(config.LoadCacheConfig(), rdb)

	// Repositories
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	boats := repository.NewBoatRepo(db)
	plans := repository.NewPlanRepo(db)
	templates := repository.NewTemplateRepo(db)
	bookings := repository.NewBookingRepo(db)

	// Handlers
	authH := handler.NewAuthHandler(cfg, users, tokens, boats)
	bookingH := handler.NewBookingHandler(cfg, plans, bookings)
	ownerH := handler.NewOwnerHandler(boats, plans, templates, bookings)
	adminH := handler.NewAdminHandler(users, boats, plans, bookings)
	publicH := &handler.PublicHandler{Boats: boats, Plans: plans}

	e := echo.New()
	router.RegisterRoutes(e, db)
	router.RegisterPublic(e, publicH, cache)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterBooking(e, bookingH, cfg.JWTSecret, limiter)
	router.RegisterOwner(e, ownerH, users, cfg.JWTSecret)
	router.RegisterAdmin(e, adminH, cfg.JWTSecret)

	// The consumer tails booking.created and appends to logs/booking.log.
	// It reconnects forever; a missing broker only disables the audit log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
