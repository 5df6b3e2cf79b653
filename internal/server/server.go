// Package server boots the HTTP application: config, database, cache,
// storage, the websocket hub, workers, and the router.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/damassweet/damas/app/controllers"
	"github.com/damassweet/damas/app/jobs"
	"github.com/damassweet/damas/app/realtime"
	"github.com/damassweet/damas/app/repositories"
	"github.com/damassweet/damas/app/routes"
	"github.com/damassweet/damas/app/services"
	"github.com/damassweet/damas/config"
	"github.com/damassweet/damas/pkg/cache"
	"github.com/damassweet/damas/pkg/database"
	"github.com/damassweet/damas/pkg/logger"
	"github.com/damassweet/damas/pkg/metrics"
	"github.com/damassweet/damas/pkg/middleware"
	"github.com/damassweet/damas/pkg/migration"
	"github.com/damassweet/damas/pkg/queue"
	"github.com/damassweet/damas/pkg/reqid"
	"github.com/damassweet/damas/pkg/router"
	"github.com/damassweet/damas/pkg/storage"
	"github.com/damassweet/damas/pkg/ws"
)

// Start boots every collaborator and serves until the process dies.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if _, err := logger.ConnectMongo(); err != nil {
		logger.Warn("server: mongo log sink disabled", "error", err)
	}

	db, err := database.Connect()
	if err != nil {
		return err
	}

	if err := migration.New(db).Run(); err != nil {
		return err
	}

	if err := cache.Connect(); err != nil {
		logger.Warn("server: redis unavailable, cache disabled", "error", err)
	}
	storage.Connect()

	if config.QueueDriver() == "redis" && cache.RDB != nil {
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))
	}
	queue.UseDB(db)

	hub := ws.NewHub()
	go hub.Run()
	broadcaster := realtime.NewHubBroadcaster(hub)

	userRepo := repositories.NewUserRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	stockRepo := repositories.NewStockRepository(db)

	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo, broadcaster)
	orderService := services.NewOrderService(orderRepo, userRepo, broadcaster)
	stockService := services.NewStockService(stockRepo, userRepo, broadcaster)
	reportService := services.NewReportService(stockRepo, orderRepo, userRepo)

	jobs.Configure(reportService)
	queue.StartWorkers(context.Background(), 2)

	r := NewRouter(hub, routes.Controllers{
		Auth:    controllers.NewAuthController(authService),
		Users:   controllers.NewUserController(userService),
		Orders:  controllers.NewOrderController(orderService),
		Stock:   controllers.NewStockController(stockService),
		Reports: controllers.NewReportController(reportService),
	})

	addr := ":" + config.AppPort()
	logger.Info("server: listening", "addr", addr, "env", config.AppEnv())
	return http.ListenAndServe(addr, r.Handler())
}

// NewRouter assembles the middleware stack and mounts every endpoint.
// Split from Start so tests and the route:list command can build the full
// surface without opening sockets.
func NewRouter(hub *ws.Hub, c routes.Controllers) *router.Router {
	r := router.New()

	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(300, time.Minute))

	routes.RegisterAPI(r, c)

	// The live channel is deliberately unauthenticated; access control
	// happens at the command surface.
	r.Handle("/ws", hub.UpgradeHandler())
	r.Get("/metrics", "metrics", metrics.Handler())

	return r
}
