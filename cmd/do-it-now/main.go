package main

import (
	"context"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "do-it-now/configs"
	_ "do-it-now/docs"
	"do-it-now/internal/application/controller"
	"do-it-now/internal/application/middleware"
	"do-it-now/internal/application/schedule"
	"do-it-now/internal/domain/gateway/cache"
	"do-it-now/internal/domain/gateway/db"
	"do-it-now/internal/domain/usecase/auth"
	"do-it-now/internal/domain/usecase/health"
	"do-it-now/internal/domain/usecase/todo"
	gormdb "do-it-now/internal/infra/database/gorm"
	"do-it-now/pkg/log"
	"do-it-now/pkg/msg"
	"do-it-now/pkg/redis"
	"do-it-now/pkg/resource"
)

// @title Do It Now API
// @version 1.0
// @description Personal task management API
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log.Info(msg.GetMessage("app.start"))

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)
	api := e.Group(resource.GetString("app.server.context-path"))

	// Init Redis (optional: without it sessions hit the database directly)
	var redisClient *redis.Client
	var sessionCache cache.SessionCache
	var cacheHealthGateway cache.HealthGateway = cache.NewDisabledHealthGateway()
	if resource.GetBool("app.redis.enabled") {
		redisClient = redis.NewClient(redis.NewConfig().
			WithHost(resource.GetString("app.redis.host")).
			WithPort(resource.GetInt("app.redis.port")).
			WithPassword(resource.GetString("app.redis.password")).
			WithDatabase(resource.GetInt("app.redis.database")))
		sessionCache = cache.NewRedisSessionCache(redisClient, resource.GetDuration("app.auth.session-cache-ttl"))
		cacheHealthGateway = cache.NewRedisHealthGateway(redisClient)
	}

	// Init Gateways
	userGateway := db.NewGormUserGateway(gormdb.Db)
	tokenGateway := db.NewGormAccessTokenGateway(gormdb.Db)
	todoGateway := db.NewGormTodoGateway(gormdb.Db)
	healthDBGateway := db.NewGormHealthDBGateway(gormdb.Db)

	// Init UseCases
	authUseCase := auth.NewAuthUseCase(userGateway, tokenGateway, sessionCache, resource.GetDuration("app.auth.token-ttl"))
	todoUseCase := todo.NewTodoUseCase(todoGateway)
	healthUseCase := health.NewHealthUseCase(healthDBGateway, cacheHealthGateway)

	// Init Controllers
	authMw := middleware.BearerAuth(authUseCase)
	authController := controller.NewAuthController(api, authUseCase, authMw)
	todoController := controller.NewTodoController(api, todoUseCase, authMw)
	healthController := controller.NewHealthController(api, healthUseCase)

	// Init Routes
	authController.InitAuthRoutes()
	todoController.InitTodoRoutes()
	healthController.InitHealthRoutes()

	// Init Schedule
	tokenScheduler := schedule.NewTokenScheduler(authUseCase, redisClient)
	tokenScheduler.InitTokenScheduleTasks(context.Background())

	// Swagger and SPA assets
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.Static("/", resource.GetString("app.server.static-dir"))

	// Start Routes
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
}
