package api

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/eventhive/booking-api/internal/api/handler"
	"github.com/eventhive/booking-api/internal/api/middleware"
	"github.com/eventhive/booking-api/internal/core/domain"
	"github.com/eventhive/booking-api/internal/core/service"
	"github.com/eventhive/booking-api/internal/infrastructure/config"
	"github.com/eventhive/booking-api/internal/infrastructure/crypto"
	"github.com/eventhive/booking-api/internal/infrastructure/postgres"
	"github.com/eventhive/booking-api/internal/infrastructure/redis"
)

// NewRouter builds the Echo instance with all routes registered. rdb may
// be nil; login throttling is then disabled.
func NewRouter(db *sqlx.DB, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("booking"))

	// --- Repositories ---
	roleRepo := postgres.NewRoleRepository(db)
	userRepo := postgres.NewUserRepository(db)
	tagRepo := postgres.NewTagRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	eventTagRepo := postgres.NewEventTagRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)

	// --- Services ---
	exists := service.NewExistenceChecker(userRepo, eventRepo, tagRepo, roleRepo, log)
	creds := crypto.NewBcrypt()
	roleService := service.NewRoleService(roleRepo, log)
	tagService := service.NewTagService(tagRepo, log)
	userService := service.NewUserService(userRepo, creds, exists, log)
	eventService := service.NewEventService(eventRepo, exists, log)
	eventTagService := service.NewEventTagService(eventTagRepo, exists, log)
	bookingService := service.NewBookingService(bookingRepo, eventRepo, exists, log)
	tokenService := service.NewTokenService(service.JWTConfig{
		Secret:         cfg.JWT.Secret,
		Issuer:         cfg.JWT.Issuer,
		Audience:       cfg.JWT.Audience,
		ExpiresMinutes: cfg.JWT.ExpiresMinutes,
	})

	var throttle handler.LoginThrottle
	if rdb != nil {
		throttle = redis.NewLoginLimiter(rdb,
			cfg.Redis.LoginMaxAttempts,
			time.Duration(cfg.Redis.LoginWindowSecond)*time.Second)
	}

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(userService, tokenService, throttle, log)
	roleHandler := handler.NewRoleHandler(roleService)
	userHandler := handler.NewUserHandler(userService)
	tagHandler := handler.NewTagHandler(tagService)
	eventHandler := handler.NewEventHandler(eventService)
	eventTagHandler := handler.NewEventTagHandler(eventTagService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	auth := middleware.Auth(cfg.JWT.Secret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Open routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Roles (admin only) ---
	roles := e.Group("/api/roles", auth, adminOnly)
	roles.POST("", roleHandler.Create)
	roles.GET("", roleHandler.GetAll)
	roles.GET("/:id", roleHandler.GetByID)
	roles.GET("/name/:name", roleHandler.GetByName)
	roles.PUT("/:id", roleHandler.Update)
	roles.DELETE("/:id", roleHandler.Delete)

	// --- Users ---
	users := e.Group("/api/users", auth)
	users.GET("", userHandler.List, adminOnly)
	users.GET("/count", userHandler.Count, adminOnly)
	users.GET("/:id", userHandler.GetByID)
	users.GET("/username/:username", userHandler.GetByUsername)
	users.GET("/email/:email", userHandler.GetByEmail)
	users.PUT("/:id", userHandler.Update)
	users.PUT("/:id/role", userHandler.ChangeRole, adminOnly)
	users.DELETE("/:id", userHandler.Delete)

	// --- Tags ---
	tags := e.Group("/api/tags", auth)
	tags.POST("", tagHandler.Create)
	tags.GET("", tagHandler.GetAll)
	tags.GET("/:id", tagHandler.GetByID)
	tags.GET("/name/:name", tagHandler.GetByName)
	tags.PUT("/:id", tagHandler.Update)
	tags.DELETE("/:id", tagHandler.Delete)

	// --- Events ---
	events := e.Group("/api/events", auth)
	events.POST("", eventHandler.Create)
	events.GET("", eventHandler.List)
	events.GET("/count", eventHandler.Count)
	events.GET("/:id", eventHandler.GetByID)
	events.GET("/active/:active", eventHandler.ListByActive)
	events.GET("/creator/:userId", eventHandler.ListByCreator)
	events.GET("/name/:name", eventHandler.SearchByName)
	events.GET("/description/:term", eventHandler.SearchByDescription)
	events.GET("/category/:category", eventHandler.SearchByCategory)
	events.GET("/venue/:venue", eventHandler.SearchByVenue)
	events.GET("/date/:date", eventHandler.ListByDate)
	events.GET("/price/:price", eventHandler.ListByPrice)
	events.PUT("/:id", eventHandler.Update)
	events.DELETE("/:id", eventHandler.Delete)

	// --- Event tags ---
	eventTags := e.Group("/api/event-tags", auth)
	eventTags.POST("", eventTagHandler.Create)
	eventTags.GET("", eventTagHandler.GetAll)
	eventTags.GET("/event/:eventId", eventTagHandler.ListByEventID)
	eventTags.GET("/tag/:tagId", eventTagHandler.ListByTagID)
	eventTags.DELETE("/:eventId/:tagId", eventTagHandler.Delete)

	// --- Bookings ---
	bookings := e.Group("/api/bookings", auth)
	bookings.POST("", bookingHandler.Create)
	bookings.GET("", bookingHandler.List, adminOnly)
	bookings.GET("/count", bookingHandler.Count, adminOnly)
	bookings.GET("/:id", bookingHandler.GetByID)
	bookings.GET("/user/:userId", bookingHandler.ListByUserID)
	bookings.GET("/event/:eventId", bookingHandler.ListByEventID, adminOnly)
	bookings.DELETE("/:id", bookingHandler.Delete)

	return e
}
