package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/fotabongroyal/portal-api/docs"
	"github.com/fotabongroyal/portal-api/internal/api/handler"
	"github.com/fotabongroyal/portal-api/internal/api/middleware"
	"github.com/fotabongroyal/portal-api/internal/core/domain"
	"github.com/fotabongroyal/portal-api/internal/core/ports"
	"github.com/fotabongroyal/portal-api/internal/core/service"
)

// Deps carries the constructed services the router wires to routes.
// Construction happens in main so the dispatcher lifecycle stays there.
type Deps struct {
	DB        *mongo.Database
	Redis     *redis.Client
	Auth      ports.AuthService
	Sessions  ports.SessionService
	Dashboard ports.DashboardService
	Inbox     *service.InboxService
	JWTSecret string
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth, d.Sessions)
	dashboardHandler := handler.NewDashboardHandler(d.Dashboard)
	projectHandler := handler.NewProjectHandler(d.Dashboard)
	inboxHandler := handler.NewInboxHandler(d.Inbox)
	contentHandler := handler.NewContentHandler()

	authMW := middleware.Auth(d.JWTSecret)
	sessionMW := middleware.Session(d.Sessions)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMW, sessionMW)
	e.POST("/auth/register", authHandler.Register, authMW, sessionMW, adminOnly)

	// --- Portal routes ---
	v1 := e.Group("/v1")
	v1.GET("/dashboard", dashboardHandler.Get, authMW, sessionMW)
	v1.POST("/projects", projectHandler.Create, authMW, sessionMW, adminOnly)
	v1.GET("/clients", projectHandler.ListClients, authMW, sessionMW, adminOnly)

	// --- Marketing routes (no auth) ---
	v1.GET("/content", contentHandler.Get)
	v1.POST("/bookings", inboxHandler.CreateBooking)
	v1.POST("/contact", inboxHandler.CreateContactMessage)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.DB, d.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability / docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
