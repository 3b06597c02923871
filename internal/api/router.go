package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Elvis-12/sky-wanderer-control-center/internal/api/handler"
	"github.com/Elvis-12/sky-wanderer-control-center/internal/api/middleware"
	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/domain"
	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/ports"
	"github.com/Elvis-12/sky-wanderer-control-center/internal/infrastructure/http/handlers"
)

// Deps carries everything the router needs. Redis may be nil when the
// session backend is file or memory.
type Deps struct {
	Auth      ports.AuthService
	Flights   ports.FlightService
	Bookings  ports.BookingService
	Tickets   ports.TicketService
	Members   ports.MemberService
	Stats     ports.StatsService
	Redis     *redis.Client
	JWTSecret string
	TokenTTL  time.Duration
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("skywanderer"))
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth, d.JWTSecret, d.TokenTTL)
	flightHandler := handler.NewFlightHandler(d.Flights)
	bookingHandler := handler.NewBookingHandler(d.Bookings)
	ticketHandler := handler.NewTicketHandler(d.Tickets)
	memberHandler := handler.NewMemberHandler(d.Members)
	statsHandler := handler.NewStatsHandler(d.Stats)
	profileHandler := handler.NewProfileHandler()
	pageHandler := handler.NewPageHandler()

	// --- Auth flow ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/logout", authHandler.Logout)
	e.POST("/auth/forgot-password", authHandler.ForgotPassword)
	e.POST("/auth/reset-password", authHandler.ResetPassword)

	// --- Page routes, each wrapped by the access guard ---
	page := func(path, name string, access middleware.RouteAccess) {
		e.GET(path, pageHandler.Render(name), middleware.Guard(d.Auth, access))
	}

	page("/", "landing", middleware.RouteAccess{})
	page("/login", "login", middleware.RouteAccess{AuthPage: true})
	page("/signup", "signup", middleware.RouteAccess{AuthPage: true})
	page("/forgot-password", "forgot-password", middleware.RouteAccess{AuthPage: true})
	page("/reset-password", "reset-password", middleware.RouteAccess{AuthPage: true})
	page("/dashboard", "dashboard", middleware.RouteAccess{RequiresAuth: true})
	page("/flights", "flights", middleware.RouteAccess{RequiresAuth: true})
	page("/bookings", "bookings", middleware.RouteAccess{RequiresAuth: true})
	page("/tickets", "tickets", middleware.RouteAccess{RequiresAuth: true})
	page("/users", "users", middleware.RouteAccess{RequiresAuth: true, AdminOnly: true})
	page("/profile", "profile", middleware.RouteAccess{RequiresAuth: true})
	page("/settings", "settings", middleware.RouteAccess{RequiresAuth: true})

	// --- Data API, bearer-token authenticated ---
	apiV1 := e.Group("/api/v1", middleware.Auth(d.JWTSecret))

	apiV1.GET("/flights", flightHandler.List)
	apiV1.GET("/flights/:id", flightHandler.Get)
	apiV1.GET("/bookings", bookingHandler.List)
	apiV1.GET("/bookings/:id", bookingHandler.Get)
	apiV1.GET("/tickets", ticketHandler.List)
	apiV1.GET("/stats", statsHandler.Dashboard)
	apiV1.GET("/profile", profileHandler.Get)
	apiV1.PUT("/profile", profileHandler.Update)
	apiV1.GET("/settings", profileHandler.Settings)

	admin := apiV1.Group("/users", middleware.RBAC(domain.RoleAdmin))
	admin.GET("", memberHandler.List)
	admin.POST("", memberHandler.Create)
	admin.POST("/:id/toggle-status", memberHandler.ToggleStatus)
	admin.POST("/:id/toggle-role", memberHandler.ToggleRole)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(d.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
