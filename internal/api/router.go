package api

import (
	"net"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/tooswasher/storefront/internal/api/docs"
	"github.com/tooswasher/storefront/internal/api/handler"
	"github.com/tooswasher/storefront/internal/api/middleware"
	"github.com/tooswasher/storefront/internal/core/domain"
	"github.com/tooswasher/storefront/internal/core/ports"
	"github.com/tooswasher/storefront/internal/infrastructure/config"
	"github.com/tooswasher/storefront/pkg/logger"
)

// Dependencies are the wired services the router mounts.
type Dependencies struct {
	Config   *config.Config
	Log      zerolog.Logger
	Storage  ports.TokenStorage
	Backend  ports.Backend
	Sessions ports.SessionResolver
	Nav      ports.NavComposer
	Cart     ports.CartService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)
	proxies, err := d.Config.ProxyNets()
	if err != nil {
		d.Log.Warn().Err(err).Msg("ignoring TRUSTED_PROXIES")
	}
	e.IPExtractor = ipExtractor(proxies)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestScope(d.Log))
	e.Use(requestLogger(d.Log))
	e.Use(echoprometheus.NewMiddleware("storefront"))
	e.Use(middleware.CORS(d.Config.CORSOrigins))

	// --- Health probes, metrics and docs (no session) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(map[string]handler.Pinger{
		"token_storage": d.Storage,
		"backend":       d.Backend,
	})
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	session := middleware.BrowserSession(middleware.SessionOptions{
		CookieName: d.Config.Session.CookieName,
		Secret:     []byte(d.Config.Session.Secret),
		TTL:        d.Config.Session.TTL,
		Secure:     d.Config.Session.CookieSecure,
	}, d.Storage)

	registerPublic(e.Group("/api", session), d)
	registerAdmin(e.Group("/admin", session), d)

	return e
}

func registerPublic(g *echo.Group, d Dependencies) {
	auth := handler.NewAuthHandler(d.Nav, d.Sessions, d.Backend, d.Log.With().Str("component", "auth").Logger())
	catalog := handler.NewCatalogHandler(d.Backend)
	content := handler.NewContentHandler(d.Backend)
	cart := handler.NewCartHandler(d.Cart, d.Backend)
	limiter := middleware.NewRateLimiter(rate.Limit(d.Config.Limits.LoginRate), d.Config.Limits.LoginBurst)

	g.GET("/session", auth.Session)
	g.GET("/nav", auth.Nav)
	g.POST("/auth/login", auth.Login, limiter.Middleware())
	g.POST("/auth/register", auth.Register)
	g.POST("/auth/logout", auth.Logout)

	g.GET("/products", catalog.ListProducts)
	g.GET("/products/:id", catalog.GetProduct)
	g.GET("/categories", catalog.ListCategories)
	g.GET("/categories/:id", catalog.GetCategory)
	g.GET("/discounts/code/:code", catalog.DiscountByCode)

	g.GET("/pages/search", content.SearchPages)
	g.GET("/pages/:pageName", content.Page)
	g.GET("/events", content.ListEvents)
	g.GET("/events/:id", content.GetEvent)
	g.POST("/events", content.CreateEvent)
	g.POST("/events/:id/activities", content.CreateActivity)

	g.GET("/cart", cart.List)
	g.POST("/cart", cart.Add)
	g.PUT("/cart/:id", cart.Update)
	g.DELETE("/cart/:id", cart.Remove)
	g.GET("/orders", cart.ListOrders)
	g.POST("/orders", cart.CreateOrder)
	g.POST("/payments", cart.CreatePayment)
}

func registerAdmin(g *echo.Group, d Dependencies) {
	admin := handler.NewAdminHandler(d.Backend, d.Backend, d.Log.With().Str("component", "admin").Logger())
	guard := func(route string, allow domain.Capability) echo.MiddlewareFunc {
		return middleware.RouteGuard(d.Sessions, allow, middleware.GuardOptions{
			Route:    route,
			Wait:     d.Config.Guard.Wait,
			Fallback: d.Config.Guard.FallbackRoute,
		})
	}

	g.GET("", admin.Menu, guard("admin_menu", domain.CapAdminMenu))

	products := g.Group("/products", guard("admin_products", domain.CapManageCatalog))
	products.GET("", admin.ListProducts)
	products.POST("", admin.CreateProduct)
	products.PUT("/:id", admin.UpdateProduct)
	products.DELETE("/:id", admin.DeleteProduct)

	categories := g.Group("/categories", guard("admin_categories", domain.CapManageCatalog))
	categories.POST("", admin.CreateCategory)
	categories.PUT("/:id", admin.UpdateCategory)
	categories.DELETE("/:id", admin.DeleteCategory)

	discounts := g.Group("/discounts", guard("admin_discounts", domain.CapManageCatalog))
	discounts.GET("", admin.ListDiscounts)
	discounts.POST("", admin.CreateDiscount)
	discounts.PUT("/:id", admin.UpdateDiscount)
	discounts.DELETE("/:id", admin.DeleteDiscount)

	users := g.Group("/users", guard("admin_users", domain.CapManageUsers))
	users.GET("", admin.ListUsers)
	users.POST("", admin.CreateUser)
	users.PUT("/:id", admin.UpdateUser)
	users.DELETE("/:id", admin.DeleteUser)
}

// ipExtractor decides the client address the login limiter keys on.
// X-Forwarded-For is honoured only when the peer is a trusted proxy.
func ipExtractor(trusted []*net.IPNet) echo.IPExtractor {
	if len(trusted) == 0 {
		return echo.ExtractIPDirect()
	}
	opts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, n := range trusted {
		opts = append(opts, echo.TrustIPRange(n))
	}
	return echo.ExtractIPFromXFFHeader(opts...)
}

// requestScope attaches a logger tagged with the request id, so services and
// the error handler log under the same id as the access line.
func requestScope(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Response().Header().Get(echo.HeaderXRequestID)
			req := c.Request()
			l := log.With().Str("request_id", id).Logger()
			c.SetRequest(req.WithContext(logger.WithContext(req.Context(), l)))
			return next(c)
		}
	}
}

// requestLogger emits one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency.Round(time.Microsecond)).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
