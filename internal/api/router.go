package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/blogsite/blog-platform/internal/api/handler"
	"github.com/blogsite/blog-platform/internal/api/middleware"
	"github.com/blogsite/blog-platform/internal/core/domain"
)

// newEcho builds an Echo instance with the middleware every service shares.
// The subsystem name must be a valid Prometheus identifier.
func newEcho(subsystem string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(RequestLogger(log))
	e.Use(echoprometheus.NewMiddleware(subsystem))

	e.GET("/metrics", echoprometheus.NewHandler())
	return e
}

// RequestLogger emits one structured log line per completed request.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:    true,
		LogMethod:    true,
		LogURI:       true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}

func registerHealth(e *echo.Echo, db *mongo.Database, rdb *redis.Client) {
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(db, rdb).Readiness)
}

// NewAuthRouter wires the account and token endpoints. The gateway decides
// which of these are reachable from outside; the service itself only needs
// the cookie and the request body.
func NewAuthRouter(auth *handler.AuthHandler, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := newEcho("auth_service", log)
	registerHealth(e, db, rdb)

	g := e.Group("/api/v1.0/blogsite/user")
	g.POST("/register", auth.Register)
	g.POST("/login", auth.Login)
	g.POST("/refresh", auth.Refresh)
	g.POST("/logout", auth.Logout)
	g.GET("/verify/:userId", auth.VerifyUser)

	return e
}

// NewBlogRouter wires the blog and category endpoints behind the trust
// filter: identity comes exclusively from the headers the gateway injected,
// and the role checks repeat the gateway's decisions as defence in depth.
func NewBlogRouter(blogs *handler.BlogHandler, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := newEcho("blog_service", log)
	registerHealth(e, db, rdb)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/v3/api-docs", apiDocs)

	g := e.Group("/api/v1.0/blogsite", middleware.TrustedIdentity())

	g.POST("/category/create", blogs.CreateCategory, middleware.RequireRoles(domain.RoleAdmin))
	g.GET("/categories", blogs.AllCategories, middleware.RequireAuthenticated())

	g.POST("/user/blogs/add/:blogname", blogs.AddBlog, middleware.RequireAuthenticated())
	g.PUT("/user/blogs/update/:id", blogs.UpdateBlog, middleware.RequireAuthenticated())
	g.DELETE("/user/delete/:blogname", blogs.DeleteBlog, middleware.RequireAuthenticated())
	g.GET("/user/getall", blogs.MyBlogs, middleware.RequireAuthenticated())

	g.GET("/blogs/all", blogs.AllBlogs)
	g.GET("/blogs/info/:category", blogs.BlogsByCategory)
	g.GET("/blogs/get/:category/:from/:to", blogs.BlogsByCategoryBetween)
	g.GET("/blogs/:id", blogs.BlogByID)

	return e
}

func apiDocs(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(doc))
}
