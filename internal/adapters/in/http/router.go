package http

import (
	"math"
	"net/http"
	"strings"
	"time"

	"logistics/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"
)

const apiPrefix = "/api/"

// RouterConfig configures NewRouter.
type RouterConfig struct {
	JWTSecret    []byte
	RateLimitRPS float64 // per client IP; 0 disables limiting
	Debug        bool
}

// NewRouter builds the echo instance serving the API, the OpenAPI document,
// the Swagger UI, health and Prometheus metrics. Only /api/ routes require a
// bearer token.
func NewRouter(cfg RouterConfig, server servers.ServerInterface, logger zerolog.Logger) (*echo.Echo, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}

	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.Debug
	e.Logger.SetLevel(log.ERROR)
	if cfg.Debug {
		e.Logger.SetLevel(log.DEBUG)
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			event := logger.Info()
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				event = logger.Error().Err(v.Error)
			}
			event.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))

	if cfg.RateLimitRPS > 0 {
		e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
			Skipper: isNotAPI,
			Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(cfg.RateLimitRPS),
				Burst:     rateLimitBurst(cfg.RateLimitRPS),
				ExpiresIn: 3 * time.Minute,
			}),
			IdentifierExtractor: func(c echo.Context) (string, error) {
				return c.RealIP(), nil
			},
			DenyHandler: func(c echo.Context, _ string, _ error) error {
				return c.JSON(http.StatusTooManyRequests, servers.Error{
					Code:    http.StatusTooManyRequests,
					Message: "rate limit exceeded",
				})
			},
		}))
	}

	e.Use(JWT(JWTConfig{Skipper: isNotAPI, Secret: cfg.JWTSecret}))
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, doc)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/openapi.json")))

	servers.RegisterHandlers(e, server)

	return e, nil
}

func isNotAPI(c echo.Context) bool {
	return !strings.HasPrefix(c.Request().URL.Path, apiPrefix)
}

// rateLimitBurst allows two seconds worth of requests and never less than one.
func rateLimitBurst(rps float64) int {
	return max(1, int(math.Ceil(rps*2)))
}
