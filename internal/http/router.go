package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/agrinet/internal/http/handlers"
	httpMW "github.com/yungbote/agrinet/internal/http/middleware"
	"github.com/yungbote/agrinet/internal/observability"
	"github.com/yungbote/agrinet/internal/platform/logger"
	"github.com/yungbote/agrinet/internal/web/static"
)

type RouterConfig struct {
	Log          *logger.Logger
	ServiceName  string
	AllowOrigins []string
	// Metrics is nil when metrics are disabled.
	Metrics     *observability.Metrics
	MetricsPath string

	PageHandler    *httpH.PageHandler
	PredictHandler *httpH.PredictHandler
	ContactHandler *httpH.ContactHandler
	HealthHandler  *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = observability.DefaultServiceName
	}

	r := gin.New()
	r.Use(httpMW.Recovery(cfg.Log))
	r.Use(httpMW.RequestID())
	r.Use(otelgin.Middleware(serviceName))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.AllowOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/readyz", cfg.HealthHandler.Ready)
	}
	if cfg.Metrics != nil {
		path := cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(cfg.Metrics.Handler()))
	}

	// Site
	r.StaticFS(static.Prefix, static.FS())
	if cfg.PageHandler != nil {
		r.GET("/", cfg.PageHandler.Home)
	}
	if cfg.ContactHandler != nil {
		r.POST("/contact", cfg.ContactHandler.Submit)
	}

	// Diagnosis
	if cfg.PredictHandler != nil {
		r.POST("/predict", cfg.PredictHandler.Predict)
	}

	return r
}
