package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/agrinet/internal/config"
	apphttp "github.com/yungbote/agrinet/internal/http"
	httpH "github.com/yungbote/agrinet/internal/http/handlers"
	"github.com/yungbote/agrinet/internal/observability"
	"github.com/yungbote/agrinet/internal/platform/logger"
)

type Handlers struct {
	Health  *httpH.HealthHandler
	Page    *httpH.PageHandler
	Predict *httpH.PredictHandler
	Contact *httpH.ContactHandler
}

func wireHandlers(log *logger.Logger, cfg *config.Config, services Services) (Handlers, error) {
	log.Info("Wiring handlers...")
	page, err := httpH.NewPageHandler()
	if err != nil {
		return Handlers{}, err
	}
	return Handlers{
		Health:  httpH.NewHealthHandler(services.Diagnosis),
		Page:    page,
		Predict: httpH.NewPredictHandler(log, services.Diagnosis, cfg.HTTP.MaxUploadBytes),
		Contact: httpH.NewContactHandler(log, services.Contact),
	}, nil
}

func wireRouter(log *logger.Logger, cfg *config.Config, handlers Handlers, metrics *observability.Metrics) apphttp.RouterConfig {
	if cfg.Env == "production" || cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	return apphttp.RouterConfig{
		Log:            log,
		ServiceName:    observability.DefaultServiceName,
		AllowOrigins:   cfg.HTTP.AllowOrigins,
		Metrics:        metrics,
		MetricsPath:    cfg.Metrics.Path,
		HealthHandler:  handlers.Health,
		PageHandler:    handlers.Page,
		PredictHandler: handlers.Predict,
		ContactHandler: handlers.Contact,
	}
}
