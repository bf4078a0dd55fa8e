package httpv1

import (
	"net/http"

	"github.com/Egor213/BotStats/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type RouterOptions struct {
	// HTMLPath, when set, is served as a static site at /.
	HTMLPath string
}

func ConfigureRouter(e *echo.Echo, services *service.Services, opts RouterOptions) {
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(accessLog())

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	newStatsRoutes(e.Group(""), services.Stats)

	if opts.HTMLPath != "" {
		e.Static("/", opts.HTMLPath)
	}
}
