package metrics

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
)

func ConfigureRouter(handler *echo.Echo) {
	handler.GET("/metrics", echoprometheus.NewHandler())
}

// HTTPMiddleware records request count and latency of the API server.
// It registers collectors globally, so call it once per process.
func HTTPMiddleware() echo.MiddlewareFunc {
	return echoprometheus.NewMiddleware("botstats")
}
