package api

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/concursos/internal/pkg/constants"
	"github.com/ougirez/concursos/internal/pkg/logger"
)

// RequestLoggerMiddleware attaches the request id to the request context and logs each request.
func (svc *APIService) RequestLoggerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		id := c.Response().Header().Get(constants.HeaderRequestID)

		ctx := logger.WithFields(req.Context(), constants.CtxKeyRequestID, id)
		c.SetRequest(req.WithContext(ctx))

		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		logger.Infof(ctx, "%s %s %d %s", req.Method, c.Path(), c.Response().Status, time.Since(start))

		return nil
	}
}
