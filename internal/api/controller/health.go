package controller

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/concursos/internal/pkg/constants"
)

func (c *Controller) Healthz(ctx echo.Context) error {
	if err := c.db.Ping(ctx.Request().Context()); err != nil {
		return fmt.Errorf("%w: %w", constants.ErrUnavailable, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
