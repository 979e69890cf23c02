package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/concursos/internal/api/controller"
	"github.com/ougirez/concursos/internal/domain"
	"github.com/ougirez/concursos/internal/pkg/constants"
	"github.com/ougirez/concursos/internal/pkg/logger"
)

func wantsJSON(c echo.Context) bool {
	path := c.Request().URL.Path
	return strings.HasPrefix(path, "/api/") || path == "/healthz"
}

func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		logger.Errorf(c.Request().Context(), "error after response was committed: %v", err)
		return
	}

	msg := err.Error()
	code := http.StatusInternalServerError

	var (
		ce *constants.CodedError
		he *echo.HTTPError
	)
	switch {
	case errors.As(err, &ce):
		code = ce.Code()
	case errors.As(err, &he):
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Errorf(c.Request().Context(), "%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	resp := domain.ErrorResponse{
		Message: msg,
		Code:    code,
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	if wantsJSON(c) {
		_ = c.JSON(code, resp)
		return
	}
	if rerr := c.Render(code, "error", errorPage(resp)); rerr != nil {
		logger.Error(c.Request().Context(), "render error page: "+rerr.Error())
		_ = c.JSON(code, resp)
	}
}

func errorPage(resp domain.ErrorResponse) controller.Page {
	title := "Erro"
	if resp.Code == http.StatusNotFound {
		title = "Página não encontrada"
	}

	return controller.Page{Title: title, Content: resp}
}
