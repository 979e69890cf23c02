package controller

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/concursos/internal/domain"
	"github.com/ougirez/concursos/internal/service/explorer"
	"github.com/ougirez/concursos/internal/service/export"
)

const (
	mimeCSV  = "text/csv; charset=utf-8"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type exportRequest struct {
	Year string `query:"year" validate:"omitempty,max=4"`
}

func (c *Controller) exportRecords(ctx echo.Context) ([]*domain.Autorizacao, string, error) {
	var req exportRequest
	if err := ctx.Bind(&req); err != nil {
		return nil, "", err
	}

	sel, err := explorer.ParseYearSelection(req.Year)
	if err != nil {
		return nil, "", err
	}

	records, err := c.explorer.Records(ctx.Request().Context(), sel)
	if err != nil {
		return nil, "", err
	}

	return records, "autorizacoes_" + sel.String(), nil
}

func attachment(ctx echo.Context, contentType, filename string) {
	ctx.Response().Header().Set(echo.HeaderContentType, contentType)
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Response().WriteHeader(http.StatusOK)
}

func (c *Controller) ExportCSV(ctx echo.Context) error {
	records, name, err := c.exportRecords(ctx)
	if err != nil {
		return err
	}

	attachment(ctx, mimeCSV, name+".csv")
	return export.WriteCSV(ctx.Response(), records)
}

func (c *Controller) ExportXLSX(ctx echo.Context) error {
	records, name, err := c.exportRecords(ctx)
	if err != nil {
		return err
	}

	attachment(ctx, mimeXLSX, name+".xlsx")
	return export.WriteXLSX(ctx.Response(), records)
}
