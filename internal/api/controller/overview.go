package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/concursos/internal/service/overview"
)

func (c *Controller) OverviewPage(ctx echo.Context) error {
	dashboard, err := c.overview.Load(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.Render(http.StatusOK, "overview", Page{
		Title:   "Dashboard de Concursos Públicos",
		Active:  "overview",
		Content: overview.NewPage(dashboard),
	})
}

func (c *Controller) GetOverview(ctx echo.Context) error {
	dashboard, err := c.overview.Load(ctx.Request().Context())
	if err != nil {
		return err
	}

	type response struct {
		*overview.Dashboard
		Charts overview.Page `json:"charts"`
	}

	return ctx.JSON(http.StatusOK, response{Dashboard: dashboard, Charts: overview.NewPage(dashboard)})
}

func (c *Controller) GetKPI(ctx echo.Context) error {
	kpi, err := c.overview.KPI(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, kpi)
}

func (c *Controller) GetTimeline(ctx echo.Context) error {
	points, err := c.overview.Timeline(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, points)
}

type topOrgaosRequest struct {
	N uint64 `query:"n" validate:"lte=100"`
}

func (c *Controller) GetTopOrgaos(ctx echo.Context) error {
	var req topOrgaosRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	top, err := c.overview.TopOrgaos(ctx.Request().Context(), req.N)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, top)
}

func (c *Controller) GetDistribuicaoTipo(ctx echo.Context) error {
	dist, err := c.overview.DistribuicaoTipo(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, dist)
}
