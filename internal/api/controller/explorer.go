package controller

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/concursos/internal/pkg/constants"
	"github.com/ougirez/concursos/internal/service/explorer"
)

type explorerRequest struct {
	Year     string `query:"year" validate:"omitempty,max=4"`
	Text     string `query:"q" validate:"max=200"`
	Sort     string `query:"sort" validate:"max=64"`
	Order    string `query:"order" validate:"omitempty,oneof=asc desc"`
	Page     int    `query:"page" validate:"gte=0"`
	PageSize int    `query:"page_size" validate:"gte=0,lte=500"`
}

func (r explorerRequest) query() (explorer.Query, error) {
	sel, err := explorer.ParseYearSelection(r.Year)
	if err != nil {
		return explorer.Query{}, err
	}
	if r.Sort != "" && !explorer.IsColumn(r.Sort) {
		return explorer.Query{}, fmt.Errorf("%w: unknown sort column %q", constants.ErrBadRequest, r.Sort)
	}

	return explorer.Query{
		Year:     sel,
		Text:     r.Text,
		Sort:     r.Sort,
		Order:    explorer.SortOrder(r.Order),
		Page:     r.Page,
		PageSize: r.PageSize,
	}, nil
}

func (c *Controller) bindExplorerQuery(ctx echo.Context) (explorer.Query, error) {
	var req explorerRequest
	if err := ctx.Bind(&req); err != nil {
		return explorer.Query{}, err
	}
	return req.query()
}

type yearOption struct {
	Value string
	Count int64
}

type header struct {
	explorer.Column
	URL   string
	Arrow string
}

type explorerPage struct {
	*explorer.View
	YearOptions []yearOption
	Headers     []header
	pageSize    int
}

// newExplorerPage builds the template model; pageSize is the requested one, zero when unset.
func newExplorerPage(view *explorer.View, pageSize int) explorerPage {
	p := explorerPage{View: view, pageSize: pageSize}

	for _, y := range view.Years {
		p.YearOptions = append(p.YearOptions, yearOption{Value: strconv.Itoa(y.Year), Count: y.Count})
	}

	for _, col := range explorer.Columns {
		h := header{Column: col}
		order := explorer.OrderAsc
		if view.Query.Sort == col.Key {
			if view.Query.Order == explorer.OrderAsc {
				h.Arrow = "▲"
				order = explorer.OrderDesc
			} else {
				h.Arrow = "▼"
			}
		}
		h.URL = p.url(col.Key, order, 1)
		p.Headers = append(p.Headers, h)
	}

	return p
}

func (p explorerPage) TotalRegistros() int64 {
	return int64(p.Metrics.TotalRegistros)
}

func (p explorerPage) TotalOrgaos() int64 {
	return int64(p.Metrics.TotalOrgaos)
}

func (p explorerPage) values() url.Values {
	v := url.Values{}
	if !p.Query.Year.IsAll() {
		v.Set("year", p.Query.Year.String())
	}
	if p.Query.Text != "" {
		v.Set("q", p.Query.Text)
	}
	return v
}

func (p explorerPage) url(sort string, order explorer.SortOrder, page int) string {
	v := p.values()
	if sort != "" {
		v.Set("sort", sort)
		v.Set("order", string(order))
	}
	if page > 1 {
		v.Set("page", strconv.Itoa(page))
	}
	if p.pageSize > 0 {
		v.Set("page_size", strconv.Itoa(p.pageSize))
	}
	if len(v) == 0 {
		return "/explorer"
	}
	return "/explorer?" + v.Encode()
}

func (p explorerPage) PageURL(page int) string {
	return p.url(p.Query.Sort, p.Query.Order, page)
}

func (p explorerPage) ExportURL(kind string) string {
	u := "/api/v1/autorizacoes/export." + kind
	if !p.Query.Year.IsAll() {
		u += "?" + url.Values{"year": {p.Query.Year.String()}}.Encode()
	}
	return u
}

func (c *Controller) ExplorerPage(ctx echo.Context) error {
	q, err := c.bindExplorerQuery(ctx)
	if err != nil {
		return err
	}

	view, err := c.explorer.Load(ctx.Request().Context(), q)
	if err != nil {
		return err
	}

	return ctx.Render(http.StatusOK, "explorer", Page{
		Title:   "Data Explorer",
		Active:  "explorer",
		Content: newExplorerPage(view, q.PageSize),
	})
}

func (c *Controller) GetExplorer(ctx echo.Context) error {
	q, err := c.bindExplorerQuery(ctx)
	if err != nil {
		return err
	}

	view, err := c.explorer.Load(ctx.Request().Context(), q)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, view)
}

type listRequest struct {
	Limit uint64 `query:"limit" validate:"lte=500"`
}

func (c *Controller) ListAutorizacoes(ctx echo.Context) error {
	var req listRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	rows, err := c.explorer.List(ctx.Request().Context(), req.Limit)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rows)
}

func (c *Controller) GetYears(ctx echo.Context) error {
	years, err := c.explorer.Years(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, years)
}
