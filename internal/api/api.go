package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/ougirez/concursos/internal/api/controller"
	"github.com/ougirez/concursos/internal/domain"
	"github.com/ougirez/concursos/internal/pkg/constants"
	"github.com/ougirez/concursos/internal/pkg/logger"
	"github.com/ougirez/concursos/internal/pkg/metrics"
	"github.com/ougirez/concursos/internal/pkg/store"
	"github.com/ougirez/concursos/internal/service/explorer"
	"github.com/ougirez/concursos/internal/service/overview"
)

type Options struct {
	CORSOrigins []string
	RowLimit    uint64
	PageSize    int
	TopN        uint64
	AnoAtual    domain.Year
	Debug       bool
}

type APIService struct {
	router          *echo.Echo
	overviewService *overview.Service
	explorerService *explorer.Service
	metrics         *metrics.HTTP
}

func (svc *APIService) Serve(addr string) error {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func (svc *APIService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	svc.router.ServeHTTP(w, r)
}

func NewAPIService(store store.Store, opts Options) (*APIService, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	svc := &APIService{router: echo.New(), metrics: metrics.NewHTTP()}

	svc.router.HideBanner = true
	svc.router.HidePort = true
	if opts.Debug {
		svc.router.Logger.SetLevel(log.DEBUG)
	} else {
		svc.router.Logger.SetLevel(log.WARN)
	}

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = SonicSerializer{}
	svc.router.Renderer = renderer
	svc.router.HTTPErrorHandler = httpErrorHandler

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}

	svc.router.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator:    uuid.NewString,
		TargetHeader: constants.HeaderRequestID,
	}))
	svc.router.Use(svc.RequestLoggerMiddleware)
	svc.router.Use(svc.metrics.Middleware)
	svc.router.Use(middleware.Recover())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, constants.HeaderRequestID},
	}))

	svc.overviewService = overview.NewOverviewService(store, opts.TopN, opts.AnoAtual)
	svc.explorerService = explorer.NewExplorerService(store, opts.RowLimit, opts.PageSize)

	cntrl := controller.NewController(svc.overviewService, svc.explorerService, store)

	svc.router.GET("/", cntrl.OverviewPage)
	svc.router.GET("/explorer", cntrl.ExplorerPage)
	svc.router.GET("/healthz", cntrl.Healthz)
	svc.router.GET("/metrics", svc.metrics.Handler())

	api := svc.router.Group("/api/v1")
	api.GET("/overview", cntrl.GetOverview)
	api.GET("/kpi", cntrl.GetKPI)
	api.GET("/timeline", cntrl.GetTimeline)
	api.GET("/top-orgaos", cntrl.GetTopOrgaos)
	api.GET("/distribuicao-tipo", cntrl.GetDistribuicaoTipo)
	api.GET("/years", cntrl.GetYears)
	api.GET("/explorer", cntrl.GetExplorer)

	autorizacoes := api.Group("/autorizacoes")
	autorizacoes.GET("", cntrl.ListAutorizacoes)
	autorizacoes.GET("/export.csv", cntrl.ExportCSV)
	autorizacoes.GET("/export.xlsx", cntrl.ExportXLSX)

	logger.Infof(context.Background(), "api routes registered, %d total", len(svc.router.Routes()))

	return svc, nil
}
