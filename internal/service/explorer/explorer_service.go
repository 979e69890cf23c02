package explorer

import (
	"context"
	"fmt"

	"github.com/ougirez/concursos/internal/domain"
	"github.com/ougirez/concursos/internal/pkg/constants"
	"github.com/ougirez/concursos/internal/pkg/logger"
	"github.com/ougirez/concursos/internal/pkg/store"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	store    store.AutorizacaoStore
	rowLimit uint64
	pageSize int
}

func NewExplorerService(store store.AutorizacaoStore, rowLimit uint64, pageSize int) *Service {
	if rowLimit == 0 {
		rowLimit = constants.DefaultRowLimit
	}
	if pageSize <= 0 {
		pageSize = constants.DefaultPageSize
	}
	return &Service{store: store, rowLimit: rowLimit, pageSize: pageSize}
}

// Query is the state of the explorer controls.
type Query struct {
	Year     YearSelection
	Text     string
	Sort     string
	Order    SortOrder
	Page     int
	PageSize int
}

type View struct {
	Query            Query              `json:"-"`
	Year             string             `json:"year"`
	Years            []domain.YearCount `json:"years"`
	TotalNoBanco     int64              `json:"totalNoBanco"`
	Metrics          Metrics            `json:"metrics"`
	Rows             []TableRow         `json:"rows"`
	Page             Page               `json:"page"`
	Loaded           int                `json:"loaded"`
	RowLimit         uint64             `json:"rowLimit"`
	Capped           bool               `json:"capped"`
	NoRowsInSelected bool               `json:"noRowsInSelected"`
}

// Load fetches the newest rows and the year list, then derives everything the page shows.
func (s *Service) Load(ctx context.Context, q Query) (*View, error) {
	var (
		rows  []*domain.Autorizacao
		years []domain.YearCount
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		rows, err = s.store.ListAutorizacoes(egCtx, s.rowLimit)
		if err != nil {
			return fmt.Errorf("store.ListAutorizacoes: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		years, err = s.store.ListAvailableYears(egCtx)
		if err != nil {
			return fmt.Errorf("store.ListAvailableYears: %w", err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	logger.Debugf(ctx, "explorer loaded %d rows, %d years", len(rows), len(years))

	return s.build(rows, years, q), nil
}

func (s *Service) build(rows []*domain.Autorizacao, years []domain.YearCount, q Query) *View {
	if q.PageSize <= 0 {
		q.PageSize = s.pageSize
	}
	if q.Order != OrderDesc {
		q.Order = OrderAsc
	}

	byYear := FilterByYear(rows, q.Year)
	visible := FilterByText(byYear, q.Text)
	sorted := SortRows(visible, q.Sort, q.Order)
	page := Paginate(len(sorted), q.Page, q.PageSize)

	tableRows := make([]TableRow, 0, page.PageSize)
	for _, row := range page.Slice(sorted) {
		tableRows = append(tableRows, NewTableRow(row))
	}

	return &View{
		Query:            q,
		Year:             q.Year.String(),
		Years:            years,
		TotalNoBanco:     TotalRegistrosNoBanco(years),
		Metrics:          ComputeMetrics(visible),
		Rows:             tableRows,
		Page:             page,
		Loaded:           len(rows),
		RowLimit:         s.rowLimit,
		Capped:           uint64(len(rows)) == s.rowLimit,
		NoRowsInSelected: !q.Year.IsAll() && len(byYear) == 0,
	}
}

// Records returns the loaded rows of the selected year, newest first.
func (s *Service) Records(ctx context.Context, sel YearSelection) ([]*domain.Autorizacao, error) {
	rows, err := s.store.ListAutorizacoes(ctx, s.rowLimit)
	if err != nil {
		return nil, fmt.Errorf("store.ListAutorizacoes: %w", err)
	}

	return FilterByYear(rows, sel), nil
}

// List returns up to limit newest rows; limit is capped at the configured row limit.
func (s *Service) List(ctx context.Context, limit uint64) ([]*domain.Autorizacao, error) {
	if limit == 0 || limit > s.rowLimit {
		limit = s.rowLimit
	}

	rows, err := s.store.ListAutorizacoes(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("store.ListAutorizacoes: %w", err)
	}

	return rows, nil
}

func (s *Service) Years(ctx context.Context) ([]domain.YearCount, error) {
	years, err := s.store.ListAvailableYears(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListAvailableYears: %w", err)
	}

	return years, nil
}
