package overview

import (
	"context"
	"fmt"

	"github.com/ougirez/concursos/internal/domain"
	"github.com/ougirez/concursos/internal/pkg/constants"
	"github.com/ougirez/concursos/internal/pkg/store"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	store    store.StatsStore
	topN     uint64
	anoAtual domain.Year
}

func NewOverviewService(store store.StatsStore, topN uint64, anoAtual domain.Year) *Service {
	if topN == 0 {
		topN = constants.DefaultTopN
	}
	if anoAtual == 0 {
		anoAtual = constants.LastYear
	}
	return &Service{store: store, topN: topN, anoAtual: anoAtual}
}

// Dashboard is everything the overview page renders.
type Dashboard struct {
	KPI              *domain.KPIStats          `json:"kpi"`
	VagasPorAno      []domain.VagasAno         `json:"vagasPorAno"`
	TopOrgaos        []domain.TopOrgao         `json:"topOrgaos"`
	DistribuicaoTipo []domain.TipoDistribuicao `json:"distribuicaoTipo"`
}

// Load runs the four overview queries concurrently. Any failure fails the whole load.
func (s *Service) Load(ctx context.Context) (*Dashboard, error) {
	var d Dashboard

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		kpi, err := s.store.GetKPIStats(egCtx, s.anoAtual)
		if err != nil {
			return fmt.Errorf("store.GetKPIStats: %w", err)
		}
		d.KPI = kpi
		return nil
	})
	eg.Go(func() error {
		points, err := s.store.ListVagasPorAno(egCtx)
		if err != nil {
			return fmt.Errorf("store.ListVagasPorAno: %w", err)
		}
		d.VagasPorAno = points
		return nil
	})
	eg.Go(func() error {
		top, err := s.store.ListTopOrgaos(egCtx, s.topN)
		if err != nil {
			return fmt.Errorf("store.ListTopOrgaos: %w", err)
		}
		d.TopOrgaos = top
		return nil
	})
	eg.Go(func() error {
		dist, err := s.store.ListDistribuicaoTipo(egCtx)
		if err != nil {
			return fmt.Errorf("store.ListDistribuicaoTipo: %w", err)
		}
		d.DistribuicaoTipo = dist
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &d, nil
}

func (s *Service) KPI(ctx context.Context) (*domain.KPIStats, error) {
	kpi, err := s.store.GetKPIStats(ctx, s.anoAtual)
	if err != nil {
		return nil, fmt.Errorf("store.GetKPIStats: %w", err)
	}
	return kpi, nil
}

func (s *Service) Timeline(ctx context.Context) ([]domain.VagasAno, error) {
	points, err := s.store.ListVagasPorAno(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListVagasPorAno: %w", err)
	}
	return points, nil
}

// TopOrgaos returns the n organizations with most vacancies; n == 0 uses the configured default.
func (s *Service) TopOrgaos(ctx context.Context, n uint64) ([]domain.TopOrgao, error) {
	if n == 0 {
		n = s.topN
	}
	top, err := s.store.ListTopOrgaos(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("store.ListTopOrgaos: %w", err)
	}
	return top, nil
}

func (s *Service) DistribuicaoTipo(ctx context.Context) ([]domain.TipoDistribuicao, error) {
	dist, err := s.store.ListDistribuicaoTipo(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListDistribuicaoTipo: %w", err)
	}
	return dist, nil
}
