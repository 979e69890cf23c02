package store

import (
	"context"

	"github.com/ougirez/concursos/internal/domain"
	"github.com/ougirez/concursos/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

// Store is the read-only query layer over autorizacoes_uniao.
type Store interface {
	AutorizacaoStore
	StatsStore
	Ping(ctx context.Context) error
}

type AutorizacaoStore interface {
	ListAutorizacoes(ctx context.Context, limit uint64) ([]*domain.Autorizacao, error)
	ListAvailableYears(ctx context.Context) ([]domain.YearCount, error)
}

type StatsStore interface {
	GetKPIStats(ctx context.Context, anoAtual domain.Year) (*domain.KPIStats, error)
	ListVagasPorAno(ctx context.Context) ([]domain.VagasAno, error)
	ListTopOrgaos(ctx context.Context, n uint64) ([]domain.TopOrgao, error)
	ListDistribuicaoTipo(ctx context.Context) ([]domain.TipoDistribuicao, error)
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}

func (s *store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
