package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/ougirez/concursos/internal/domain"
	"github.com/ougirez/concursos/internal/pkg/constants"
	"github.com/ougirez/concursos/internal/pkg/logger"
	"github.com/ougirez/concursos/internal/pkg/store/xpgx"
)

const sumVagas = "coalesce(sum(coalesce(vagas, 0)), 0)::bigint"

func kpiStatsQuery(anoAtual domain.Year) sq.SelectBuilder {
	return builder().Select(
		sumVagas+" as total_vagas",
		"count(*) as total_registros",
		"count(distinct nullif(orgao_entidade, '')) as total_orgaos",
	).
		Column(sq.Expr("coalesce(sum(coalesce(vagas, 0)) filter (where dou_publicacao_ano = ?), 0)::bigint as vagas_ano_atual", anoAtual)).
		From(tableAutorizacoes)
}

func vagasPorAnoQuery() sq.SelectBuilder {
	return builder().Select(
		"dou_publicacao_ano as ano",
		sumVagas+" as total_vagas",
		"count(*) as total_registros",
	).
		From(tableAutorizacoes).
		Where(sq.NotEq{"dou_publicacao_ano": nil}).
		GroupBy("dou_publicacao_ano").
		OrderBy("dou_publicacao_ano asc")
}

func topOrgaosQuery(n uint64) sq.SelectBuilder {
	return builder().Select(
		"orgao_entidade",
		sumVagas+" as total_vagas",
		"count(*) as total_autorizacoes",
	).
		From(tableAutorizacoes).
		Where(sq.And{
			sq.NotEq{"orgao_entidade": nil},
			sq.NotEq{"orgao_entidade": ""},
		}).
		GroupBy("orgao_entidade").
		OrderBy("total_vagas desc", "orgao_entidade asc").
		Limit(n)
}

func distribuicaoTipoQuery() sq.SelectBuilder {
	return builder().Select(
		"coalesce(nullif(tipo_autorizacao, ''), '"+constants.TipoOutros+"') as tipo_autorizacao",
		"count(*) as quantidade",
		sumVagas+" as total_vagas",
	).
		From(tableAutorizacoes).
		GroupBy("1").
		OrderBy("total_vagas desc", "tipo_autorizacao asc")
}

func (s *store) GetKPIStats(ctx context.Context, anoAtual domain.Year) (*domain.KPIStats, error) {
	stats, err := xpgx.Get[domain.KPIStats](ctx, s.pool, kpiStatsQuery(anoAtual))
	if err != nil {
		logger.Errorf(ctx, "GetKPIStats: %s", err.Error())
		return nil, fmt.Errorf("select kpi stats: %w", wrapErr(err))
	}

	stats.AnoAtual = anoAtual
	return &stats, nil
}

func (s *store) ListVagasPorAno(ctx context.Context) ([]domain.VagasAno, error) {
	selected, err := xpgx.Select[domain.VagasAno](ctx, s.pool, vagasPorAnoQuery())
	if err != nil {
		logger.Errorf(ctx, "ListVagasPorAno: %s", err.Error())
		return nil, fmt.Errorf("select vagas por ano: %w", wrapErr(err))
	}

	return selected, nil
}

func (s *store) ListTopOrgaos(ctx context.Context, n uint64) ([]domain.TopOrgao, error) {
	selected, err := xpgx.Select[domain.TopOrgao](ctx, s.pool, topOrgaosQuery(n))
	if err != nil {
		logger.Errorf(ctx, "ListTopOrgaos: %s", err.Error())
		return nil, fmt.Errorf("select top orgaos: %w", wrapErr(err))
	}

	return selected, nil
}

func (s *store) ListDistribuicaoTipo(ctx context.Context) ([]domain.TipoDistribuicao, error) {
	selected, err := xpgx.Select[domain.TipoDistribuicao](ctx, s.pool, distribuicaoTipoQuery())
	if err != nil {
		logger.Errorf(ctx, "ListDistribuicaoTipo: %s", err.Error())
		return nil, fmt.Errorf("select distribuicao tipo: %w", wrapErr(err))
	}

	return selected, nil
}
