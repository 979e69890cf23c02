package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/ougirez/concursos/internal/domain"
	"github.com/ougirez/concursos/internal/pkg/logger"
	"github.com/ougirez/concursos/internal/pkg/store/xpgx"
)

var autorizacaoColumns = []string{
	"id",
	"orgao_entidade",
	"vinculo_orgao_entidade",
	"setor",
	"cargos",
	"escolaridade",
	"vagas",
	"ato_oficial",
	"tipo_autorizacao",
	"data_provimento",
	"dou_link",
	"dou_publicacao_ano",
	"dou_concurso_portaria",
	"dou_concurso_link",
	"link_publicacao_dou",
	"area_atuacao_governamental",
	"observacoes",
	"created_at",
	"updated_at",
}

func listAutorizacoesQuery(limit uint64) sq.SelectBuilder {
	return builder().Select(autorizacaoColumns...).
		From(tableAutorizacoes).
		OrderBy("dou_publicacao_ano desc nulls last", "id desc").
		Limit(limit)
}

func listAvailableYearsQuery() sq.SelectBuilder {
	return builder().Select("dou_publicacao_ano as year", "count(*) as count").
		From(tableAutorizacoes).
		Where(sq.NotEq{"dou_publicacao_ano": nil}).
		GroupBy("dou_publicacao_ano").
		OrderBy("dou_publicacao_ano desc")
}

// ListAutorizacoes returns up to limit most recent records.
func (s *store) ListAutorizacoes(ctx context.Context, limit uint64) ([]*domain.Autorizacao, error) {
	selected, err := xpgx.Select[domain.Autorizacao](ctx, s.pool, listAutorizacoesQuery(limit))
	if err != nil {
		logger.Errorf(ctx, "ListAutorizacoes: %s", err.Error())
		return nil, fmt.Errorf("select autorizacoes: %w", wrapErr(err))
	}

	res := make([]*domain.Autorizacao, len(selected))
	for i := range selected {
		res[i] = &selected[i]
	}

	return res, nil
}

func (s *store) ListAvailableYears(ctx context.Context) ([]domain.YearCount, error) {
	selected, err := xpgx.Select[domain.YearCount](ctx, s.pool, listAvailableYearsQuery())
	if err != nil {
		logger.Errorf(ctx, "ListAvailableYears: %s", err.Error())
		return nil, fmt.Errorf("select years: %w", wrapErr(err))
	}

	return selected, nil
}
