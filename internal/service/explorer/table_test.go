package explorer

import (
	"testing"

	"github.com/ougirez/concursos/internal/domain"
	"github.com/ougirez/concursos/internal/pkg/labels"
	"github.com/stretchr/testify/require"
)

func ids(rows []*domain.Autorizacao) []int64 {
	res := make([]int64, 0, len(rows))
	for _, r := range rows {
		res = append(res, r.ID)
	}
	return res
}

func TestSortRows(t *testing.T) {
	rows := []*domain.Autorizacao{
		{ID: 1, Vagas: intPtr(10), OrgaoEntidade: strPtr("Órgão B")},
		{ID: 2, Vagas: nil, OrgaoEntidade: strPtr("orgao a")},
		{ID: 3, Vagas: intPtr(5), OrgaoEntidade: nil},
		{ID: 4, Vagas: intPtr(10), OrgaoEntidade: strPtr("Orgao C")},
	}

	require.Equal(t, []int64{3, 1, 4, 2}, ids(SortRows(rows, "vagas", OrderAsc)))
	require.Equal(t, []int64{1, 4, 3, 2}, ids(SortRows(rows, "vagas", OrderDesc)))
	require.Equal(t, []int64{2, 1, 4, 3}, ids(SortRows(rows, "orgao_entidade", OrderAsc)))
	require.Equal(t, []int64{4, 1, 2, 3}, ids(SortRows(rows, "orgao_entidade", OrderDesc)))

	t.Run("unknown column keeps order", func(t *testing.T) {
		require.Equal(t, []int64{1, 2, 3, 4}, ids(SortRows(rows, "drop table", OrderAsc)))
	})

	t.Run("input untouched", func(t *testing.T) {
		_ = SortRows(rows, "vagas", OrderDesc)
		require.Equal(t, []int64{1, 2, 3, 4}, ids(rows))
	})
}

func TestPaginate(t *testing.T) {
	p := Paginate(120, 1, 50)
	require.Equal(t, 3, p.PageCount)
	require.False(t, p.HasPrevious())
	require.True(t, p.HasNext())

	rows := make([]*domain.Autorizacao, 120)
	require.Len(t, p.Slice(rows), 50)

	last := Paginate(120, 3, 50)
	require.Len(t, last.Slice(rows), 20)
	require.False(t, last.HasNext())
	require.Equal(t, 2, last.Previous())

	clamped := Paginate(120, 99, 50)
	require.Equal(t, 3, clamped.PageIndex)

	first := Paginate(120, -1, 50)
	require.Equal(t, 1, first.PageIndex)

	empty := Paginate(0, 1, 50)
	require.Equal(t, 1, empty.PageCount)
	require.Empty(t, empty.Slice(nil))

	defaulted := Paginate(10, 1, 0)
	require.Equal(t, 50, defaulted.PageSize)
}

func TestNewTableRow(t *testing.T) {
	row := &domain.Autorizacao{
		ID:               9,
		DouPublicacaoAno: yearPtr(2024),
		OrgaoEntidade:    strPtr("Ministério da Fazenda"),
		Escolaridade:     strPtr("Nível Superior"),
		Vagas:            intPtr(1500),
		TipoAutorizacao:  strPtr("Provimento Excepcional"),
	}

	tr := NewTableRow(row)
	require.Equal(t, "2024", tr.Ano)
	require.Equal(t, "Ministério da Fazenda", tr.OrgaoEntidade)
	require.Equal(t, "-", tr.Cargo)
	require.Equal(t, "1.500", tr.Vagas)
	require.Equal(t, "-", tr.AtoOficial)
	require.Equal(t, &labels.Badge{Label: "Superior", Tier: labels.TierPrimary}, tr.Escolaridade)
	require.Equal(t, &labels.Badge{Label: "Prov. Excepcional", Tier: labels.TierAlert}, tr.TipoAutorizacao)

	empty := NewTableRow(&domain.Autorizacao{ID: 1, Vagas: intPtr(0)})
	require.Equal(t, "-", empty.Ano)
	require.Equal(t, "-", empty.Vagas)
	require.Nil(t, empty.Escolaridade)
	require.Nil(t, empty.TipoAutorizacao)

	require.Equal(t, "-", NewTableRow(&domain.Autorizacao{ID: 2}).Vagas)
}

func TestIsColumn(t *testing.T) {
	for _, col := range Columns {
		require.True(t, IsColumn(col.Key), col.Key)
	}
	require.False(t, IsColumn("bogus"))
	require.False(t, IsColumn(""))
}
