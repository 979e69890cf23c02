package controller

import (
	"testing"

	"github.com/ougirez/concursos/internal/domain"
	"github.com/ougirez/concursos/internal/pkg/constants"
	"github.com/ougirez/concursos/internal/service/explorer"
	"github.com/stretchr/testify/require"
)

func TestExplorerPage_URLs(t *testing.T) {
	view := &explorer.View{
		Query: explorer.Query{
			Year:  explorer.SingleYear(2024),
			Text:  "saúde",
			Sort:  "vagas",
			Order: explorer.OrderDesc,
		},
		Years: []domain.YearCount{{Year: 2024, Count: 120}, {Year: 2023, Count: 380}},
		Page:  explorer.Paginate(120, 1, 50),
	}

	p := newExplorerPage(view, 0)

	require.Equal(t, "/explorer?order=desc&page=2&q=sa%C3%BAde&sort=vagas&year=2024", p.PageURL(2))
	require.Equal(t, "/explorer?order=desc&q=sa%C3%BAde&sort=vagas&year=2024", p.PageURL(1))
	require.Equal(t, "/api/v1/autorizacoes/export.xlsx?year=2024", p.ExportURL("xlsx"))
	require.Equal(t, []yearOption{{Value: "2024", Count: 120}, {Value: "2023", Count: 380}}, p.YearOptions)

	require.Len(t, p.Headers, len(explorer.Columns))
	for _, h := range p.Headers {
		if h.Key == "vagas" {
			require.Equal(t, "▼", h.Arrow)
			require.Equal(t, "/explorer?order=asc&q=sa%C3%BAde&sort=vagas&year=2024", h.URL)
			continue
		}
		require.Empty(t, h.Arrow)
	}
}

func TestExplorerPage_KeepsRequestedPageSize(t *testing.T) {
	view := &explorer.View{
		Query: explorer.Query{Year: explorer.AllYears(), Order: explorer.OrderAsc, PageSize: 200},
		Page:  explorer.Paginate(500, 1, 200),
	}

	p := newExplorerPage(view, 200)

	require.Equal(t, "/explorer?page=2&page_size=200", p.PageURL(2))
	require.Equal(t, "/api/v1/autorizacoes/export.csv", p.ExportURL("csv"))
	require.Equal(t, "/explorer?order=asc&page_size=200&sort=orgao_entidade", p.Headers[1].URL)
}

func TestExplorerRequest_Query(t *testing.T) {
	q, err := explorerRequest{Year: "2024", Sort: "vagas", Order: "desc", Page: 2}.query()
	require.NoError(t, err)
	require.Equal(t, "2024", q.Year.String())
	require.Equal(t, "vagas", q.Sort)
	require.Equal(t, explorer.OrderDesc, q.Order)

	_, err = explorerRequest{Sort: "bogus"}.query()
	require.ErrorIs(t, err, constants.ErrBadRequest)

	_, err = explorerRequest{Year: "abc"}.query()
	require.ErrorIs(t, err, constants.ErrInvalidYear)
}
