package explorer

import (
	"context"
	"testing"

	"github.com/ougirez/concursos/internal/domain"
	"github.com/stretchr/testify/require"
)

// fiveHundredRows builds 500 rows, 120 of them published in 2024. Every
// seventh 2024 row has no vacancy count.
func fiveHundredRows() ([]*domain.Autorizacao, int64) {
	rows := make([]*domain.Autorizacao, 0, 500)
	var vagas2024 int64

	for i := 0; i < 500; i++ {
		row := &domain.Autorizacao{ID: int64(i + 1), OrgaoEntidade: strPtr("Órgão " + string(rune('A'+i%5)))}
		switch {
		case i < 120:
			row.DouPublicacaoAno = yearPtr(2024)
			if i%7 != 0 {
				row.Vagas = intPtr(int64(i))
				vagas2024 += int64(i)
			}
		case i < 400:
			row.DouPublicacaoAno = yearPtr(2023)
			row.Vagas = intPtr(1)
		default:
			row.Vagas = intPtr(2)
		}
		rows = append(rows, row)
	}

	return rows, vagas2024
}

func TestService_Load_SelectedYear(t *testing.T) {
	rows, vagas2024 := fiveHundredRows()
	fs := &fakeStore{
		rows:  rows,
		years: []domain.YearCount{{Year: 2024, Count: 120}, {Year: 2023, Count: 280}},
	}
	svc := NewExplorerService(fs, 500, 50)

	view, err := svc.Load(context.Background(), Query{Year: SingleYear(2024), PageSize: 500})
	require.NoError(t, err)

	require.Equal(t, uint64(500), fs.limit)
	require.Len(t, view.Rows, 120)
	require.Equal(t, 120, view.Page.TotalRows)
	require.Equal(t, 120, view.Metrics.TotalRegistros)
	require.Equal(t, vagas2024, view.Metrics.TotalVagas)
	require.Equal(t, 5, view.Metrics.TotalOrgaos)
	require.Equal(t, "Outros", view.Metrics.TipoMaisComum)
	require.Equal(t, int64(400), view.TotalNoBanco)
	require.Equal(t, "2024", view.Year)
	require.True(t, view.Capped)
	require.False(t, view.NoRowsInSelected)
}

func TestService_Load_DefaultsAndPagination(t *testing.T) {
	rows, _ := fiveHundredRows()
	svc := NewExplorerService(&fakeStore{rows: rows}, 0, 0)

	view, err := svc.Load(context.Background(), Query{Year: AllYears(), Page: 2})
	require.NoError(t, err)

	require.Len(t, view.Rows, 50)
	require.Equal(t, 2, view.Page.PageIndex)
	require.Equal(t, 10, view.Page.PageCount)
	require.Equal(t, int64(51), view.Rows[0].ID)
	require.Equal(t, 500, view.Metrics.TotalRegistros)
	require.Equal(t, OrderAsc, view.Query.Order)
}

func TestService_Load_YearWithoutRows(t *testing.T) {
	rows, _ := fiveHundredRows()
	svc := NewExplorerService(&fakeStore{rows: rows[:10]}, 500, 50)

	view, err := svc.Load(context.Background(), Query{Year: SingleYear(2010)})
	require.NoError(t, err)
	require.Empty(t, view.Rows)
	require.True(t, view.NoRowsInSelected)
	require.False(t, view.Capped)
	require.Equal(t, "N/A", view.Metrics.TipoMaisComum)
}

func TestService_Load_FailsWhenAnyFetchFails(t *testing.T) {
	svc := NewExplorerService(&fakeStore{yearsErr: errBackend}, 500, 50)
	_, err := svc.Load(context.Background(), Query{})
	require.ErrorIs(t, err, errBackend)

	svc = NewExplorerService(&fakeStore{rowsErr: errBackend}, 500, 50)
	_, err = svc.Load(context.Background(), Query{})
	require.ErrorIs(t, err, errBackend)
}

func TestService_Records(t *testing.T) {
	rows, _ := fiveHundredRows()
	svc := NewExplorerService(&fakeStore{rows: rows}, 500, 50)

	got, err := svc.Records(context.Background(), SingleYear(2023))
	require.NoError(t, err)
	require.Len(t, got, 280)
}

func TestService_List_CapsLimit(t *testing.T) {
	rows, _ := fiveHundredRows()
	fs := &fakeStore{rows: rows}
	svc := NewExplorerService(fs, 100, 50)

	got, err := svc.List(context.Background(), 1000)
	require.NoError(t, err)
	require.Len(t, got, 100)
	require.Equal(t, uint64(100), fs.limit)

	got, err = svc.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 10)

	_, err = svc.List(context.Background(), 0)
	require.NoError(t, err)
	require.Equal(t, uint64(100), fs.limit)
}
