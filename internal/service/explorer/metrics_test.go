package explorer

import (
	"testing"

	"github.com/ougirez/concursos/internal/domain"
	"github.com/ougirez/concursos/internal/pkg/constants"
	"github.com/stretchr/testify/require"
)

func TestTotalVagas(t *testing.T) {
	require.Equal(t, int64(0), TotalVagas(nil))
	require.Equal(t, int64(5), TotalVagas([]*domain.Autorizacao{{Vagas: nil}, {Vagas: intPtr(5)}}))
	// negative counts are summed as they come
	require.Equal(t, int64(7), TotalVagas([]*domain.Autorizacao{{Vagas: intPtr(10)}, {Vagas: intPtr(-3)}}))
}

func TestTotalRegistros(t *testing.T) {
	require.Equal(t, 0, TotalRegistros(nil))
	require.Equal(t, 3, TotalRegistros(make([]*domain.Autorizacao, 3)))
}

func TestTotalOrgaos(t *testing.T) {
	rows := []*domain.Autorizacao{
		{OrgaoEntidade: strPtr("A")},
		{OrgaoEntidade: strPtr("A")},
		{OrgaoEntidade: strPtr("B")},
		{OrgaoEntidade: nil},
	}
	require.Equal(t, 2, TotalOrgaos(rows))

	rows = append(rows, &domain.Autorizacao{OrgaoEntidade: strPtr("")}, &domain.Autorizacao{OrgaoEntidade: strPtr("a")})
	require.Equal(t, 3, TotalOrgaos(rows))
	require.Equal(t, 0, TotalOrgaos(nil))
}

func TestTipoMaisComum(t *testing.T) {
	tests := []struct {
		name string
		rows []*domain.Autorizacao
		want string
	}{
		{
			name: "empty",
			want: constants.NotAvailable,
		},
		{
			name: "majority",
			rows: []*domain.Autorizacao{
				{TipoAutorizacao: strPtr("X")},
				{TipoAutorizacao: strPtr("X")},
				{TipoAutorizacao: strPtr("Y")},
			},
			want: "X",
		},
		{
			name: "missing type counts as Outros",
			rows: []*domain.Autorizacao{
				{TipoAutorizacao: nil},
				{TipoAutorizacao: strPtr("")},
				{TipoAutorizacao: strPtr("Y")},
			},
			want: constants.TipoOutros,
		},
		{
			name: "tie goes to first seen",
			rows: []*domain.Autorizacao{
				{TipoAutorizacao: strPtr("Y")},
				{TipoAutorizacao: strPtr("X")},
				{TipoAutorizacao: strPtr("X")},
				{TipoAutorizacao: strPtr("Y")},
			},
			want: "Y",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, TipoMaisComum(tt.rows))
		})
	}
}

func TestComputeMetrics(t *testing.T) {
	rows := []*domain.Autorizacao{
		{OrgaoEntidade: strPtr("A"), Vagas: intPtr(3), TipoAutorizacao: strPtr("Concurso Público")},
		{OrgaoEntidade: strPtr("B"), Vagas: nil, TipoAutorizacao: strPtr("Concurso Público")},
		{OrgaoEntidade: strPtr("A"), Vagas: intPtr(4), TipoAutorizacao: strPtr("Provimento Adicional")},
	}

	require.Equal(t, Metrics{
		TotalVagas:     7,
		TotalRegistros: 3,
		TotalOrgaos:    2,
		TipoMaisComum:  "Concurso Público",
	}, ComputeMetrics(rows))
}

func TestTotalRegistrosNoBanco(t *testing.T) {
	require.Equal(t, int64(0), TotalRegistrosNoBanco(nil))
	require.Equal(t, int64(30), TotalRegistrosNoBanco([]domain.YearCount{{Year: 2024, Count: 10}, {Year: 2023, Count: 20}}))
}
