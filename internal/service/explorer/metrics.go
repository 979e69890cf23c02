package explorer

import (
	"github.com/ougirez/concursos/internal/domain"
	"github.com/ougirez/concursos/internal/pkg/constants"
)

// Metrics are the four cards above the explorer table.
type Metrics struct {
	TotalVagas     int64  `json:"totalVagas"`
	TotalRegistros int    `json:"totalRegistros"`
	TotalOrgaos    int    `json:"totalOrgaos"`
	TipoMaisComum  string `json:"tipoMaisComum"`
}

func ComputeMetrics(rows []*domain.Autorizacao) Metrics {
	return Metrics{
		TotalVagas:     TotalVagas(rows),
		TotalRegistros: TotalRegistros(rows),
		TotalOrgaos:    TotalOrgaos(rows),
		TipoMaisComum:  TipoMaisComum(rows),
	}
}

// TotalVagas sums vacancies; a missing count adds nothing.
func TotalVagas(rows []*domain.Autorizacao) int64 {
	var total int64
	for _, row := range rows {
		total += row.VagasOrZero()
	}
	return total
}

func TotalRegistros(rows []*domain.Autorizacao) int {
	return len(rows)
}

// TotalOrgaos counts distinct non-empty organization names, case-sensitive.
func TotalOrgaos(rows []*domain.Autorizacao) int {
	seen := make(map[string]struct{})
	for _, row := range rows {
		if row.OrgaoEntidade == nil || *row.OrgaoEntidade == "" {
			continue
		}
		seen[*row.OrgaoEntidade] = struct{}{}
	}
	return len(seen)
}

// TipoMaisComum returns the most frequent authorization type, "Outros" standing
// for a missing one. On a tie the type seen first wins. Empty input yields "N/A".
func TipoMaisComum(rows []*domain.Autorizacao) string {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, row := range rows {
		tipo := constants.TipoOutros
		if row.TipoAutorizacao != nil && *row.TipoAutorizacao != "" {
			tipo = *row.TipoAutorizacao
		}
		if _, ok := counts[tipo]; !ok {
			order = append(order, tipo)
		}
		counts[tipo]++
	}

	best, bestCount := constants.NotAvailable, 0
	for _, tipo := range order {
		if counts[tipo] > bestCount {
			best, bestCount = tipo, counts[tipo]
		}
	}

	return best
}

// TotalRegistrosNoBanco is the number of records across every year of the selector.
func TotalRegistrosNoBanco(years []domain.YearCount) int64 {
	var total int64
	for _, y := range years {
		total += y.Count
	}
	return total
}
