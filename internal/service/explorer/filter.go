package explorer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ougirez/concursos/internal/domain"
	"github.com/ougirez/concursos/internal/pkg/constants"
	"github.com/ougirez/concursos/internal/pkg/format"
)

const yearAll = "all"

// YearSelection is either every year or one publication year.
type YearSelection struct {
	year *domain.Year
}

func AllYears() YearSelection {
	return YearSelection{}
}

func SingleYear(year domain.Year) YearSelection {
	return YearSelection{year: &year}
}

// ParseYearSelection accepts "", "all" or a year.
func ParseYearSelection(raw string) (YearSelection, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == yearAll {
		return AllYears(), nil
	}

	year, err := strconv.Atoi(raw)
	if err != nil || year <= 0 {
		return YearSelection{}, fmt.Errorf("%w: %q", constants.ErrInvalidYear, raw)
	}

	return SingleYear(year), nil
}

func (s YearSelection) IsAll() bool {
	return s.year == nil
}

// Year returns the selected year; ok is false for "all".
func (s YearSelection) Year() (year domain.Year, ok bool) {
	if s.year == nil {
		return 0, false
	}
	return *s.year, true
}

func (s YearSelection) String() string {
	if s.year == nil {
		return yearAll
	}
	return strconv.Itoa(*s.year)
}

// FilterByYear keeps the rows published in the selected year. For "all" the input
// slice itself is returned. The input is never modified.
func FilterByYear(rows []*domain.Autorizacao, sel YearSelection) []*domain.Autorizacao {
	year, ok := sel.Year()
	if !ok {
		return rows
	}

	res := make([]*domain.Autorizacao, 0, len(rows))
	for _, row := range rows {
		if row.HasYear(year) {
			res = append(res, row)
		}
	}

	return res
}

// FilterByText keeps rows whose organization or role contains query, ignoring
// case and accents. An empty query keeps everything.
func FilterByText(rows []*domain.Autorizacao, query string) []*domain.Autorizacao {
	if strings.TrimSpace(query) == "" {
		return rows
	}

	// a query with no valid text left after folding matches nothing
	needle := format.Fold(query)
	if needle == "" {
		return []*domain.Autorizacao{}
	}

	res := make([]*domain.Autorizacao, 0, len(rows))
	for _, row := range rows {
		if containsFolded(row.OrgaoEntidade, needle) || containsFolded(row.Cargos, needle) {
			res = append(res, row)
		}
	}

	return res
}

func containsFolded(s *string, needle string) bool {
	return s != nil && strings.Contains(format.Fold(*s), needle)
}
