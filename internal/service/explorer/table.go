package explorer

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/ougirez/concursos/internal/domain"
	"github.com/ougirez/concursos/internal/pkg/constants"
	"github.com/ougirez/concursos/internal/pkg/format"
	"github.com/ougirez/concursos/internal/pkg/labels"
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// Column describes one column of the explorer table.
type Column struct {
	Key     string
	Header  string
	Numeric bool
}

var Columns = []Column{
	{Key: "dou_publicacao_ano", Header: "Ano de Publicação", Numeric: true},
	{Key: "orgao_entidade", Header: "Órgão/Entidade"},
	{Key: "cargos", Header: "Cargo"},
	{Key: "escolaridade", Header: "Escolaridade"},
	{Key: "vagas", Header: "Vagas", Numeric: true},
	{Key: "tipo_autorizacao", Header: "Tipo de Autorização"},
	{Key: "ato_oficial", Header: "Ato Oficial"},
}

func columnByKey(key string) (Column, bool) {
	i := slices.IndexFunc(Columns, func(c Column) bool { return c.Key == key })
	if i < 0 {
		return Column{}, false
	}
	return Columns[i], true
}

func IsColumn(key string) bool {
	_, ok := columnByKey(key)
	return ok
}

func intKey(row *domain.Autorizacao, key string) *int64 {
	switch key {
	case "dou_publicacao_ano":
		if row.DouPublicacaoAno == nil {
			return nil
		}
		v := int64(*row.DouPublicacaoAno)
		return &v
	case "vagas":
		return row.Vagas
	}
	return nil
}

func textKey(row *domain.Autorizacao, key string) *string {
	switch key {
	case "orgao_entidade":
		return row.OrgaoEntidade
	case "cargos":
		return row.Cargos
	case "escolaridade":
		return row.Escolaridade
	case "tipo_autorizacao":
		return row.TipoAutorizacao
	case "ato_oficial":
		return row.AtoOficial
	}
	return nil
}

func compareNullable[T any](a, b *T, order SortOrder, cmpFn func(a, b T) int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}

	c := cmpFn(*a, *b)
	if order == OrderDesc {
		return -c
	}
	return c
}

// SortRows returns a sorted copy of rows. Missing values go last in both orders;
// an unknown key keeps the incoming order.
func SortRows(rows []*domain.Autorizacao, key string, order SortOrder) []*domain.Autorizacao {
	res := slices.Clone(rows)
	col, ok := columnByKey(key)
	if !ok {
		return res
	}

	slices.SortStableFunc(res, func(a, b *domain.Autorizacao) int {
		if col.Numeric {
			return compareNullable(intKey(a, key), intKey(b, key), order, cmp.Compare[int64])
		}
		return compareNullable(textKey(a, key), textKey(b, key), order, func(x, y string) int {
			return cmp.Compare(format.Fold(x), format.Fold(y))
		})
	})

	return res
}

// Page is one page of a paginated list, PageIndex starting at 1.
type Page struct {
	PageIndex  int `json:"page"`
	PageSize   int `json:"pageSize"`
	PageCount  int `json:"pageCount"`
	TotalRows  int `json:"totalRows"`
	start, end int
}

func (p Page) HasPrevious() bool { return p.PageIndex > 1 }
func (p Page) HasNext() bool     { return p.PageIndex < p.PageCount }
func (p Page) Previous() int     { return p.PageIndex - 1 }
func (p Page) Next() int         { return p.PageIndex + 1 }

// Paginate clamps page into the valid range, so a page past the end is the last page.
func Paginate(total, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = constants.DefaultPageSize
	}

	pageCount := (total + pageSize - 1) / pageSize
	if pageCount == 0 {
		pageCount = 1
	}

	page = min(max(page, 1), pageCount)
	start := min((page-1)*pageSize, total)
	end := min(start+pageSize, total)

	return Page{PageIndex: page, PageSize: pageSize, PageCount: pageCount, TotalRows: total, start: start, end: end}
}

func (p Page) Slice(rows []*domain.Autorizacao) []*domain.Autorizacao {
	return rows[p.start:p.end]
}

// TableRow is a record prepared for display.
type TableRow struct {
	ID              int64         `json:"id"`
	Ano             string        `json:"ano"`
	OrgaoEntidade   string        `json:"orgaoEntidade"`
	Cargo           string        `json:"cargo"`
	Escolaridade    *labels.Badge `json:"escolaridade"`
	Vagas           string        `json:"vagas"`
	TipoAutorizacao *labels.Badge `json:"tipoAutorizacao"`
	AtoOficial      string        `json:"atoOficial"`
}

func NewTableRow(row *domain.Autorizacao) TableRow {
	tr := TableRow{
		ID:            row.ID,
		Ano:           constants.Placeholder,
		OrgaoEntidade: format.Text(row.OrgaoEntidade),
		Cargo:         format.Text(row.Cargos),
		AtoOficial:    format.Text(row.AtoOficial),
	}

	if row.DouPublicacaoAno != nil && *row.DouPublicacaoAno != 0 {
		tr.Ano = strconv.Itoa(*row.DouPublicacaoAno)
	}
	// zero vacancies render as a dash too
	vagas := row.Vagas
	if vagas != nil && *vagas == 0 {
		vagas = nil
	}
	tr.Vagas = format.IntPtr(vagas)
	if row.Escolaridade != nil && *row.Escolaridade != "" {
		b := labels.Escolaridade(row.Escolaridade)
		tr.Escolaridade = &b
	}
	if row.TipoAutorizacao != nil && *row.TipoAutorizacao != "" {
		b := labels.TipoAutorizacao(row.TipoAutorizacao)
		tr.TipoAutorizacao = &b
	}

	return tr
}
