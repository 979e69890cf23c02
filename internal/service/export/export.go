// Package export writes explorer records as downloadable files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/ougirez/concursos/internal/domain"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Autorizacoes"

// Row is the flat representation of a record in exported files.
type Row struct {
	ID                       int64  `csv:"id"`
	DouPublicacaoAno         string `csv:"dou_publicacao_ano"`
	OrgaoEntidade            string `csv:"orgao_entidade"`
	VinculoOrgaoEntidade     string `csv:"vinculo_orgao_entidade"`
	Setor                    string `csv:"setor"`
	Cargos                   string `csv:"cargos"`
	Escolaridade             string `csv:"escolaridade"`
	Vagas                    string `csv:"vagas"`
	AtoOficial               string `csv:"ato_oficial"`
	TipoAutorizacao          string `csv:"tipo_autorizacao"`
	DataProvimento           string `csv:"data_provimento"`
	DouLink                  string `csv:"dou_link"`
	DouConcursoPortaria      string `csv:"dou_concurso_portaria"`
	DouConcursoLink          string `csv:"dou_concurso_link"`
	LinkPublicacaoDou        string `csv:"link_publicacao_dou"`
	AreaAtuacaoGovernamental string `csv:"area_atuacao_governamental"`
	Observacoes              string `csv:"observacoes"`
}

var headers = []string{
	"id", "dou_publicacao_ano", "orgao_entidade", "vinculo_orgao_entidade", "setor", "cargos",
	"escolaridade", "vagas", "ato_oficial", "tipo_autorizacao", "data_provimento", "dou_link",
	"dou_concurso_portaria", "dou_concurso_link", "link_publicacao_dou", "area_atuacao_governamental",
	"observacoes",
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func NewRow(a *domain.Autorizacao) Row {
	r := Row{
		ID:                       a.ID,
		OrgaoEntidade:            str(a.OrgaoEntidade),
		VinculoOrgaoEntidade:     str(a.VinculoOrgaoEntidade),
		Setor:                    str(a.Setor),
		Cargos:                   str(a.Cargos),
		Escolaridade:             str(a.Escolaridade),
		AtoOficial:               str(a.AtoOficial),
		TipoAutorizacao:          str(a.TipoAutorizacao),
		DouLink:                  str(a.DouLink),
		DouConcursoPortaria:      str(a.DouConcursoPortaria),
		DouConcursoLink:          str(a.DouConcursoLink),
		LinkPublicacaoDou:        str(a.LinkPublicacaoDou),
		AreaAtuacaoGovernamental: str(a.AreaAtuacaoGovernamental),
		Observacoes:              str(a.Observacoes),
	}
	if a.DouPublicacaoAno != nil {
		r.DouPublicacaoAno = strconv.Itoa(*a.DouPublicacaoAno)
	}
	if a.Vagas != nil {
		r.Vagas = strconv.FormatInt(*a.Vagas, 10)
	}
	if a.DataProvimento != nil {
		r.DataProvimento = a.DataProvimento.Format("2006-01-02")
	}
	return r
}

func (r Row) values() []interface{} {
	return []interface{}{
		r.ID, r.DouPublicacaoAno, r.OrgaoEntidade, r.VinculoOrgaoEntidade, r.Setor, r.Cargos,
		r.Escolaridade, r.Vagas, r.AtoOficial, r.TipoAutorizacao, r.DataProvimento, r.DouLink,
		r.DouConcursoPortaria, r.DouConcursoLink, r.LinkPublicacaoDou, r.AreaAtuacaoGovernamental,
		r.Observacoes,
	}
}

func NewRows(records []*domain.Autorizacao) []Row {
	rows := make([]Row, 0, len(records))
	for _, a := range records {
		rows = append(rows, NewRow(a))
	}
	return rows
}

// WriteCSV writes records separated by ';' with CRLF line endings.
func WriteCSV(w io.Writer, records []*domain.Autorizacao) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = ';'
	csvWriter.UseCRLF = true

	rows := NewRows(records)
	if err := gocsv.MarshalCSV(&rows, csvWriter); err != nil {
		return fmt.Errorf("gocsv.MarshalCSV: %w", err)
	}

	return nil
}

// WriteXLSX writes records as a single-sheet spreadsheet.
func WriteXLSX(w io.Writer, records []*domain.Autorizacao) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close workbook: %w", closeErr)
		}
	}()

	if err = f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("SetSheetName: %w", err)
	}

	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err = f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("SetSheetRow header: %w", err)
	}

	for i, a := range records {
		cell, cellErr := excelize.CoordinatesToCellName(1, i+2)
		if cellErr != nil {
			return fmt.Errorf("CoordinatesToCellName: %w", cellErr)
		}
		values := NewRow(a).values()
		if err = f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("SetSheetRow %d: %w", a.ID, err)
		}
	}

	if _, err = f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	return nil
}
