package overview

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ougirez/concursos/internal/domain"
	"github.com/ougirez/concursos/internal/pkg/constants"
	"github.com/ougirez/concursos/internal/pkg/format"
	"github.com/ougirez/concursos/internal/pkg/labels"
)

const (
	chartWidth   = 640.0
	chartHeight  = 320.0
	chartPadding = 40.0
	pieRadius    = 80.0
	orgLabelMax  = 30
	barRowHeight = 40.0
)

type KPICard struct {
	Title       string `json:"title"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

func KPICards(kpi *domain.KPIStats) []KPICard {
	return []KPICard{
		{
			Title:       fmt.Sprintf("Total de Vagas (%d-%d)", constants.FirstYear, constants.LastYear),
			Value:       format.Int(kpi.TotalVagas),
			Description: fmt.Sprintf("Vagas autorizadas em %d anos", constants.LastYear-constants.FirstYear+1),
		},
		{
			Title:       fmt.Sprintf("Vagas em %d", kpi.AnoAtual),
			Value:       format.Int(kpi.VagasAnoAtual),
			Description: "Autorizações do ano atual",
		},
		{
			Title:       "Órgãos Contratantes",
			Value:       format.Int(kpi.TotalOrgaos),
			Description: "Entidades da União",
		},
		{
			Title:       "Total de Autorizações",
			Value:       format.Int(kpi.TotalRegistros),
			Description: "Atos oficiais registrados",
		},
	}
}

type TimelinePoint struct {
	Ano   domain.Year `json:"ano"`
	Vagas string      `json:"vagas"`
	X     float64     `json:"x"`
	Y     float64     `json:"y"`
}

type TimelineChart struct {
	Points   []TimelinePoint `json:"points"`
	Polyline string          `json:"polyline"`
	MaxLabel string          `json:"maxLabel"`
	Color    string          `json:"color"`
	Summary  string          `json:"summary"`
}

func NewTimelineChart(data []domain.VagasAno) TimelineChart {
	var (
		total    int64
		maxPoint domain.VagasAno
		minPoint domain.VagasAno
	)
	for i, p := range data {
		total += p.TotalVagas
		if i == 0 || p.TotalVagas > maxPoint.TotalVagas {
			maxPoint = p
		}
		if i == 0 || p.TotalVagas < minPoint.TotalVagas {
			minPoint = p
		}
	}

	chart := TimelineChart{
		Points:   make([]TimelinePoint, 0, len(data)),
		MaxLabel: format.Int(maxPoint.TotalVagas),
		Color:    labels.PrimaryColor,
		Summary:  timelineSummary(data, total, maxPoint, minPoint),
	}

	plotW := chartWidth - 2*chartPadding
	plotH := chartHeight - 2*chartPadding
	coords := make([]string, 0, len(data))
	for i, p := range data {
		x := chartPadding + plotW/2
		if len(data) > 1 {
			x = chartPadding + float64(i)*plotW/float64(len(data)-1)
		}
		y := chartHeight - chartPadding
		if maxPoint.TotalVagas > 0 {
			y -= float64(p.TotalVagas) / float64(maxPoint.TotalVagas) * plotH
		}
		x, y = round1(x), round1(y)

		chart.Points = append(chart.Points, TimelinePoint{Ano: p.Ano, Vagas: format.Int(p.TotalVagas), X: x, Y: y})
		coords = append(coords, ftoa(x)+","+ftoa(y))
	}
	chart.Polyline = strings.Join(coords, " ")

	return chart
}

func timelineSummary(data []domain.VagasAno, total int64, maxPoint, minPoint domain.VagasAno) string {
	first, last := constants.FirstYear, constants.LastYear
	if len(data) > 0 {
		first, last = data[0].Ano, data[len(data)-1].Ano
	}

	summary := fmt.Sprintf("Gráfico de linha mostrando evolução de %s vagas entre %d e %d.", format.Int(total), first, last)
	if len(data) == 0 {
		return summary
	}

	return summary + fmt.Sprintf(" Maior volume em %d com %s vagas. Menor volume em %d com %s vagas.",
		maxPoint.Ano, format.Int(maxPoint.TotalVagas),
		minPoint.Ano, format.Int(minPoint.TotalVagas),
	)
}

type OrgaoBar struct {
	Label        string  `json:"label"`
	Orgao        string  `json:"orgao"`
	Vagas        string  `json:"vagas"`
	Autorizacoes string  `json:"autorizacoes"`
	WidthPct     float64 `json:"widthPct"`
	Y            float64 `json:"y"`
}

type TopOrgaosChart struct {
	Bars    []OrgaoBar `json:"bars"`
	Height  float64    `json:"height"`
	Color   string     `json:"color"`
	Summary string     `json:"summary"`
}

func NewTopOrgaosChart(data []domain.TopOrgao) TopOrgaosChart {
	var total, maxVagas int64
	for _, o := range data {
		total += o.TotalVagas
		maxVagas = max(maxVagas, o.TotalVagas)
	}

	bars := make([]OrgaoBar, 0, len(data))
	for i, o := range data {
		var width float64
		if maxVagas > 0 {
			width = round1(float64(o.TotalVagas) / float64(maxVagas) * 100)
		}
		bars = append(bars, OrgaoBar{
			Label:        format.Truncate(o.OrgaoEntidade, orgLabelMax),
			Orgao:        o.OrgaoEntidade,
			Vagas:        format.Int(o.TotalVagas),
			Autorizacoes: format.Int(o.TotalAutorizacoes),
			WidthPct:     width,
			Y:            float64(i) * barRowHeight,
		})
	}

	top := make([]string, 0, 3)
	for i, o := range data[:min(3, len(data))] {
		top = append(top, fmt.Sprintf("%dº: %s com %s vagas", i+1, o.OrgaoEntidade, format.Int(o.TotalVagas)))
	}

	return TopOrgaosChart{
		Bars:   bars,
		Height: float64(len(data)) * barRowHeight,
		Color:  labels.PrimaryColor,
		Summary: fmt.Sprintf("Gráfico de barras horizontais mostrando os %d órgãos com mais vagas. Total de %s vagas. Top 3: %s",
			len(data), format.Int(total), strings.Join(top, ". ")),
	}
}

type TipoSlice struct {
	Tipo       string `json:"tipo"`
	Quantidade string `json:"quantidade"`
	Vagas      string `json:"vagas"`
	Percent    string `json:"percent"`
	Color      string `json:"color"`
	Path       string `json:"path,omitempty"`
	FullCircle bool   `json:"fullCircle,omitempty"`
}

type TipoChart struct {
	Slices  []TipoSlice `json:"slices"`
	CX      float64     `json:"cx"`
	CY      float64     `json:"cy"`
	R       float64     `json:"r"`
	Summary string      `json:"summary"`
}

func NewTipoChart(data []domain.TipoDistribuicao) TipoChart {
	var total int64
	for _, d := range data {
		total += d.TotalVagas
	}

	chart := TipoChart{
		Slices: make([]TipoSlice, 0, len(data)),
		CX:     pieRadius + 20,
		CY:     pieRadius + 20,
		R:      pieRadius,
	}

	parts := make([]string, 0, len(data))
	angle := -math.Pi / 2
	for i, d := range data {
		percent := format.Percent(d.TotalVagas, total)
		slice := TipoSlice{
			Tipo:       d.TipoAutorizacao,
			Quantidade: format.Int(d.Quantidade),
			Vagas:      format.Int(d.TotalVagas),
			Percent:    percent,
			Color:      labels.ChartColor(i),
		}

		if total > 0 && d.TotalVagas > 0 {
			share := float64(d.TotalVagas) / float64(total)
			if share >= 1 {
				slice.FullCircle = true
			} else {
				next := angle + share*2*math.Pi
				slice.Path = arcPath(chart.CX, chart.CY, chart.R, angle, next)
				angle = next
			}
		}

		chart.Slices = append(chart.Slices, slice)
		parts = append(parts, fmt.Sprintf("%s: %s vagas (%s%%)", d.TipoAutorizacao, format.Int(d.TotalVagas), percent))
	}

	chart.Summary = fmt.Sprintf("Gráfico de pizza mostrando distribuição de %s vagas por tipo de autorização. %s",
		format.Int(total), strings.Join(parts, ". "))

	return chart
}

func arcPath(cx, cy, r, from, to float64) string {
	x1, y1 := cx+r*math.Cos(from), cy+r*math.Sin(from)
	x2, y2 := cx+r*math.Cos(to), cy+r*math.Sin(to)
	large := 0
	if to-from > math.Pi {
		large = 1
	}
	return fmt.Sprintf("M %s %s L %s %s A %s %s 0 %d 1 %s %s Z",
		ftoa(cx), ftoa(cy), ftoa(round1(x1)), ftoa(round1(y1)),
		ftoa(r), ftoa(r), large, ftoa(round1(x2)), ftoa(round1(y2)))
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Page is the overview dashboard prepared for rendering.
type Page struct {
	Cards     []KPICard      `json:"cards"`
	Timeline  TimelineChart  `json:"timeline"`
	TopOrgaos TopOrgaosChart `json:"topOrgaos"`
	Tipos     TipoChart      `json:"tipos"`
}

func NewPage(d *Dashboard) Page {
	return Page{
		Cards:     KPICards(d.KPI),
		Timeline:  NewTimelineChart(d.VagasPorAno),
		TopOrgaos: NewTopOrgaosChart(d.TopOrgaos),
		Tipos:     NewTipoChart(d.DistribuicaoTipo),
	}
}
