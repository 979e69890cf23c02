// Package labels maps raw category values of autorizacoes_uniao to what the
// dashboard shows for them.
package labels

// Tier is the visual emphasis of a badge.
type Tier string

const (
	TierPrimary   Tier = "primary"
	TierSecondary Tier = "secondary"
	TierNeutral   Tier = "neutral"
	TierAlert     Tier = "alert"
)

type Badge struct {
	Label string `json:"label"`
	Tier  Tier   `json:"tier"`
}

var escolaridadeBadges = map[string]Badge{
	"Nível Superior":      {Label: "Superior", Tier: TierPrimary},
	"Nível Intermediário": {Label: "Intermediário", Tier: TierSecondary},
	"Nível Médio":         {Label: "Médio", Tier: TierSecondary},
	"Nível Fundamental":   {Label: "Fundamental", Tier: TierNeutral},
}

var tipoAutorizacaoBadges = map[string]Badge{
	"Concurso Público":       {Label: "Concurso Público", Tier: TierPrimary},
	"Provimento Originário":  {Label: "Prov. Originário", Tier: TierSecondary},
	"Provimento Adicional":   {Label: "Prov. Adicional", Tier: TierNeutral},
	"Provimento Excepcional": {Label: "Prov. Excepcional", Tier: TierAlert},
	"Contratação Temporária": {Label: "Temporário", Tier: TierNeutral},
}

func lookup(table map[string]Badge, raw *string) Badge {
	if raw == nil {
		return Badge{Tier: TierNeutral}
	}
	if b, ok := table[*raw]; ok {
		return b
	}
	return Badge{Label: *raw, Tier: TierNeutral}
}

func Escolaridade(raw *string) Badge {
	return lookup(escolaridadeBadges, raw)
}

func TipoAutorizacao(raw *string) Badge {
	return lookup(tipoAutorizacaoBadges, raw)
}

var chartPalette = []string{"#1351B4", "#168821", "#FFCD07", "#D32F2F", "#00C851", "#FFB800"}

// PrimaryColor is used for single-series charts.
const PrimaryColor = "#1351B4"

// ChartColor cycles through the chart palette.
func ChartColor(i int) string {
	if i < 0 {
		i = -i
	}
	return chartPalette[i%len(chartPalette)]
}
