package domain

// YearCount feeds the year selector of the explorer.
type YearCount struct {
	Year  Year  `db:"year" json:"year"`
	Count int64 `db:"count" json:"count"`
}

type KPIStats struct {
	TotalVagas     int64 `db:"total_vagas" json:"totalVagas"`
	VagasAnoAtual  int64 `db:"vagas_ano_atual" json:"vagasAnoAtual"`
	AnoAtual       Year  `db:"-" json:"anoAtual"`
	TotalOrgaos    int64 `db:"total_orgaos" json:"totalOrgaos"`
	TotalRegistros int64 `db:"total_registros" json:"totalRegistros"`
}

// VagasAno is one point of the timeline chart.
type VagasAno struct {
	Ano            Year  `db:"ano" json:"ano"`
	TotalVagas     int64 `db:"total_vagas" json:"total_vagas"`
	TotalRegistros int64 `db:"total_registros" json:"total_registros"`
}

type TopOrgao struct {
	OrgaoEntidade     string `db:"orgao_entidade" json:"orgao_entidade"`
	TotalVagas        int64  `db:"total_vagas" json:"total_vagas"`
	TotalAutorizacoes int64  `db:"total_autorizacoes" json:"total_autorizacoes"`
}

type TipoDistribuicao struct {
	TipoAutorizacao string `db:"tipo_autorizacao" json:"tipo_autorizacao"`
	Quantidade      int64  `db:"quantidade" json:"quantidade"`
	TotalVagas      int64  `db:"total_vagas" json:"total_vagas"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
