package domain

import "time"

type Year = int

// Autorizacao is one row of autorizacoes_uniao: a hiring authorization published in the DOU.
type Autorizacao struct {
	ID                       int64      `db:"id" json:"id"`
	OrgaoEntidade            *string    `db:"orgao_entidade" json:"orgao_entidade"`
	VinculoOrgaoEntidade     *string    `db:"vinculo_orgao_entidade" json:"vinculo_orgao_entidade"`
	Setor                    *string    `db:"setor" json:"setor"`
	Cargos                   *string    `db:"cargos" json:"cargos"`
	Escolaridade             *string    `db:"escolaridade" json:"escolaridade"`
	Vagas                    *int64     `db:"vagas" json:"vagas"`
	AtoOficial               *string    `db:"ato_oficial" json:"ato_oficial"`
	TipoAutorizacao          *string    `db:"tipo_autorizacao" json:"tipo_autorizacao"`
	DataProvimento           *time.Time `db:"data_provimento" json:"data_provimento"`
	DouLink                  *string    `db:"dou_link" json:"dou_link"`
	DouPublicacaoAno         *Year      `db:"dou_publicacao_ano" json:"dou_publicacao_ano"`
	DouConcursoPortaria      *string    `db:"dou_concurso_portaria" json:"dou_concurso_portaria"`
	DouConcursoLink          *string    `db:"dou_concurso_link" json:"dou_concurso_link"`
	LinkPublicacaoDou        *string    `db:"link_publicacao_dou" json:"link_publicacao_dou"`
	AreaAtuacaoGovernamental *string    `db:"area_atuacao_governamental" json:"area_atuacao_governamental"`
	Observacoes              *string    `db:"observacoes" json:"observacoes"`
	CreatedAt                time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt                time.Time  `db:"updated_at" json:"updated_at"`
}

// VagasOrZero treats a missing vacancy count as zero.
func (a *Autorizacao) VagasOrZero() int64 {
	if a.Vagas == nil {
		return 0
	}
	return *a.Vagas
}

func (a *Autorizacao) HasYear(year Year) bool {
	return a.DouPublicacaoAno != nil && *a.DouPublicacaoAno == year
}
