// internal/proposta/dto.go
package proposta

import (
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/comissao"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/condicao"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/parcela"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/participante"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/vpl"
)

type criarPropostaDTO struct {
	UnidadeID     uint    `json:"unidadeId"`
	ValorComissao float64 `json:"valorComissao"`
}

type decisaoDTO struct {
	Aprovado   bool   `json:"aprovado"`
	Motivo     string `json:"motivo"`
	Observacao string `json:"observacao"`
}

type cancelamentoDTO struct {
	Observacao string `json:"observacao"`
}

// Os salvamentos financeiros carregam a marca de desbloqueio explícito
// da aba, usada pelo portão de edição pós-aprovação.
type salvarCondicoesDTO struct {
	Desbloqueado bool `json:"desbloqueado"`
	// Valor negociado da venda; zero mantém o valor corrente.
	ValorProposta float64             `json:"valorProposta"`
	Condicoes     []condicao.Condicao `json:"condicoes"`
}

type salvarParcelasDTO struct {
	Desbloqueado bool              `json:"desbloqueado"`
	Parcelas     []parcela.Parcela `json:"parcelas"`
}

type salvarComissaoDTO struct {
	Desbloqueado bool                     `json:"desbloqueado"`
	Linhas       []comissao.LinhaComissao `json:"linhas"`
}

type salvarParticipantesDTO struct {
	Desbloqueado bool                        `json:"desbloqueado"`
	Linhas       []participante.Participante `json:"linhas"`
}

type esvaziarDTO struct {
	Desbloqueado bool `json:"desbloqueado"`
}

// propostaResumoDTO é a linha da listagem: a proposta com os KPIs de
// valor presente frente ao fluxo padrão.
type propostaResumoDTO struct {
	Proposta    Proposta         `json:"proposta"`
	Comparativo *vpl.Comparativo `json:"comparativo,omitempty"`
}
