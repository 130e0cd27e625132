// internal/proposta/model.go
package proposta

import (
	"time"

	"gorm.io/gorm"

	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/comissao"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/condicao"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/parcela"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/participante"
)

// Status do ciclo de vida da proposta.
const (
	StatusRascunho     = "RASCUNHO"
	StatusEmAnalise    = "EM_ANALISE"
	StatusAprovado     = "APROVADO"
	StatusReprovado    = "REPROVADO"
	StatusFormalizada  = "FORMALIZADA"
	StatusEmAssinatura = "EM_ASSINATURA"
	StatusAssinado     = "ASSINADO"
	// CANCELADO é alcançável só por via administrativa, fora da
	// máquina de transições.
	StatusCancelado = "CANCELADO"
)

// Motivos de reprovação aceitos em Decidir.
const (
	MotivoMargemBaixa  = "MARGEM_BAIXA"
	MotivoFluxoRuim    = "FLUXO_RUIM"
	MotivoDocumentacao = "DOCUMENTACAO"
	MotivoOutro        = "OUTRO"
)

// Proposta é a raiz do agregado comercial: preço negociado, plano de
// pagamento, rateio de comissão, participantes e histórico.
type Proposta struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	UnidadeID uint   `gorm:"not null;index" json:"unidadeId"`
	Status    string `gorm:"size:30;not null;default:'RASCUNHO';index" json:"status"`

	// Valor alvo negociado e o preço de tabela na criação.
	ValorProposta       float64 `gorm:"not null;default:0" json:"valorProposta"`
	ValorTabelaOriginal float64 `gorm:"not null;default:0" json:"valorTabelaOriginal"`
	// Pool do rateio de comissão.
	ValorComissao float64 `gorm:"not null;default:0" json:"valorComissao"`

	// Metadados da decisão de análise.
	DataDecisao          *time.Time `json:"dataDecisao,omitempty"`
	DecisorID            *uint      `json:"decisorId,omitempty"`
	MotivoReprovacao     string     `gorm:"size:30" json:"motivoReprovacao,omitempty"`
	ObservacaoReprovacao string     `json:"observacaoReprovacao,omitempty"`

	Condicoes     []condicao.Condicao         `gorm:"foreignKey:PropostaID;constraint:OnDelete:CASCADE" json:"condicoes"`
	Parcelas      []parcela.Parcela           `gorm:"foreignKey:PropostaID;constraint:OnDelete:CASCADE" json:"parcelas"`
	Comissoes     []comissao.LinhaComissao    `gorm:"foreignKey:PropostaID;constraint:OnDelete:CASCADE" json:"comissoes"`
	Participantes []participante.Participante `gorm:"foreignKey:PropostaID;constraint:OnDelete:CASCADE" json:"participantes"`
	Historico     []Historico                 `gorm:"foreignKey:PropostaID;constraint:OnDelete:CASCADE" json:"historico"`
}

// AtualizarValorAlvo muda o valor negociado da proposta, contra o qual
// o quadro de condições precisa fechar. Zero ou negativo mantém o
// valor corrente: quem não renegocia não envia o campo.
func (p *Proposta) AtualizarValorAlvo(valor float64) {
	if valor > 0 {
		p.ValorProposta = valor
	}
}

// Historico é o registro imutável de cada transição de status e de
// cada salvamento financeiro feito sob desbloqueio pós-aprovação.
type Historico struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	PropostaID     uint      `gorm:"not null;index" json:"propostaId"`
	Acao           string    `gorm:"size:50;not null" json:"acao"`
	UsuarioID      uint      `gorm:"not null" json:"usuarioId"`
	StatusAnterior string    `gorm:"size:30" json:"statusAnterior"`
	StatusNovo     string    `gorm:"size:30" json:"statusNovo"`
	Observacao     string    `json:"observacao"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Migrate cria as tabelas no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Proposta{}, &Historico{})
}
