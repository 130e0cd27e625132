// internal/proposta/maquina.go
package proposta

import (
	"errors"
	"fmt"
	"time"
)

// Ações registradas no histórico.
const (
	AcaoSubmeter         = "SUBMETER"
	AcaoAprovar          = "APROVAR"
	AcaoReprovar         = "REPROVAR"
	AcaoFormalizar       = "FORMALIZAR"
	AcaoGerarContrato    = "GERAR_CONTRATO"
	AcaoAssinar          = "ASSINAR"
	AcaoCancelar         = "CANCELAR"
	AcaoEdicaoFinanceira = "EDICAO_FINANCEIRA"
)

// ErrTransicaoInvalida descreve uma transição recusada antes de
// qualquer cálculo acontecer.
type ErrTransicaoInvalida struct {
	De   string
	Para string
}

func (e *ErrTransicaoInvalida) Error() string {
	return fmt.Sprintf("transição de %s para %s não é permitida", e.De, e.Para)
}

// ErrEdicaoBloqueada recusa edições financeiras pelo status atual.
type ErrEdicaoBloqueada struct {
	Status string
}

func (e *ErrEdicaoBloqueada) Error() string {
	return fmt.Sprintf("proposta em %s não aceita edição financeira", e.Status)
}

// ErrMotivoInvalido recusa reprovações fora do conjunto de motivos.
var ErrMotivoInvalido = errors.New("motivo de reprovação inválido")

// ErrDecisorObrigatorio exige um ator identificado para decidir.
var ErrDecisorObrigatorio = errors.New("decisão exige um usuário decisor")

var motivosValidos = map[string]bool{
	MotivoMargemBaixa:  true,
	MotivoFluxoRuim:    true,
	MotivoDocumentacao: true,
	MotivoOutro:        true,
}

// EmFormalizacao indica o bloqueio duro e permanente das abas
// financeiras. FORMALIZADA já trava a edição mas ainda permite gerar o
// contrato; EM_ASSINATURA e ASSINADO travam tudo.
func EmFormalizacao(status string) bool {
	return status == StatusFormalizada ||
		status == StatusEmAssinatura ||
		status == StatusAssinado
}

// PodeEditar decide se as abas financeiras aceitam edição. O padrão é
// destravado; APROVADO exige desbloqueio explícito do usuário; em
// formalização (e em CANCELADO) nenhum desbloqueio destrava.
func PodeEditar(status string, desbloqueado bool) bool {
	if EmFormalizacao(status) || status == StatusCancelado {
		return false
	}
	if status == StatusAprovado {
		return desbloqueado
	}
	return true
}

// Submeter envia o rascunho para análise. O quadro de condições já
// nasce fechado na criação, então não há pré-condição financeira aqui.
func (p *Proposta) Submeter(usuarioID uint) error {
	if p.Status != StatusRascunho {
		return &ErrTransicaoInvalida{De: p.Status, Para: StatusEmAnalise}
	}
	p.transicionar(StatusEmAnalise, AcaoSubmeter, "", usuarioID)
	return nil
}

// Decidir aprova ou reprova uma proposta em análise. Reprovação exige
// um motivo do conjunto fechado; a observação livre entra no histórico
// como "<motivo> - <observação>".
func (p *Proposta) Decidir(aprovado bool, motivo, observacao string, usuarioID uint, agora time.Time) error {
	destino := StatusAprovado
	acao := AcaoAprovar
	if !aprovado {
		destino = StatusReprovado
		acao = AcaoReprovar
	}
	if p.Status != StatusEmAnalise {
		return &ErrTransicaoInvalida{De: p.Status, Para: destino}
	}
	if usuarioID == 0 {
		return ErrDecisorObrigatorio
	}

	nota := ""
	if !aprovado {
		if !motivosValidos[motivo] {
			return ErrMotivoInvalido
		}
		p.MotivoReprovacao = motivo
		p.ObservacaoReprovacao = observacao
		nota = motivo
		if observacao != "" {
			nota = motivo + " - " + observacao
		}
	}

	p.DataDecisao = &agora
	p.DecisorID = &usuarioID
	p.transicionar(destino, acao, nota, usuarioID)
	return nil
}

// Formalizar gera o termo de intenção e trava o termo; irreversível
// por esta máquina.
func (p *Proposta) Formalizar(usuarioID uint) error {
	if p.Status != StatusAprovado {
		return &ErrTransicaoInvalida{De: p.Status, Para: StatusFormalizada}
	}
	p.transicionar(StatusFormalizada, AcaoFormalizar, "", usuarioID)
	return nil
}

// GerarContrato emite o contrato de compra e leva a proposta para a
// assinatura. A partir daqui as abas financeiras ficam travadas em
// definitivo.
func (p *Proposta) GerarContrato(usuarioID uint) error {
	if p.Status != StatusFormalizada {
		return &ErrTransicaoInvalida{De: p.Status, Para: StatusEmAssinatura}
	}
	p.transicionar(StatusEmAssinatura, AcaoGerarContrato, "", usuarioID)
	return nil
}

// Assinar conclui o ciclo após o upload do artefato assinado. Terminal.
func (p *Proposta) Assinar(usuarioID uint) error {
	if p.Status != StatusEmAssinatura {
		return &ErrTransicaoInvalida{De: p.Status, Para: StatusAssinado}
	}
	p.transicionar(StatusAssinado, AcaoAssinar, "", usuarioID)
	return nil
}

// Cancelar é a via administrativa, fora da tabela de transições.
func (p *Proposta) Cancelar(usuarioID uint, observacao string) {
	p.transicionar(StatusCancelado, AcaoCancelar, observacao, usuarioID)
}

// RegistrarEdicaoFinanceira valida o portão de edição e aplica o
// efeito colateral do desbloqueio pós-aprovação: uma proposta aprovada
// cuja economia muda deixa de estar aprovada e volta para análise,
// com uma entrada de histórico.
func (p *Proposta) RegistrarEdicaoFinanceira(aba string, usuarioID uint, desbloqueado bool) (reverteu bool, err error) {
	if !PodeEditar(p.Status, desbloqueado) {
		return false, &ErrEdicaoBloqueada{Status: p.Status}
	}
	if p.Status == StatusAprovado {
		p.transicionar(StatusEmAnalise, AcaoEdicaoFinanceira, aba, usuarioID)
		return true, nil
	}
	return false, nil
}

func (p *Proposta) transicionar(para, acao, observacao string, usuarioID uint) {
	p.Historico = append(p.Historico, Historico{
		PropostaID:     p.ID,
		Acao:           acao,
		UsuarioID:      usuarioID,
		StatusAnterior: p.Status,
		StatusNovo:     para,
		Observacao:     observacao,
	})
	p.Status = para
}
