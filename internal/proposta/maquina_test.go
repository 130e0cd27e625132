package proposta

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/condicao"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/tabelaprecos"
)

var agora = time.Date(2026, 8, 28, 10, 0, 0, 0, time.Local)

func propostaEm(status string) *Proposta {
	return &Proposta{ID: 1, Status: status, ValorProposta: 200000}
}

func TestCicloCompleto(t *testing.T) {
	p := propostaEm(StatusRascunho)

	require.NoError(t, p.Submeter(10))
	assert.Equal(t, StatusEmAnalise, p.Status)

	require.NoError(t, p.Decidir(true, "", "", 20, agora))
	assert.Equal(t, StatusAprovado, p.Status)
	require.NotNil(t, p.DecisorID)
	assert.Equal(t, uint(20), *p.DecisorID)

	require.NoError(t, p.Formalizar(10))
	require.NoError(t, p.GerarContrato(10))
	require.NoError(t, p.Assinar(10))
	assert.Equal(t, StatusAssinado, p.Status)

	// cada transição deixou exatamente um registro
	require.Len(t, p.Historico, 5)
	assert.Equal(t, AcaoSubmeter, p.Historico[0].Acao)
	assert.Equal(t, StatusRascunho, p.Historico[0].StatusAnterior)
	assert.Equal(t, AcaoAssinar, p.Historico[4].Acao)
}

func TestDecidirExigeAnalise(t *testing.T) {
	p := propostaEm(StatusRascunho)
	err := p.Decidir(true, "", "", 20, agora)
	require.Error(t, err, "decidir sem submeter é recusado")

	var transicao *ErrTransicaoInvalida
	require.ErrorAs(t, err, &transicao)
	assert.Equal(t, StatusRascunho, transicao.De)
	assert.Equal(t, StatusRascunho, p.Status, "nada muda numa transição recusada")
	assert.Empty(t, p.Historico)
}

func TestDecidirExigeDecisor(t *testing.T) {
	p := propostaEm(StatusEmAnalise)
	assert.ErrorIs(t, p.Decidir(true, "", "", 0, agora), ErrDecisorObrigatorio)
}

func TestReprovacaoExigeMotivoDoConjunto(t *testing.T) {
	p := propostaEm(StatusEmAnalise)
	assert.ErrorIs(t, p.Decidir(false, "NAO_GOSTEI", "", 20, agora), ErrMotivoInvalido)
	assert.Equal(t, StatusEmAnalise, p.Status)
}

func TestReprovacaoRegistraMotivoENota(t *testing.T) {
	p := propostaEm(StatusEmAnalise)
	require.NoError(t, p.Decidir(false, MotivoMargemBaixa, "fluxo muito longo", 20, agora))

	assert.Equal(t, StatusReprovado, p.Status)
	assert.Equal(t, MotivoMargemBaixa, p.MotivoReprovacao)
	require.Len(t, p.Historico, 1)
	assert.Equal(t, "MARGEM_BAIXA - fluxo muito longo", p.Historico[0].Observacao)
}

func TestReprovacaoSemNota(t *testing.T) {
	p := propostaEm(StatusEmAnalise)
	require.NoError(t, p.Decidir(false, MotivoOutro, "", 20, agora))
	assert.Equal(t, MotivoOutro, p.Historico[0].Observacao)
}

func TestFormalizarSoDeAprovado(t *testing.T) {
	p := propostaEm(StatusEmAnalise)
	assert.Error(t, p.Formalizar(10))

	p = propostaEm(StatusAprovado)
	assert.NoError(t, p.Formalizar(10))
}

func TestEmFormalizacao(t *testing.T) {
	assert.False(t, EmFormalizacao(StatusAprovado))
	assert.True(t, EmFormalizacao(StatusFormalizada))
	assert.True(t, EmFormalizacao(StatusEmAssinatura))
	assert.True(t, EmFormalizacao(StatusAssinado))
}

func TestPodeEditar(t *testing.T) {
	// padrão destravado
	assert.True(t, PodeEditar(StatusRascunho, false))
	assert.True(t, PodeEditar(StatusEmAnalise, false))
	assert.True(t, PodeEditar(StatusReprovado, false))

	// aprovado exige desbloqueio explícito
	assert.False(t, PodeEditar(StatusAprovado, false))
	assert.True(t, PodeEditar(StatusAprovado, true))

	// em formalização nenhum desbloqueio destrava
	assert.False(t, PodeEditar(StatusFormalizada, true))
	assert.False(t, PodeEditar(StatusEmAssinatura, true))
	assert.False(t, PodeEditar(StatusAssinado, true))
	assert.False(t, PodeEditar(StatusCancelado, true))
}

func TestEdicaoBloqueadaEmAssinatura(t *testing.T) {
	p := propostaEm(StatusEmAssinatura)
	_, err := p.RegistrarEdicaoFinanceira("condicoes", 10, true)
	require.Error(t, err)

	var bloqueada *ErrEdicaoBloqueada
	require.ErrorAs(t, err, &bloqueada)
	assert.Equal(t, StatusEmAssinatura, bloqueada.Status)
}

func TestEdicaoAprovadaReverteParaAnalise(t *testing.T) {
	p := propostaEm(StatusAprovado)

	reverteu, err := p.RegistrarEdicaoFinanceira("condicoes", 10, true)
	require.NoError(t, err)
	assert.True(t, reverteu, "economia mudou: a aprovação cai")
	assert.Equal(t, StatusEmAnalise, p.Status)

	require.Len(t, p.Historico, 1, "exatamente uma entrada de histórico")
	h := p.Historico[0]
	assert.Equal(t, AcaoEdicaoFinanceira, h.Acao)
	assert.Equal(t, StatusAprovado, h.StatusAnterior)
	assert.Equal(t, StatusEmAnalise, h.StatusNovo)
	assert.Equal(t, uint(10), h.UsuarioID)
}

func TestEdicaoForaDeAprovadoNaoReverte(t *testing.T) {
	p := propostaEm(StatusEmAnalise)
	reverteu, err := p.RegistrarEdicaoFinanceira("comissao", 10, false)
	require.NoError(t, err)
	assert.False(t, reverteu)
	assert.Empty(t, p.Historico)
}

func TestValorAlvoNegociadoDiferenteDaTabela(t *testing.T) {
	p := propostaEm(StatusRascunho)
	p.ValorTabelaOriginal = 200000

	// venda fechada por 185000, abaixo do preço de tabela
	condicoes := []condicao.Condicao{
		{Tipo: tabelaprecos.TipoEntrada, QtdParcelas: 1, ValorParcela: 35000},
		{Tipo: tabelaprecos.TipoMensal, QtdParcelas: 10, ValorParcela: 15000},
	}

	require.Error(t, condicao.CarregarQuadro(p.ValorProposta, condicoes).ValidarFechamento(),
		"contra o preço de tabela o quadro não fecha")

	p.AtualizarValorAlvo(185000)
	assert.InDelta(t, 185000, p.ValorProposta, 0.001)
	require.NoError(t, condicao.CarregarQuadro(p.ValorProposta, condicoes).ValidarFechamento())

	// payload sem o campo não mexe no valor negociado
	p.AtualizarValorAlvo(0)
	assert.InDelta(t, 185000, p.ValorProposta, 0.001)
	assert.InDelta(t, 200000, p.ValorTabelaOriginal, 0.001, "o preço de tabela da criação fica registrado")
}

func TestCancelarAdministrativo(t *testing.T) {
	p := propostaEm(StatusEmAnalise)
	p.Cancelar(99, "desistência do cliente")
	assert.Equal(t, StatusCancelado, p.Status)
	require.Len(t, p.Historico, 1)
	assert.Equal(t, AcaoCancelar, p.Historico[0].Acao)
}
