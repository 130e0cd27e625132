package condicao

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/financeiro"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/tabelaprecos"
)

var hoje = time.Date(2026, 8, 28, 0, 0, 0, 0, time.Local)

func TestAdicionarCondicao(t *testing.T) {
	q := NovoQuadro(200000)
	c := q.Adicionar(tabelaprecos.TipoEntrada, hoje)

	assert.Equal(t, tabelaprecos.TipoEntrada, c.Tipo)
	assert.Equal(t, 1, c.QtdParcelas)
	assert.Zero(t, c.ValorParcela)
	assert.Equal(t, hoje, c.Vencimento)
	assert.Equal(t, SituacaoFalta, q.Situacao())
}

func TestAtualizarNaoMexeNasOutrasLinhas(t *testing.T) {
	q := NovoQuadro(100000)
	a := q.Adicionar(tabelaprecos.TipoEntrada, hoje)
	b := q.Adicionar(tabelaprecos.TipoMensal, hoje)
	require.NoError(t, q.Atualizar(b.ID, tabelaprecos.TipoMensal, hoje, 10, 8000))

	require.NoError(t, q.Atualizar(a.ID, tabelaprecos.TipoEntrada, hoje, 1, 20000))
	assert.InDelta(t, 8000, q.Condicoes[1].ValorParcela, 0.001, "linhas são independentes")
	assert.InDelta(t, 100000, q.TotalDistribuido(), 0.001)
	assert.Equal(t, SituacaoFechado, q.Situacao())
}

func TestRemoverCondicao(t *testing.T) {
	q := NovoQuadro(1000)
	c := q.Adicionar(tabelaprecos.TipoChaves, hoje)
	require.NoError(t, q.Remover(c.ID))
	assert.Empty(t, q.Condicoes)
	assert.ErrorIs(t, q.Remover(c.ID), ErrCondicaoNaoEncontrada)
}

func TestPortaoDeFechamentoExato(t *testing.T) {
	q := NovoQuadro(200000)
	e := q.Adicionar(tabelaprecos.TipoEntrada, hoje)
	m := q.Adicionar(tabelaprecos.TipoMensal, hoje)
	require.NoError(t, q.Atualizar(e.ID, e.Tipo, hoje, 1, 40000))
	require.NoError(t, q.Atualizar(m.ID, m.Tipo, hoje, 10, 16000))

	assert.NoError(t, q.ValidarFechamento())

	// dois centavos a menos bloqueiam o salvamento e informam o desvio
	require.NoError(t, q.Atualizar(e.ID, e.Tipo, hoje, 1, 39999.98))
	err := q.ValidarFechamento()
	require.Error(t, err)

	var naoFechado *financeiro.ErrNaoFechado
	require.True(t, errors.As(err, &naoFechado))
	assert.InDelta(t, 0.02, naoFechado.Restante, 0.001)
}

func TestSituacaoExcede(t *testing.T) {
	q := NovoQuadro(500)
	c := q.Adicionar(tabelaprecos.TipoEntrada, hoje)
	require.NoError(t, q.Atualizar(c.ID, c.Tipo, hoje, 1, 600))
	assert.Equal(t, SituacaoExcede, q.Situacao())

	var naoFechado *financeiro.ErrNaoFechado
	require.True(t, errors.As(q.ValidarFechamento(), &naoFechado))
	assert.InDelta(t, -100, naoFechado.Restante, 0.001)
}

func TestRestaurarPadrao(t *testing.T) {
	itens := []tabelaprecos.ItemFluxo{
		{Tipo: tabelaprecos.TipoEntrada, PercentualTotal: 20, QtdParcelas: 1, PrimeiroVencimento: hoje},
		{Tipo: tabelaprecos.TipoSemestral, PercentualTotal: 80, QtdParcelas: 4, PeriodicidadeMeses: 6, PrimeiroVencimento: hoje.AddDate(0, 6, 0)},
	}

	q := NovoQuadro(150000)
	q.Adicionar(tabelaprecos.TipoChaves, hoje)

	q.RestaurarPadrao(200000, itens)
	require.Len(t, q.Condicoes, 2)
	assert.InDelta(t, 200000, q.ValorAlvo, 0.001)
	assert.Equal(t, tabelaprecos.TipoIntermediarias, q.Condicoes[1].Tipo)
	assert.Equal(t, SituacaoFechado, q.Situacao())
}

func TestPorTipo(t *testing.T) {
	q := NovoQuadro(1000)
	q.Adicionar(tabelaprecos.TipoEntrada, hoje)
	q.Adicionar(tabelaprecos.TipoEntrada, hoje)
	q.Adicionar("PERMUTA", hoje) // tipo livre cai em OUTROS

	baldes := q.PorTipo()
	assert.Len(t, baldes[tabelaprecos.TipoEntrada], 2)
	assert.Len(t, baldes[tabelaprecos.TipoOutros], 1)
}

func TestCarregarQuadroPreservaIDs(t *testing.T) {
	q := CarregarQuadro(1000, []Condicao{
		{ID: 7, Tipo: tabelaprecos.TipoEntrada, QtdParcelas: 1, ValorParcela: 1000},
	})
	novo := q.Adicionar(tabelaprecos.TipoMensal, hoje)
	assert.Greater(t, novo.ID, uint(7), "id provisório não colide com persistidos")
}

func TestWithDBUsaConexaoDaTransacao(t *testing.T) {
	base := &gorm.DB{}
	tx := &gorm.DB{}
	repo := NewRepository(base)

	assert.Same(t, tx, repo.WithDB(tx).DB)
	assert.Same(t, base, repo.WithDB(nil).DB, "nil volta para a conexão base")
}
