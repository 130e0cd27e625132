package comissao

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/rateio"
)

func rateioDeExemplo() *Rateio {
	// percentuais [60, 40] sobre pool de 10000
	r := NovoRateio(10000)
	r.Adicionar(1)
	r.Adicionar(2)
	_ = r.EditarPercentual(0, 60)
	_ = r.EditarPercentual(1, 40)
	return r
}

func TestValoresDerivadosDoPercentual(t *testing.T) {
	r := rateioDeExemplo()
	assert.InDelta(t, 6000, r.Linhas[0].Valor, 0.001)
	assert.InDelta(t, 4000, r.Linhas[1].Valor, 0.001)
}

func TestEditarValorNaoRebalanceiaAsOutras(t *testing.T) {
	r := rateioDeExemplo()
	require.NoError(t, r.EditarValor(0, 7000))

	assert.InDelta(t, 70, r.Linhas[0].Percentual, 0.001)
	assert.InDelta(t, 40, r.Linhas[1].Percentual, 0.001, "linha 2 intocada")
	assert.InDelta(t, 4000, r.Linhas[1].Valor, 0.001)

	// agora a soma não fecha e o salvamento é bloqueado
	err := r.Validar()
	require.Error(t, err)
	var soma *rateio.ErrSomaInvalida
	require.True(t, errors.As(err, &soma))
	assert.InDelta(t, 10, soma.Desvio, 0.001)
}

func TestPrimeiraLinhaAssume(t *testing.T) {
	r := NovoRateio(8000)
	l := r.Adicionar(5)
	assert.True(t, l.Responsavel)
	assert.InDelta(t, 100, l.Percentual, 0.001)
	assert.InDelta(t, 8000, l.Valor, 0.001)
	assert.NoError(t, r.Validar())
}

func TestAdicionarPreservaPercentuais(t *testing.T) {
	r := rateioDeExemplo()
	r.Adicionar(3)
	assert.InDelta(t, 60, r.Linhas[0].Percentual, 0.001)
	assert.InDelta(t, 40, r.Linhas[1].Percentual, 0.001)
	assert.Zero(t, r.Linhas[2].Percentual)
}

func TestResponsavelUnico(t *testing.T) {
	r := rateioDeExemplo()
	require.NoError(t, r.DefinirResponsavel(1))
	assert.False(t, r.Linhas[0].Responsavel)
	assert.True(t, r.Linhas[1].Responsavel)

	require.NoError(t, r.DefinirResponsavel(0))
	assert.True(t, r.Linhas[0].Responsavel)
	assert.False(t, r.Linhas[1].Responsavel)
}

func TestValidarExigeResponsavel(t *testing.T) {
	r := NovoRateio(10000)
	r.Adicionar(1)
	r.Adicionar(2)
	_ = r.EditarPercentual(0, 50)
	_ = r.EditarPercentual(1, 50)
	r.Linhas[0].Responsavel = false

	assert.ErrorIs(t, r.Validar(), rateio.ErrSemResponsavel)
}

func TestValidarToleranciaDeRateio(t *testing.T) {
	r := NovoRateio(100)
	r.Adicionar(1)
	r.Adicionar(2)
	_ = r.EditarValor(0, 66.67)
	_ = r.EditarValor(1, 33.37)
	_ = r.DefinirResponsavel(0)
	// percentuais somam 100.04, dentro dos 0.05 de tolerância de rateio
	assert.NoError(t, r.Validar())
}

func TestValidarListaVazia(t *testing.T) {
	assert.NoError(t, NovoRateio(10000).Validar())
}

func TestRemoverPreservaPercentuais(t *testing.T) {
	r := rateioDeExemplo()
	r.Adicionar(3)
	require.NoError(t, r.Remover(2))
	require.Len(t, r.Linhas, 2)
	assert.InDelta(t, 60, r.Linhas[0].Percentual, 0.001)

	assert.ErrorIs(t, r.Remover(5), ErrLinhaInvalida)
}
