package parcela

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/condicao"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/financeiro"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/tabelaprecos"
)

var hoje = time.Date(2026, 8, 28, 0, 0, 0, 0, time.Local)

func TestResequenciar(t *testing.T) {
	parcelas := []Parcela{
		{Tipo: "M", Vencimento: hoje.AddDate(0, 2, 0), Numero: 99},
		{Tipo: "E", Vencimento: hoje, Numero: 99},
		{Tipo: "M", Vencimento: hoje.AddDate(0, 1, 0), Numero: 99},
	}
	Resequenciar(parcelas)

	assert.Equal(t, "E", parcelas[0].Tipo)
	for i, p := range parcelas {
		assert.Equal(t, i+1, p.Numero, "sequência contígua a partir de 1")
	}
}

func TestValidarFechamento(t *testing.T) {
	parcelas := []Parcela{
		{Valor: 40000},
		{Valor: 160000},
	}
	assert.NoError(t, ValidarFechamento(parcelas, 200000))

	err := ValidarFechamento(parcelas, 200000.02)
	require.Error(t, err)
	var naoFechado *financeiro.ErrNaoFechado
	require.True(t, errors.As(err, &naoFechado))
	assert.InDelta(t, 0.02, naoFechado.Restante, 0.001)
}

func TestExpandirDeCondicoes(t *testing.T) {
	parcelas := ExpandirDeCondicoes([]condicao.Condicao{
		{Tipo: tabelaprecos.TipoEntrada, Vencimento: hoje, QtdParcelas: 1, ValorParcela: 40000},
		{Tipo: tabelaprecos.TipoMensal, Vencimento: hoje.AddDate(0, 1, 0), QtdParcelas: 10, ValorParcela: 16000},
	})
	require.Len(t, parcelas, 11)
	assert.Equal(t, "E", parcelas[0].Tipo)
	assert.Equal(t, "M", parcelas[1].Tipo)
	assert.Equal(t, hoje.AddDate(0, 10, 0), parcelas[10].Vencimento)
	assert.NoError(t, ValidarFechamento(parcelas, 200000))
}

func TestReagruparCondicoes(t *testing.T) {
	// parcelas são a fonte da verdade: runs de mesmo tipo e valor
	// voltam a ser uma condição só
	parcelas := []Parcela{
		{Tipo: "E", Vencimento: hoje, Valor: 40000},
		{Tipo: "M", Vencimento: hoje.AddDate(0, 1, 0), Valor: 16000},
		{Tipo: "M", Vencimento: hoje.AddDate(0, 2, 0), Valor: 16000},
		{Tipo: "M", Vencimento: hoje.AddDate(0, 3, 0), Valor: 20000},
	}
	condicoes := ReagruparCondicoes(parcelas)
	require.Len(t, condicoes, 3)

	assert.Equal(t, tabelaprecos.TipoEntrada, condicoes[0].Tipo)
	assert.Equal(t, tabelaprecos.TipoMensal, condicoes[1].Tipo)
	assert.Equal(t, 2, condicoes[1].QtdParcelas)
	assert.Equal(t, hoje.AddDate(0, 1, 0), condicoes[1].Vencimento)
	assert.InDelta(t, 20000, condicoes[2].ValorParcela, 0.001)
}

func TestCodigoTipoIdaEVolta(t *testing.T) {
	assert.Equal(t, "E", CodigoTipo(tabelaprecos.TipoEntrada))
	assert.Equal(t, "I", CodigoTipo(tabelaprecos.TipoSemestral), "semestral compartilha o balde intermediárias")
	assert.Equal(t, "O", CodigoTipo("PERMUTA"))
	assert.Equal(t, tabelaprecos.TipoIntermediarias, TipoDoCodigo("I"))
	assert.Equal(t, tabelaprecos.TipoOutros, TipoDoCodigo("X"))
}
