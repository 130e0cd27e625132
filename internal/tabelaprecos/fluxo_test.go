package tabelaprecos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dia(ano int, mes time.Month, d int) time.Time {
	return time.Date(ano, mes, d, 0, 0, 0, 0, time.Local)
}

func TestGerarFluxoPadrao(t *testing.T) {
	itens := []ItemFluxo{
		{Tipo: TipoEntrada, PercentualTotal: 20, QtdParcelas: 1, PeriodicidadeMeses: 0, PrimeiroVencimento: dia(2026, 9, 1)},
		{Tipo: TipoMensal, PercentualTotal: 80, QtdParcelas: 10, PeriodicidadeMeses: 1, PrimeiroVencimento: dia(2026, 10, 1)},
	}
	require.NoError(t, ValidarItens(itens))

	fluxo := GerarFluxoPadrao(200000, itens)
	require.Len(t, fluxo, 2)

	entrada := fluxo[0]
	assert.Equal(t, TipoEntrada, entrada.Tipo)
	assert.Equal(t, 1, entrada.QtdParcelas)
	assert.InDelta(t, 40000, entrada.ValorParcela, 0.001)
	assert.InDelta(t, 40000, entrada.ValorTotal, 0.001)

	mensal := fluxo[1]
	assert.Equal(t, 10, mensal.QtdParcelas)
	assert.InDelta(t, 16000, mensal.ValorParcela, 0.001)
	assert.InDelta(t, 160000, mensal.ValorTotal, 0.001)

	var soma float64
	for _, f := range fluxo {
		soma += f.ValorTotal
	}
	assert.InDelta(t, 200000, soma, 0.001)
}

func TestGerarFluxoPadraoRelabelSemestral(t *testing.T) {
	fluxo := GerarFluxoPadrao(100000, []ItemFluxo{
		{Tipo: TipoSemestral, PercentualTotal: 100, QtdParcelas: 4, PeriodicidadeMeses: 6},
	})
	require.Len(t, fluxo, 1)
	assert.Equal(t, TipoIntermediarias, fluxo[0].Tipo)
	assert.Equal(t, "Semestral", fluxo[0].Periodicidade)
	// troca de rótulo não mexe no dinheiro
	assert.InDelta(t, 25000, fluxo[0].ValorParcela, 0.001)
}

func TestGerarFluxoPadraoPrecoZero(t *testing.T) {
	itens := []ItemFluxo{
		{Tipo: TipoEntrada, PercentualTotal: 30, QtdParcelas: 1},
		{Tipo: TipoMensal, PercentualTotal: 70, QtdParcelas: 12, PeriodicidadeMeses: 1},
	}
	fluxo := GerarFluxoPadrao(0, itens)
	require.Len(t, fluxo, 2, "o formato é produzido mesmo sem preço")
	for _, f := range fluxo {
		assert.Zero(t, f.ValorParcela)
		assert.Zero(t, f.ValorTotal)
	}
}

func TestGerarFluxoPadraoQtdParcelasMinima(t *testing.T) {
	fluxo := GerarFluxoPadrao(50000, []ItemFluxo{
		{Tipo: TipoChaves, PercentualTotal: 100, QtdParcelas: 0},
	})
	require.Len(t, fluxo, 1)
	assert.Equal(t, 1, fluxo[0].QtdParcelas)
	assert.InDelta(t, 50000, fluxo[0].ValorParcela, 0.001)
}

func TestValidarItens(t *testing.T) {
	assert.NoError(t, ValidarItens([]ItemFluxo{
		{PercentualTotal: 20.0001}, {PercentualTotal: 79.9998},
	}))

	err := ValidarItens([]ItemFluxo{
		{PercentualTotal: 20}, {PercentualTotal: 79.5},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-0.5000", "desvio exato na mensagem")
}

func TestRotuloPeriodicidade(t *testing.T) {
	assert.Equal(t, "Única", RotuloPeriodicidade(0))
	assert.Equal(t, "Mensal", RotuloPeriodicidade(1))
	assert.Equal(t, "Semestral", RotuloPeriodicidade(6))
	assert.Equal(t, "Anual", RotuloPeriodicidade(12))
	assert.Equal(t, "Outra", RotuloPeriodicidade(5))
}
