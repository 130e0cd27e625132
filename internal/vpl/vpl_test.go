package vpl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hoje = time.Date(2026, 8, 28, 0, 0, 0, 0, time.Local)

func TestExpandirEventos(t *testing.T) {
	eventos := ExpandirEventos([]Item{
		{Valor: 40000, QtdParcelas: 1, PeriodicidadeMeses: 0, PrimeiroVencimento: hoje},
		{Valor: 16000, QtdParcelas: 10, PeriodicidadeMeses: 1, PrimeiroVencimento: hoje.AddDate(0, 1, 0)},
	})
	require.Len(t, eventos, 11)

	// parcela i vence i meses depois da primeira
	assert.Equal(t, hoje.AddDate(0, 1, 0), eventos[1].Vencimento)
	assert.Equal(t, hoje.AddDate(0, 10, 0), eventos[10].Vencimento)

	var nominal float64
	for _, ev := range eventos {
		nominal += ev.Valor
	}
	assert.InDelta(t, 200000, nominal, 0.001)
}

func TestExpandirEventosPeriodicidadeZero(t *testing.T) {
	// periodicidade 0: tudo concentrado no primeiro vencimento
	eventos := ExpandirEventos([]Item{
		{Valor: 1000, QtdParcelas: 3, PeriodicidadeMeses: 0, PrimeiroVencimento: hoje},
	})
	require.Len(t, eventos, 3)
	for _, ev := range eventos {
		assert.Equal(t, hoje, ev.Vencimento)
	}
}

func TestValorPresenteEventoImediato(t *testing.T) {
	nominal, presente := ValorPresente(hoje, []Evento{{Valor: 500, Vencimento: hoje}})
	assert.InDelta(t, 500, nominal, 0.001)
	assert.InDelta(t, 500, presente, 0.001, "evento de hoje não sofre desconto")
}

func TestValorPresenteDesconto(t *testing.T) {
	// uma parcela em ~30 dias vale valor/(1.005)^1
	nominal, presente := ValorPresente(hoje, []Evento{
		{Valor: 1005, Vencimento: hoje.AddDate(0, 0, 30)},
	})
	assert.InDelta(t, 1005, nominal, 0.001)
	assert.InDelta(t, 1000, presente, 0.01)
}

func TestValorPresenteNormalizaMeioDia(t *testing.T) {
	// vencimento 23:59 do mesmo dia não pode virar um dia de desconto
	quaseMeiaNoite := time.Date(hoje.Year(), hoje.Month(), hoje.Day(), 23, 59, 0, 0, time.Local)
	_, presente := ValorPresente(hoje, []Evento{{Valor: 100, Vencimento: quaseMeiaNoite}})
	assert.InDelta(t, 100, presente, 0.000001)
}

func TestCompararMonotonicidade(t *testing.T) {
	// mesmo nominal, cronograma mais cedo tem valor presente maior
	cedo := []Item{{Valor: 10000, QtdParcelas: 12, PeriodicidadeMeses: 1, PrimeiroVencimento: hoje.AddDate(0, 1, 0)}}
	tarde := []Item{{Valor: 10000, QtdParcelas: 12, PeriodicidadeMeses: 1, PrimeiroVencimento: hoje.AddDate(0, 7, 0)}}

	c := Comparar(hoje, cedo, tarde)
	assert.InDelta(t, c.NominalPadrao, c.NominalProposto, 0.001)
	assert.Greater(t, c.PresentePadrao, c.PresenteProposto)
	assert.Less(t, c.VariacaoPresentePct, 0.0)
	assert.InDelta(t, 0, c.VariacaoNominalPct, 0.000001)
}

func TestCompararPadraoZerado(t *testing.T) {
	c := Comparar(hoje, nil, []Item{{Valor: 100, QtdParcelas: 1, PrimeiroVencimento: hoje}})
	assert.Zero(t, c.VariacaoNominalPct, "variação indefinida vira 0")
	assert.Zero(t, c.VariacaoPresentePct)
}

func TestCompararVariacaoNominal(t *testing.T) {
	padrao := []Item{{Valor: 200000, QtdParcelas: 1, PrimeiroVencimento: hoje}}
	proposto := []Item{{Valor: 210000, QtdParcelas: 1, PrimeiroVencimento: hoje}}
	c := Comparar(hoje, padrao, proposto)
	assert.InDelta(t, 5.0, c.VariacaoNominalPct, 0.000001)
}
