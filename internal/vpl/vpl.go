// internal/vpl/vpl.go
package vpl

import (
	"math"
	"time"
)

// TaxaMensal é a taxa fixa de desconto de 0,5% ao mês usada em todo o
// comparativo de valor presente.
const TaxaMensal = 0.005

// Item descreve uma linha de fluxo de caixa, padrão ou proposto.
type Item struct {
	Valor              float64   `json:"valor"` // valor de cada parcela
	QtdParcelas        int       `json:"qtdParcelas"`
	PeriodicidadeMeses int       `json:"periodicidadeMeses"`
	PrimeiroVencimento time.Time `json:"primeiroVencimento"`
}

// Evento é uma parcela individual já expandida e datada.
type Evento struct {
	Valor      float64   `json:"valor"`
	Vencimento time.Time `json:"vencimento"`
}

// Comparativo reúne os KPIs exibidos na listagem e no detalhe da
// proposta: totais nominais, totais a valor presente e variações.
type Comparativo struct {
	NominalPadrao       float64 `json:"nominalPadrao"`
	NominalProposto     float64 `json:"nominalProposto"`
	PresentePadrao      float64 `json:"presentePadrao"`
	PresenteProposto    float64 `json:"presenteProposto"`
	VariacaoNominalPct  float64 `json:"variacaoNominalPct"`
	VariacaoPresentePct float64 `json:"variacaoPresentePct"`
}

// aoMeioDia normaliza a data para meio-dia local. A aritmética de
// vencimentos precisa disso: subtrair datas à meia-noite através de
// offsets de fuso desloca o resultado em um dia.
func aoMeioDia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, t.Location())
}

// ExpandirEventos abre cada linha de fluxo em parcelas individuais.
// A parcela i vence em PrimeiroVencimento + i*periodicidade meses;
// periodicidade 0 concentra todas as parcelas no primeiro vencimento.
func ExpandirEventos(itens []Item) []Evento {
	var eventos []Evento
	for _, it := range itens {
		qtd := it.QtdParcelas
		if qtd < 1 {
			qtd = 1
		}
		for i := 0; i < qtd; i++ {
			venc := it.PrimeiroVencimento
			if it.PeriodicidadeMeses > 0 {
				venc = venc.AddDate(0, i*it.PeriodicidadeMeses, 0)
			}
			eventos = append(eventos, Evento{Valor: it.Valor, Vencimento: venc})
		}
	}
	return eventos
}

// ValorPresente desconta cada evento para a data de referência usando
// mês comercial de 30 dias. "hoje" é parâmetro explícito para manter o
// cálculo determinístico.
func ValorPresente(hoje time.Time, eventos []Evento) (nominal, presente float64) {
	ref := aoMeioDia(hoje)
	for _, ev := range eventos {
		nominal += ev.Valor

		dias := aoMeioDia(ev.Vencimento).Sub(ref).Hours() / 24
		n := math.Round(dias) / 30
		if n <= 0.001 {
			presente += ev.Valor
			continue
		}
		presente += ev.Valor / math.Pow(1+TaxaMensal, n)
	}
	return nominal, presente
}

// Comparar calcula os KPIs do fluxo proposto frente ao fluxo padrão.
func Comparar(hoje time.Time, padrao, proposto []Item) Comparativo {
	var c Comparativo
	c.NominalPadrao, c.PresentePadrao = ValorPresente(hoje, ExpandirEventos(padrao))
	c.NominalProposto, c.PresenteProposto = ValorPresente(hoje, ExpandirEventos(proposto))
	c.VariacaoNominalPct = variacaoPct(c.NominalProposto, c.NominalPadrao)
	c.VariacaoPresentePct = variacaoPct(c.PresenteProposto, c.PresentePadrao)
	return c
}

func variacaoPct(proposto, padrao float64) float64 {
	if padrao == 0 {
		return 0
	}
	return (proposto - padrao) / padrao * 100
}
