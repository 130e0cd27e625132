// internal/rateio/rateio.go
package rateio

import (
	"errors"
	"fmt"
	"math"
)

// Linha é a visão mínima que o motor de rateio tem de uma linha de
// comissão ou participação: um par percentual/valor derivado de um
// pool e uma marca de responsável.
type Linha struct {
	Percentual  float64 `json:"percentual"`
	Valor       float64 `json:"valor"`
	Responsavel bool    `json:"responsavel"`
}

// ErrSemResponsavel bloqueia o salvamento de uma lista sem responsável.
var ErrSemResponsavel = errors.New("é necessário ao menos um responsável")

// ErrSomaInvalida informa o desvio exato e assinado frente ao alvo.
type ErrSomaInvalida struct {
	Campo  string // "percentual" ou "valor"
	Desvio float64
}

func (e *ErrSomaInvalida) Error() string {
	return fmt.Sprintf("soma de %s fora do alvo: desvio de %+.2f", e.Campo, e.Desvio)
}

// EditarPercentual aplica a edição pelo lado do percentual: o valor é
// sempre rederivado do pool, nunca guardado de forma independente.
func EditarPercentual(l *Linha, percentual, pool float64) {
	l.Percentual = percentual
	l.Valor = percentual / 100 * pool
}

// EditarValor aplica a edição pelo lado do valor: o percentual interno
// fica sem arredondar, o arredondamento a 2 casas é só de exibição.
func EditarValor(l *Linha, valor, pool float64) {
	l.Valor = valor
	if pool == 0 {
		l.Percentual = 0
		return
	}
	l.Percentual = valor / pool * 100
}

// Assumir inicializa a primeira linha de uma lista vazia: responsável
// e dona de 100% do pool.
func Assumir(l *Linha, pool float64) {
	l.Responsavel = true
	EditarPercentual(l, 100, pool)
}

// ConferirSoma valida o fechamento de uma soma contra o alvo dentro da
// tolerância, devolvendo o desvio assinado quando não fecha.
func ConferirSoma(campo string, soma, alvo, tolerancia float64) error {
	if desvio := soma - alvo; math.Abs(desvio) >= tolerancia {
		return &ErrSomaInvalida{Campo: campo, Desvio: desvio}
	}
	return nil
}
