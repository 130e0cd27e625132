// internal/comissao/engine.go
package comissao

import (
	"errors"

	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/financeiro"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/rateio"
)

// ErrLinhaInvalida é devolvido por edições fora do intervalo da lista.
var ErrLinhaInvalida = errors.New("linha de comissão inexistente")

// Rateio mantém as linhas de comissão de uma proposta sobre o valor
// total de comissão (pool). Cada edição mexe numa linha só; as demais
// nunca são rebalanceadas automaticamente.
type Rateio struct {
	Pool   float64
	Linhas []LinhaComissao
}

// NovoRateio cria um rateio vazio sobre o pool informado.
func NovoRateio(pool float64) *Rateio {
	return &Rateio{Pool: pool}
}

// CarregarRateio monta o rateio a partir de linhas já persistidas.
func CarregarRateio(pool float64, linhas []LinhaComissao) *Rateio {
	return &Rateio{Pool: pool, Linhas: linhas}
}

// Adicionar anexa uma linha para a entidade. A primeira linha de uma
// lista vazia assume sozinha: responsável e 100% do pool. As demais
// entram zeradas, preservando os percentuais existentes.
func (r *Rateio) Adicionar(entidadeID uint) *LinhaComissao {
	l := LinhaComissao{EntidadeID: entidadeID}
	if len(r.Linhas) == 0 {
		rateio.Assumir(&l.Linha, r.Pool)
	}
	r.Linhas = append(r.Linhas, l)
	return &r.Linhas[len(r.Linhas)-1]
}

// EditarPercentual recalcula o valor da linha i a partir do percentual.
func (r *Rateio) EditarPercentual(i int, percentual float64) error {
	if i < 0 || i >= len(r.Linhas) {
		return ErrLinhaInvalida
	}
	rateio.EditarPercentual(&r.Linhas[i].Linha, percentual, r.Pool)
	return nil
}

// EditarValor recalcula o percentual da linha i a partir do valor.
func (r *Rateio) EditarValor(i int, valor float64) error {
	if i < 0 || i >= len(r.Linhas) {
		return ErrLinhaInvalida
	}
	rateio.EditarValor(&r.Linhas[i].Linha, valor, r.Pool)
	return nil
}

// DefinirResponsavel marca a linha i como responsável e desmarca as
// demais na mesma operação: só existe um responsável por lista.
func (r *Rateio) DefinirResponsavel(i int) error {
	if i < 0 || i >= len(r.Linhas) {
		return ErrLinhaInvalida
	}
	for j := range r.Linhas {
		r.Linhas[j].Responsavel = j == i
	}
	return nil
}

// Remover tira a linha i preservando os percentuais das demais.
func (r *Rateio) Remover(i int) error {
	if i < 0 || i >= len(r.Linhas) {
		return ErrLinhaInvalida
	}
	r.Linhas = append(r.Linhas[:i], r.Linhas[i+1:]...)
	return nil
}

// Validar é o portão de salvamento do rateio: percentuais somando 100
// e valores somando o pool, ambos na tolerância de rateio, e um
// responsável marcado sempre que a lista não está vazia.
func (r *Rateio) Validar() error {
	if len(r.Linhas) == 0 {
		return nil
	}
	var somaPct, somaValor float64
	temResponsavel := false
	for i := range r.Linhas {
		somaPct += r.Linhas[i].Percentual
		somaValor += r.Linhas[i].Valor
		temResponsavel = temResponsavel || r.Linhas[i].Responsavel
	}
	if err := rateio.ConferirSoma("percentual", somaPct, 100, financeiro.ToleranciaRateio); err != nil {
		return err
	}
	if err := rateio.ConferirSoma("valor", somaValor, r.Pool, financeiro.ToleranciaRateio); err != nil {
		return err
	}
	if !temResponsavel {
		return rateio.ErrSemResponsavel
	}
	return nil
}
