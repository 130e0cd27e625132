// internal/condicao/quadro.go
package condicao

import (
	"errors"
	"time"

	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/financeiro"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/tabelaprecos"
)

// Situação do quadro frente ao valor alvo.
const (
	SituacaoFechado = "FECHADO"
	SituacaoFalta   = "FALTA"
	SituacaoExcede  = "EXCEDE"
)

// TiposQuadro são os baldes fixos de exibição, nesta ordem.
var TiposQuadro = []string{
	tabelaprecos.TipoEntrada,
	tabelaprecos.TipoMensal,
	tabelaprecos.TipoIntermediarias,
	tabelaprecos.TipoAnual,
	tabelaprecos.TipoChaves,
	tabelaprecos.TipoFinanciamento,
}

// ErrCondicaoNaoEncontrada é devolvido por edições sobre IDs inexistentes.
var ErrCondicaoNaoEncontrada = errors.New("condição não encontrada no quadro")

// Quadro mantém as condições de uma proposta em memória durante a
// negociação, recalculando o total distribuído e o restante frente ao
// valor alvo a cada mudança.
type Quadro struct {
	ValorAlvo float64
	Condicoes []Condicao

	proxID uint // ids provisórios para linhas ainda não persistidas
}

// NovoQuadro cria um quadro vazio sobre o valor alvo informado.
func NovoQuadro(valorAlvo float64) *Quadro {
	return &Quadro{ValorAlvo: valorAlvo}
}

// CarregarQuadro monta o quadro a partir de condições já persistidas.
func CarregarQuadro(valorAlvo float64, condicoes []Condicao) *Quadro {
	q := NovoQuadro(valorAlvo)
	q.Condicoes = append(q.Condicoes, condicoes...)
	for _, c := range q.Condicoes {
		if c.ID > q.proxID {
			q.proxID = c.ID
		}
	}
	return q
}

// Adicionar anexa ao balde uma condição zerada de parcela única
// vencendo hoje, pronta para edição.
func (q *Quadro) Adicionar(tipo string, hoje time.Time) *Condicao {
	q.proxID++
	q.Condicoes = append(q.Condicoes, Condicao{
		ID:          q.proxID,
		Tipo:        tipo,
		Vencimento:  hoje,
		QtdParcelas: 1,
	})
	return &q.Condicoes[len(q.Condicoes)-1]
}

// Atualizar substitui os campos editáveis de uma condição. As linhas
// são independentes: nenhuma outra é recalculada.
func (q *Quadro) Atualizar(id uint, tipo string, vencimento time.Time, qtdParcelas int, valorParcela float64) error {
	for i := range q.Condicoes {
		if q.Condicoes[i].ID == id {
			q.Condicoes[i].Tipo = tipo
			q.Condicoes[i].Vencimento = vencimento
			q.Condicoes[i].QtdParcelas = qtdParcelas
			q.Condicoes[i].ValorParcela = valorParcela
			return nil
		}
	}
	return ErrCondicaoNaoEncontrada
}

// Remover tira a condição do quadro.
func (q *Quadro) Remover(id uint) error {
	for i := range q.Condicoes {
		if q.Condicoes[i].ID == id {
			q.Condicoes = append(q.Condicoes[:i], q.Condicoes[i+1:]...)
			return nil
		}
	}
	return ErrCondicaoNaoEncontrada
}

// RestaurarPadrao descarta a negociação e volta o quadro para o fluxo
// padrão da tabela, realinhando o valor alvo com o preço de tabela.
func (q *Quadro) RestaurarPadrao(precoTabela float64, itens []tabelaprecos.ItemFluxo) {
	q.ValorAlvo = precoTabela
	q.Condicoes = q.Condicoes[:0]
	for _, f := range tabelaprecos.GerarFluxoPadrao(precoTabela, itens) {
		q.proxID++
		q.Condicoes = append(q.Condicoes, Condicao{
			ID:           q.proxID,
			Tipo:         f.Tipo,
			Vencimento:   f.PrimeiroVencimento,
			QtdParcelas:  f.QtdParcelas,
			ValorParcela: f.ValorParcela,
		})
	}
}

// TotalDistribuido soma o valor coberto por todas as condições.
func (q *Quadro) TotalDistribuido() float64 {
	var total float64
	for i := range q.Condicoes {
		total += q.Condicoes[i].ValorTotal()
	}
	return total
}

// Restante é quanto falta (positivo) ou sobra (negativo) para fechar.
func (q *Quadro) Restante() float64 {
	return q.ValorAlvo - q.TotalDistribuido()
}

// Situacao classifica o quadro frente ao valor alvo.
func (q *Quadro) Situacao() string {
	restante := q.Restante()
	switch {
	case financeiro.EhZero(restante):
		return SituacaoFechado
	case restante > 0:
		return SituacaoFalta
	default:
		return SituacaoExcede
	}
}

// ValidarFechamento é o portão de salvamento: só fecha exato. Qualquer
// desvio volta com o restante assinado para o negociador ajustar;
// nunca é corrigido automaticamente.
func (q *Quadro) ValidarFechamento() error {
	if restante := q.Restante(); !financeiro.EhZero(restante) {
		return &financeiro.ErrNaoFechado{Restante: restante}
	}
	return nil
}

// PorTipo devolve as condições agrupadas nos baldes fixos do quadro.
// Tipos fora do conjunto fechado caem no balde OUTROS.
func (q *Quadro) PorTipo() map[string][]Condicao {
	baldes := make(map[string][]Condicao, len(TiposQuadro)+1)
	conhecido := make(map[string]bool, len(TiposQuadro))
	for _, t := range TiposQuadro {
		conhecido[t] = true
	}
	for _, c := range q.Condicoes {
		t := c.Tipo
		if !conhecido[t] {
			t = tabelaprecos.TipoOutros
		}
		baldes[t] = append(baldes[t], c)
	}
	return baldes
}
