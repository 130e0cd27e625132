// internal/parcela/cronograma.go
package parcela

import (
	"sort"

	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/condicao"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/financeiro"
)

// Resequenciar ordena as parcelas por vencimento e renumera a
// sequência de 1 em diante. Sempre roda na fronteira de persistência.
func Resequenciar(parcelas []Parcela) {
	sort.SliceStable(parcelas, func(i, j int) bool {
		return parcelas[i].Vencimento.Before(parcelas[j].Vencimento)
	})
	for i := range parcelas {
		parcelas[i].Numero = i + 1
	}
}

// ValidarFechamento confere a soma das parcelas contra o valor da
// proposta. O desvio assinado volta no erro.
func ValidarFechamento(parcelas []Parcela, valorProposta float64) error {
	var soma float64
	for i := range parcelas {
		soma += parcelas[i].Valor
	}
	if restante := valorProposta - soma; !financeiro.EhZero(restante) {
		return &financeiro.ErrNaoFechado{Restante: restante}
	}
	return nil
}

// ExpandirDeCondicoes abre as condições do quadro em parcelas
// individuais, vencendo mês a mês a partir do vencimento da condição.
func ExpandirDeCondicoes(condicoes []condicao.Condicao) []Parcela {
	var parcelas []Parcela
	for _, c := range condicoes {
		qtd := c.QtdParcelas
		if qtd < 1 {
			qtd = 1
		}
		for i := 0; i < qtd; i++ {
			parcelas = append(parcelas, Parcela{
				Tipo:       CodigoTipo(c.Tipo),
				Vencimento: c.Vencimento.AddDate(0, i, 0),
				Valor:      c.ValorParcela,
			})
		}
	}
	Resequenciar(parcelas)
	return parcelas
}

// ReagruparCondicoes rederiva a visão de condições a partir das
// parcelas: runs consecutivas de mesmo tipo e mesmo valor viram uma
// condição com o vencimento da primeira. As parcelas são a fonte da
// verdade; a saída substitui o conjunto de condições da proposta.
func ReagruparCondicoes(parcelas []Parcela) []condicao.Condicao {
	ordenadas := make([]Parcela, len(parcelas))
	copy(ordenadas, parcelas)
	Resequenciar(ordenadas)

	var condicoes []condicao.Condicao
	for _, p := range ordenadas {
		n := len(condicoes)
		if n > 0 {
			ult := &condicoes[n-1]
			if ult.Tipo == TipoDoCodigo(p.Tipo) && ult.ValorParcela == p.Valor {
				ult.QtdParcelas++
				continue
			}
		}
		condicoes = append(condicoes, condicao.Condicao{
			Tipo:         TipoDoCodigo(p.Tipo),
			Vencimento:   p.Vencimento,
			QtdParcelas:  1,
			ValorParcela: p.Valor,
		})
	}
	return condicoes
}
