// internal/tabelaprecos/fluxo.go
package tabelaprecos

import "time"

// ItemFluxoCalculado é o fluxo padrão derivado de um template sobre o
// preço de tabela de uma unidade. Nunca é persistido: é recalculado
// sempre que o preço ou o template mudam.
type ItemFluxoCalculado struct {
	Tipo               string    `json:"tipo"`
	Periodicidade      string    `json:"periodicidade"`
	QtdParcelas        int       `json:"qtdParcelas"`
	PercentualTotal    float64   `json:"percentualTotal"`
	PeriodicidadeMeses int       `json:"periodicidadeMeses"`
	PrimeiroVencimento time.Time `json:"primeiroVencimento"`
	ValorParcela       float64   `json:"valorParcela"`
	ValorTotal         float64   `json:"valorTotal"`
}

// RotuloPeriodicidade devolve o rótulo de exibição do intervalo.
func RotuloPeriodicidade(meses int) string {
	switch meses {
	case 0:
		return "Única"
	case 1:
		return "Mensal"
	case 2:
		return "Bimestral"
	case 3:
		return "Trimestral"
	case 6:
		return "Semestral"
	case 12:
		return "Anual"
	default:
		return "Outra"
	}
}

// GerarFluxoPadrao expande o template sobre o preço de tabela da
// unidade, já com os fatores de correção aplicados pelo chamador.
//
// Itens de classe semestral saem rotulados como INTERMEDIARIAS: os
// quadros de condição agrupam os dois sob o mesmo balde. É só troca de
// rótulo, sem efeito financeiro.
//
// Preço de tabela zero ou negativo produz o fluxo com valores zerados
// em vez de erro; quem decide se isso é salvável é o consumidor.
func GerarFluxoPadrao(precoTabela float64, itens []ItemFluxo) []ItemFluxoCalculado {
	fluxo := make([]ItemFluxoCalculado, 0, len(itens))
	for _, it := range itens {
		tipo := it.Tipo
		if tipo == TipoSemestral {
			tipo = TipoIntermediarias
		}

		qtd := it.QtdParcelas
		if qtd < 1 {
			qtd = 1
		}

		var valorTotal float64
		if precoTabela > 0 {
			valorTotal = precoTabela * it.PercentualTotal / 100
		}

		fluxo = append(fluxo, ItemFluxoCalculado{
			Tipo:               tipo,
			Periodicidade:      RotuloPeriodicidade(it.PeriodicidadeMeses),
			QtdParcelas:        qtd,
			PercentualTotal:    it.PercentualTotal,
			PeriodicidadeMeses: it.PeriodicidadeMeses,
			PrimeiroVencimento: it.PrimeiroVencimento,
			ValorParcela:       valorTotal / float64(qtd),
			ValorTotal:         valorTotal,
		})
	}
	return fluxo
}
