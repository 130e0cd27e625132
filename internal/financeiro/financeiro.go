// internal/financeiro/financeiro.go
package financeiro

import (
	"fmt"
	"math"
)

// Tolerâncias de fechamento usadas em toda a negociação.
// A assimetria é intencional: o rateio acumula arredondamento
// em mais campos do que as condições de pagamento.
const (
	ToleranciaValor  = 0.01 // condições e parcelas
	ToleranciaRateio = 0.05 // comissão e participação
)

// EhZero verifica fechamento monetário dentro da tolerância canônica.
func EhZero(x float64) bool {
	return math.Abs(x) < ToleranciaValor
}

// ParaPercentual converte um valor absoluto em percentual do total.
// Total zero devolve 0 para não propagar NaN pelos cálculos.
func ParaPercentual(valor, total float64) float64 {
	if total == 0 {
		return 0
	}
	return valor / total * 100
}

// ParaValor converte um percentual em valor absoluto sobre o total.
func ParaValor(percentual, total float64) float64 {
	return percentual / 100 * total
}

// Arredondar2 arredonda para 2 casas decimais. Serve apenas para
// exibição; o acúmulo interno usa sempre os valores sem arredondar.
func Arredondar2(x float64) float64 {
	return math.Round(x*100) / 100
}

// ErrNaoFechado indica que uma distribuição monetária não fecha com o
// alvo. Restante carrega o desvio com sinal: positivo falta, negativo
// excede.
type ErrNaoFechado struct {
	Restante float64
}

func (e *ErrNaoFechado) Error() string {
	if e.Restante > 0 {
		return fmt.Sprintf("distribuição incompleta: faltam R$ %.2f para fechar o valor", e.Restante)
	}
	return fmt.Sprintf("distribuição excede o valor em R$ %.2f", -e.Restante)
}
