package financeiro

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversaoIdaEVolta(t *testing.T) {
	// percent -> valor -> percent precisa ser idempotente dentro da
	// tolerância de exibição
	casos := []struct {
		valor float64
		total float64
	}{
		{40000, 200000},
		{16000, 200000},
		{0.01, 100},
		{333.33, 1000},
		{123456.78, 987654.32},
	}
	for _, c := range casos {
		pct := ParaPercentual(c.valor, c.total)
		volta := ParaValor(pct, c.total)
		assert.InDelta(t, c.valor, volta, ToleranciaValor,
			"ida e volta de %.2f sobre %.2f", c.valor, c.total)
	}
}

func TestParaPercentualTotalZero(t *testing.T) {
	assert.Equal(t, 0.0, ParaPercentual(500, 0))
}

func TestEhZero(t *testing.T) {
	assert.True(t, EhZero(0))
	assert.True(t, EhZero(0.009))
	assert.True(t, EhZero(-0.009))
	assert.False(t, EhZero(0.01))
	assert.False(t, EhZero(-0.02))
}

func TestArredondar2(t *testing.T) {
	assert.Equal(t, 33.33, Arredondar2(100.0/3.0))
	assert.Equal(t, 66.67, Arredondar2(200.0/3.0))
	assert.Equal(t, -0.5, Arredondar2(-0.499999999))
}

func TestErrNaoFechadoMensagem(t *testing.T) {
	falta := &ErrNaoFechado{Restante: 0.02}
	assert.Contains(t, falta.Error(), "0.02")
	assert.Contains(t, falta.Error(), "faltam")

	excede := &ErrNaoFechado{Restante: -150.55}
	assert.Contains(t, excede.Error(), "150.55")
	assert.Contains(t, excede.Error(), "excede")
}

func TestAcumuloSemArredondar(t *testing.T) {
	// dividir 100 em 3 partes sem arredondar fecha; com arredondamento
	// de exibição em cada parte, não
	total := 1000.0
	var soma float64
	for i := 0; i < 3; i++ {
		soma += ParaValor(100.0/3.0, total)
	}
	assert.True(t, math.Abs(soma-total) < ToleranciaValor)
}
