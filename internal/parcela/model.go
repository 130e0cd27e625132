// internal/parcela/model.go
package parcela

import (
	"time"

	"gorm.io/gorm"

	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/tabelaprecos"
)

// Parcela é um evento de pagamento individual, datado e valorado.
// É o grão fino do cronograma: editável de forma independente das
// condições, que são rederivadas a partir dela.
type Parcela struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PropostaID uint      `gorm:"not null;index" json:"propostaId"`
	Tipo       string    `gorm:"size:1;not null" json:"tipo"` // código de uma letra
	Vencimento time.Time `gorm:"not null" json:"vencimento"`
	Valor      float64   `gorm:"not null;default:0" json:"valor"`
	// Sequência dentro da proposta; recalculada ao salvar, nunca
	// definida pelo usuário.
	Numero int `gorm:"not null;default:0" json:"numero"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Parcela{})
}

// Códigos de uma letra usados na grade de parcelas.
var codigoPorTipo = map[string]string{
	tabelaprecos.TipoEntrada:        "E",
	tabelaprecos.TipoMensal:         "M",
	tabelaprecos.TipoIntermediarias: "I",
	tabelaprecos.TipoSemestral:      "I",
	tabelaprecos.TipoAnual:          "A",
	tabelaprecos.TipoChaves:         "C",
	tabelaprecos.TipoFinanciamento:  "F",
}

var tipoPorCodigo = map[string]string{
	"E": tabelaprecos.TipoEntrada,
	"M": tabelaprecos.TipoMensal,
	"I": tabelaprecos.TipoIntermediarias,
	"A": tabelaprecos.TipoAnual,
	"C": tabelaprecos.TipoChaves,
	"F": tabelaprecos.TipoFinanciamento,
}

// CodigoTipo converte o tipo de condição no código de uma letra.
func CodigoTipo(tipo string) string {
	if c, ok := codigoPorTipo[tipo]; ok {
		return c
	}
	return "O"
}

// TipoDoCodigo converte o código de uma letra de volta no tipo de balde.
func TipoDoCodigo(codigo string) string {
	if t, ok := tipoPorCodigo[codigo]; ok {
		return t
	}
	return tabelaprecos.TipoOutros
}
