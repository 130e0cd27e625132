// internal/tabelaprecos/model.go
package tabelaprecos

import (
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"
)

// Tipos de item do fluxo de pagamento.
const (
	TipoEntrada        = "ENTRADA"
	TipoMensal         = "MENSAL"
	TipoSemestral      = "SEMESTRAL"
	TipoIntermediarias = "INTERMEDIARIAS"
	TipoAnual          = "ANUAL"
	TipoChaves         = "CHAVES"
	TipoFinanciamento  = "FINANCIAMENTO"
	TipoOutros         = "OUTROS"
)

// TabelaPrecos guarda o valor do metro quadrado do empreendimento e o
// template de fluxo padrão usado para derivar o plano de pagamento.
type TabelaPrecos struct {
	ID                 uint    `gorm:"primaryKey" json:"id"`
	Nome               string  `gorm:"size:255;not null" json:"nome"`
	ValorMetroQuadrado float64 `gorm:"not null;default:0" json:"valorMetroQuadrado"`

	Itens []ItemFluxo `gorm:"foreignKey:TabelaPrecosID;constraint:OnDelete:CASCADE" json:"itens"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// ItemFluxo é uma linha do template de fluxo padrão de uma tabela.
type ItemFluxo struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	TabelaPrecosID uint   `gorm:"not null;index" json:"tabelaPrecosId"`
	Tipo           string `gorm:"size:50;not null" json:"tipo"`
	// Percentual do preço total coberto por este item, com 4 casas.
	PercentualTotal float64 `gorm:"type:numeric(8,4);not null" json:"percentualTotal"`
	QtdParcelas     int     `gorm:"not null;default:1" json:"qtdParcelas"`
	// 0 = pagamento único; senão 1/2/3/6/12 meses entre parcelas.
	PeriodicidadeMeses int       `gorm:"not null;default:0" json:"periodicidadeMeses"`
	PrimeiroVencimento time.Time `json:"primeiroVencimento"`
}

// Migrate cria as tabelas no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&TabelaPrecos{}, &ItemFluxo{})
}

// ValidarItens confere se o template soma 100% antes de ser usado.
// O desvio exato é devolvido na mensagem para ajuste do cadastro.
func ValidarItens(itens []ItemFluxo) error {
	var soma float64
	for _, it := range itens {
		soma += it.PercentualTotal
	}
	if desvio := soma - 100; math.Abs(desvio) >= 0.01 {
		return fmt.Errorf("template de fluxo soma %.4f%%, desvio de %+.4f frente a 100%%", soma, desvio)
	}
	return nil
}
