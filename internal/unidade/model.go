// internal/unidade/model.go
package unidade

import (
	"time"

	"gorm.io/gorm"
)

// Unidade é uma unidade vendável de um bloco do empreendimento.
type Unidade struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Identificador  string `gorm:"size:50;not null" json:"identificador"`
	Bloco          string `gorm:"size:50" json:"bloco"`
	TabelaPrecosID uint   `gorm:"not null;index" json:"tabelaPrecosId"`

	AreaM2 float64 `gorm:"not null;default:0" json:"areaM2"`
	// Fator combinado de andar e posição já consolidado pelo cadastro.
	FatorCorrecao float64 `gorm:"not null;default:1" json:"fatorCorrecao"`

	Reservada bool `gorm:"not null;default:false" json:"reservada"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PrecoTabela calcula o preço da unidade sobre o valor do metro
// quadrado da tabela, com o fator de correção aplicado.
func (u *Unidade) PrecoTabela(valorMetroQuadrado float64) float64 {
	fator := u.FatorCorrecao
	if fator <= 0 {
		fator = 1
	}
	return u.AreaM2 * valorMetroQuadrado * fator
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Unidade{})
}
