// internal/condicao/model.go
package condicao

import (
	"time"

	"gorm.io/gorm"
)

// Condicao é uma linha do plano de pagamento negociado de uma
// proposta, agrupada por tipo nos baldes do quadro.
type Condicao struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PropostaID   uint      `gorm:"not null;index" json:"propostaId"`
	Tipo         string    `gorm:"size:50;not null" json:"tipo"`
	Vencimento   time.Time `json:"vencimento"`
	QtdParcelas  int       `gorm:"not null;default:1" json:"qtdParcelas"`
	ValorParcela float64   `gorm:"not null;default:0" json:"valorParcela"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ValorTotal é o valor coberto pela condição inteira.
func (c *Condicao) ValorTotal() float64 {
	return c.ValorParcela * float64(c.QtdParcelas)
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Condicao{})
}
