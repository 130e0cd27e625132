// internal/entidade/model.go
package entidade

import (
	"time"

	"gorm.io/gorm"
)

// Entidade é o registro do diretório de entidades: pessoas e empresas
// que aparecem nas linhas de comissão e participação. Para o motor
// financeiro os campos resolvidos são strings opacas de exibição.
type Entidade struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Nome      string `gorm:"size:255;not null" json:"nome"`
	Documento string `gorm:"size:20;not null" json:"documento"` // CPF ou CNPJ
	Tipo      string `gorm:"size:30;not null" json:"tipo"`      // ex.: "PF", "PJ", "IMOBILIARIA"

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Entidade{})
}
