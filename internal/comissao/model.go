// internal/comissao/model.go
package comissao

import (
	"time"

	"gorm.io/gorm"

	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/rateio"
)

// LinhaComissao é a fatia da comissão total da proposta destinada a
// uma entidade (imobiliária, corretor, captador).
type LinhaComissao struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	PropostaID uint `gorm:"not null;index" json:"propostaId"`
	EntidadeID uint `gorm:"not null;index" json:"entidadeId"`

	rateio.Linha `gorm:"embedded"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&LinhaComissao{})
}
