// internal/participante/model.go
package participante

import (
	"time"

	"gorm.io/gorm"
)

// Tipos de participação, em ordem de prioridade de exibição.
const (
	TipoComprador   = "COMPRADOR"
	TipoCoComprador = "CO_COMPRADOR"
	TipoConjuge     = "CONJUGE"
	TipoFiador      = "FIADOR"
	TipoProcurador  = "PROCURADOR"
)

var prioridadeTipo = map[string]int{
	TipoComprador:   1,
	TipoCoComprador: 2,
	TipoConjuge:     3,
	TipoFiador:      4,
	TipoProcurador:  5,
}

// Participante vincula uma entidade à proposta com um percentual de
// participação na compra, dentro de um grupo econômico.
type Participante struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	PropostaID uint `gorm:"not null;index" json:"propostaId"`
	EntidadeID uint `gorm:"not null;index" json:"entidadeId"`

	TipoParticipacao string  `gorm:"size:30;not null" json:"tipoParticipacao"`
	Percentual       float64 `gorm:"not null;default:0" json:"percentual"`
	Responsavel      bool    `gorm:"not null;default:false" json:"responsavel"`
	// Grupo econômico (comprador + cônjuge + fiador...). Mantido
	// contíguo em 1..N: remoções e reagrupamentos compactam.
	Grupo int `gorm:"not null;default:1" json:"grupo"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Participante{})
}
