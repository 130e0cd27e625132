// internal/parcela/repository.go
package parcela

import "gorm.io/gorm"

// Repository encapsula o acesso a dados das parcelas.
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// WithDB retorna uma cópia do repo usando um *gorm.DB específico (ex.: tx).
func (r *Repository) WithDB(db *gorm.DB) *Repository {
	if db == nil {
		db = r.DB
	}
	return &Repository{DB: db}
}

// ListarPorProposta busca as parcelas em ordem de sequência.
func (r *Repository) ListarPorProposta(propostaID uint) ([]Parcela, error) {
	var parcelas []Parcela
	err := r.DB.
		Where("proposta_id = ?", propostaID).
		Order("numero ASC").
		Find(&parcelas).Error
	return parcelas, err
}

// SubstituirPorProposta grava o cronograma inteiro da proposta já
// resequenciado. Apaga e recria; deve rodar dentro da transação que
// também rederiva as condições.
func (r *Repository) SubstituirPorProposta(propostaID uint, parcelas []Parcela) error {
	if err := r.DB.Where("proposta_id = ?", propostaID).Delete(&Parcela{}).Error; err != nil {
		return err
	}
	if len(parcelas) == 0 {
		return nil
	}
	Resequenciar(parcelas)
	for i := range parcelas {
		parcelas[i].ID = 0
		parcelas[i].PropostaID = propostaID
	}
	return r.DB.Create(&parcelas).Error
}
