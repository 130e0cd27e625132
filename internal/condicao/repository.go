// internal/condicao/repository.go
package condicao

import "gorm.io/gorm"

// Repository encapsula o acesso a dados das condições de pagamento.
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

// ListarPorProposta busca as condições de uma proposta em ordem de
// vencimento.
func (r *Repository) ListarPorProposta(propostaID uint) ([]Condicao, error) {
	var condicoes []Condicao
	err := r.DB.
		Where("proposta_id = ?", propostaID).
		Order("vencimento ASC").
		Find(&condicoes).Error
	return condicoes, err
}

// SubstituirPorProposta grava o conjunto inteiro de condições da
// proposta. Não há diff linha a linha: apaga e recria, sempre dentro
// da transação recebida.
func (r *Repository) SubstituirPorProposta(propostaID uint, condicoes []Condicao) error {
	if err := r.DB.Where("proposta_id = ?", propostaID).Delete(&Condicao{}).Error; err != nil {
		return err
	}
	if len(condicoes) == 0 {
		return nil
	}
	for i := range condicoes {
		condicoes[i].ID = 0
		condicoes[i].PropostaID = propostaID
	}
	return r.DB.Create(&condicoes).Error
}
