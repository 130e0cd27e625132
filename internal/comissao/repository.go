// internal/comissao/repository.go
package comissao

import "gorm.io/gorm"

// Repository encapsula o acesso a dados das linhas de comissão.
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

// ListarPorProposta busca as linhas de comissão de uma proposta.
func (r *Repository) ListarPorProposta(propostaID uint) ([]LinhaComissao, error) {
	var linhas []LinhaComissao
	err := r.DB.
		Where("proposta_id = ?", propostaID).
		Order("id ASC").
		Find(&linhas).Error
	return linhas, err
}

// SubstituirPorProposta grava o rateio inteiro da proposta, sem diff
// linha a linha.
func (r *Repository) SubstituirPorProposta(propostaID uint, linhas []LinhaComissao) error {
	if err := r.DB.Where("proposta_id = ?", propostaID).Delete(&LinhaComissao{}).Error; err != nil {
		return err
	}
	if len(linhas) == 0 {
		return nil
	}
	for i := range linhas {
		linhas[i].ID = 0
		linhas[i].PropostaID = propostaID
	}
	return r.DB.Create(&linhas).Error
}

// RemoverUltimaEPersistir apaga a última linha restante e persiste o
// estado vazio na mesma operação, em vez de deixar uma edição pendente
// quando a lista é esvaziada pela interface.
func (r *Repository) RemoverUltimaEPersistir(propostaID uint) error {
	return r.DB.Where("proposta_id = ?", propostaID).Delete(&LinhaComissao{}).Error
}
