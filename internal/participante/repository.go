// internal/participante/repository.go
package participante

import "gorm.io/gorm"

// Repository encapsula o acesso a dados dos participantes.
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

// ListarPorProposta busca os participantes por grupo econômico.
func (r *Repository) ListarPorProposta(propostaID uint) ([]Participante, error) {
	var linhas []Participante
	err := r.DB.
		Where("proposta_id = ?", propostaID).
		Order("grupo ASC, id ASC").
		Find(&linhas).Error
	return linhas, err
}

// SubstituirPorProposta grava o conjunto inteiro de participantes da
// proposta, já compactado em grupos contíguos.
func (r *Repository) SubstituirPorProposta(propostaID uint, linhas []Participante) error {
	if err := r.DB.Where("proposta_id = ?", propostaID).Delete(&Participante{}).Error; err != nil {
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

// RemoverUltimoEPersistir apaga o último participante restante e
// persiste o estado vazio na mesma operação.
func (r *Repository) RemoverUltimoEPersistir(propostaID uint) error {
	return r.DB.Where("proposta_id = ?", propostaID).Delete(&Participante{}).Error
}
