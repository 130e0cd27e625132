// internal/tabelaprecos/repository.go
package tabelaprecos

import "gorm.io/gorm"

// Repository encapsula o acesso a dados das tabelas de preço.
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Criar insere a tabela com seus itens de fluxo.
func (r *Repository) Criar(t *TabelaPrecos) error {
	return r.DB.Create(t).Error
}

// BuscarPorID retorna a tabela com os itens pré-carregados.
func (r *Repository) BuscarPorID(id uint) (*TabelaPrecos, error) {
	var t TabelaPrecos
	if err := r.DB.Preload("Itens").First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// ListarTodas retorna todas as tabelas com itens.
func (r *Repository) ListarTodas() ([]TabelaPrecos, error) {
	var tabelas []TabelaPrecos
	err := r.DB.Preload("Itens").Find(&tabelas).Error
	return tabelas, err
}

// SubstituirItens troca o template inteiro de uma tabela.
func (r *Repository) SubstituirItens(tabelaID uint, itens []ItemFluxo) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tabela_precos_id = ?", tabelaID).Delete(&ItemFluxo{}).Error; err != nil {
			return err
		}
		for i := range itens {
			itens[i].ID = 0
			itens[i].TabelaPrecosID = tabelaID
		}
		if len(itens) == 0 {
			return nil
		}
		return tx.Create(&itens).Error
	})
}
