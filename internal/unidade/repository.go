// internal/unidade/repository.go
package unidade

import "gorm.io/gorm"

// Repository encapsula o acesso a dados das unidades.
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Criar insere uma nova unidade.
func (r *Repository) Criar(u *Unidade) error {
	return r.DB.Create(u).Error
}

// BuscarPorID retorna uma unidade pelo ID.
func (r *Repository) BuscarPorID(id uint) (*Unidade, error) {
	var u Unidade
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// ListarPorTabela retorna as unidades vinculadas a uma tabela de preços.
func (r *Repository) ListarPorTabela(tabelaID uint) ([]Unidade, error) {
	var unidades []Unidade
	err := r.DB.Where("tabela_precos_id = ?", tabelaID).Find(&unidades).Error
	return unidades, err
}

// Reservar marca a unidade como reservada para uma proposta.
func (r *Repository) Reservar(id uint) error {
	return r.DB.Model(&Unidade{}).Where("id = ?", id).Update("reservada", true).Error
}

// Liberar devolve a unidade ao estoque; chamado quando a proposta que
// a reservava é reprovada ou cancelada.
func (r *Repository) Liberar(id uint) error {
	return r.DB.Model(&Unidade{}).Where("id = ?", id).Update("reservada", false).Error
}
