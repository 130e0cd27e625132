// internal/entidade/repository.go
package entidade

import "gorm.io/gorm"

// Repository encapsula o acesso ao diretório de entidades.
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Criar insere uma nova entidade.
func (r *Repository) Criar(e *Entidade) error {
	return r.DB.Create(e).Error
}

// BuscarPorID resolve uma entidade pelo ID.
func (r *Repository) BuscarPorID(id uint) (*Entidade, error) {
	var e Entidade
	if err := r.DB.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// ResolverNomes resolve de uma vez os nomes das entidades informadas,
// para exibição nas linhas de rateio e participação.
func (r *Repository) ResolverNomes(ids []uint) (map[uint]Entidade, error) {
	if len(ids) == 0 {
		return map[uint]Entidade{}, nil
	}
	var entidades []Entidade
	if err := r.DB.Where("id IN ?", ids).Find(&entidades).Error; err != nil {
		return nil, err
	}
	resolvidas := make(map[uint]Entidade, len(entidades))
	for _, e := range entidades {
		resolvidas[e.ID] = e
	}
	return resolvidas, nil
}

// ListarTodas retorna o diretório completo.
func (r *Repository) ListarTodas() ([]Entidade, error) {
	var entidades []Entidade
	err := r.DB.Order("nome ASC").Find(&entidades).Error
	return entidades, err
}
