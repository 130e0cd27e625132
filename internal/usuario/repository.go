package usuario

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) BuscarPorEmail(email string) (*Usuario, error) {
	var u Usuario
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) BuscarPorID(id uint) (*Usuario, error) {
	var u Usuario
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) Salvar(u *Usuario) error {
	return r.DB.Save(u).Error
}

func (r *Repository) ListarTodos() ([]Usuario, error) {
	var usuarios []Usuario
	err := r.DB.Order("nome ASC").Find(&usuarios).Error
	return usuarios, err
}
