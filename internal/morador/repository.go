package morador

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, m *Morador) error
	Listar(db *gorm.DB) ([]Morador, error)
	BuscarPorID(db *gorm.DB, id uint) (*Morador, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, m *Morador) error {
	return db.Create(m).Error
}

func (r *repositoryImpl) Listar(db *gorm.DB) ([]Morador, error) {
	var list []Morador
	err := db.Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Morador, error) {
	var m Morador
	err := db.First(&m, id).Error
	return &m, err
}
