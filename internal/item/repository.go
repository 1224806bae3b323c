package item

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, i *Item) error
	ListarPorUnidade(db *gorm.DB, unidadeID uint) ([]Item, error)
	BuscarPorID(db *gorm.DB, id uint) (*Item, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, i *Item) error {
	return db.Create(i).Error
}

func (r *repositoryImpl) ListarPorUnidade(db *gorm.DB, unidadeID uint) ([]Item, error) {
	var list []Item
	err := db.Where("unidade_id = ?", unidadeID).Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Item, error) {
	var i Item
	err := db.Preload("Feedbacks").First(&i, id).Error
	return &i, err
}
