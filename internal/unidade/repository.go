package unidade

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, u *Unidade) error
	ListarPorPredio(db *gorm.DB, predioID uint) ([]Unidade, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, u *Unidade) error {
	return db.Create(u).Error
}

func (r *repositoryImpl) ListarPorPredio(db *gorm.DB, predioID uint) ([]Unidade, error) {
	var list []Unidade
	err := db.Where("predio_id = ?", predioID).Preload("Itens").Find(&list).Error
	return list, err
}
