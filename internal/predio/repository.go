package predio

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, p *Predio) error
	ListarPorEmpreendimento(db *gorm.DB, empreendimentoID uint) ([]Predio, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, p *Predio) error {
	return db.Create(p).Error
}

func (r *repositoryImpl) ListarPorEmpreendimento(db *gorm.DB, empreendimentoID uint) ([]Predio, error) {
	var list []Predio
	err := db.Where("empreendimento_id = ?", empreendimentoID).Preload("Unidades").Find(&list).Error
	return list, err
}
