package instalador

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, i *Instalador) error
	Listar(db *gorm.DB) ([]Instalador, error)
	BuscarPorID(db *gorm.DB, id uint) (*Instalador, error)
	BuscarPorIDs(db *gorm.DB, ids []uint) ([]Instalador, error)
	Existe(db *gorm.DB, id uint) (bool, error)
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, i *Instalador) error {
	return db.Create(i).Error
}

func (r *repositoryImpl) Listar(db *gorm.DB) ([]Instalador, error) {
	var list []Instalador
	err := db.Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Instalador, error) {
	var i Instalador
	err := db.First(&i, id).Error
	return &i, err
}

func (r *repositoryImpl) BuscarPorIDs(db *gorm.DB, ids []uint) ([]Instalador, error) {
	var list []Instalador
	err := db.Where("id IN ?", ids).Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Existe(db *gorm.DB, id uint) (bool, error) {
	var count int64
	err := db.Model(&Instalador{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Instalador{}, id).Error
}
