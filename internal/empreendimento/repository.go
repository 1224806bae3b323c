package empreendimento

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, e *Empreendimento) error
	Listar(db *gorm.DB) ([]Empreendimento, error)
	BuscarPorID(db *gorm.DB, id uint) (*Empreendimento, error)
	BuscarArvore(db *gorm.DB, id uint) (*Empreendimento, error)
	AtualizarLimiteRisco(db *gorm.DB, id uint, limite int) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, e *Empreendimento) error {
	return db.Create(e).Error
}

func (r *repositoryImpl) Listar(db *gorm.DB) ([]Empreendimento, error) {
	var list []Empreendimento
	err := db.Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Empreendimento, error) {
	var e Empreendimento
	err := db.First(&e, id).Error
	return &e, err
}

// BuscarArvore carrega o empreendimento com a árvore completa até os
// feedbacks de cada item; é a leitura usada pelo cálculo de saúde.
func (r *repositoryImpl) BuscarArvore(db *gorm.DB, id uint) (*Empreendimento, error) {
	var e Empreendimento
	err := db.
		Preload("Predios").
		Preload("Predios.Unidades").
		Preload("Predios.Unidades.Itens").
		Preload("Predios.Unidades.Itens.Feedbacks").
		First(&e, id).Error
	return &e, err
}

func (r *repositoryImpl) AtualizarLimiteRisco(db *gorm.DB, id uint, limite int) error {
	res := db.Model(&Empreendimento{}).Where("id = ?", id).Update("limite_risco", limite)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
