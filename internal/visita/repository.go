package visita

import (
	"gorm.io/gorm"
)

type Repository interface {
	Criar(db *gorm.DB, v *Visita) error
	BuscarPorFeedback(db *gorm.DB, feedbackID uint) (*Visita, error)
	ExistePorFeedback(db *gorm.DB, feedbackID uint) (bool, error)
	AtualizarConfirmacao(db *gorm.DB, id uint, confirmada bool) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, v *Visita) error {
	return db.Create(v).Error
}

func (r *repositoryImpl) BuscarPorFeedback(db *gorm.DB, feedbackID uint) (*Visita, error) {
	var v Visita
	err := db.
		Preload("Instaladores").
		Where("feedback_id = ?", feedbackID).
		First(&v).Error
	return &v, err
}

func (r *repositoryImpl) ExistePorFeedback(db *gorm.DB, feedbackID uint) (bool, error) {
	var count int64
	err := db.Model(&Visita{}).Where("feedback_id = ?", feedbackID).Count(&count).Error
	return count > 0, err
}

func (r *repositoryImpl) AtualizarConfirmacao(db *gorm.DB, id uint, confirmada bool) error {
	return db.Model(&Visita{}).Where("id = ?", id).Update("confirmada", confirmada).Error
}
