package feedback

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, f *Feedback) error
	BuscarPorID(db *gorm.DB, id uint) (*Feedback, error)
	BuscarComMorador(db *gorm.DB, id uint) (*Feedback, error)
	ListarPorItem(db *gorm.DB, itemID uint) ([]Feedback, error)
	AtualizarCampos(db *gorm.DB, id uint, campos map[string]interface{}) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, f *Feedback) error {
	return db.Create(f).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Feedback, error) {
	var f Feedback
	err := db.
		Preload("Morador").
		Preload("Instalador").
		Preload("Visita").
		Preload("Visita.Instaladores").
		First(&f, id).Error
	return &f, err
}

// BuscarComMorador carrega o feedback com o morador responsável; é a leitura
// feita no início de toda transição de status.
func (r *repositoryImpl) BuscarComMorador(db *gorm.DB, id uint) (*Feedback, error) {
	var f Feedback
	err := db.
		Preload("Morador").
		First(&f, id).Error
	return &f, err
}

func (r *repositoryImpl) ListarPorItem(db *gorm.DB, itemID uint) ([]Feedback, error) {
	var list []Feedback
	err := db.
		Where("item_id = ?", itemID).
		Preload("Visita").
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) AtualizarCampos(db *gorm.DB, id uint, campos map[string]interface{}) error {
	return db.Model(&Feedback{}).Where("id = ?", id).Updates(campos).Error
}
