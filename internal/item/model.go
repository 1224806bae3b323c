package item

import (
	"time"

	"github.com/MoradaViva/api-posvenda/internal/feedback"
	"gorm.io/gorm"
)

// Item é um item instalado em uma unidade (louça, esquadria, piso...)
type Item struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome      string `json:"nome"`
	Categoria string `json:"categoria"`
	UnidadeID uint   `json:"unidadeId"`

	Feedbacks []feedback.Feedback `gorm:"foreignKey:ItemID" json:"feedbacks,omitempty"`
}
