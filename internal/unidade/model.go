package unidade

import (
	"time"

	"github.com/MoradaViva/api-posvenda/internal/item"
	"gorm.io/gorm"
)

// Unidade é um apartamento/casa dentro de um prédio
type Unidade struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Identificador string `json:"identificador"`
	PredioID      uint   `json:"predioId"`

	Itens []item.Item `gorm:"foreignKey:UnidadeID" json:"itens,omitempty"`
}
