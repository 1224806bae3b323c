package predio

import (
	"time"

	"github.com/MoradaViva/api-posvenda/internal/unidade"
	"gorm.io/gorm"
)

// Predio é uma torre/bloco de um empreendimento
type Predio struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome             string `json:"nome"`
	EmpreendimentoID uint   `json:"empreendimentoId"`

	Unidades []unidade.Unidade `gorm:"foreignKey:PredioID" json:"unidades,omitempty"`
}
