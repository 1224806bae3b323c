package empreendimento

import (
	"time"

	"github.com/MoradaViva/api-posvenda/internal/predio"
	"gorm.io/gorm"
)

// LimiteRiscoPadrao é o percentual usado quando o empreendimento não
// configurou um limite próprio.
const LimiteRiscoPadrao = 50

// Empreendimento é um projeto imobiliário entregue, raiz da árvore
// prédios → unidades → itens.
type Empreendimento struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome     string `json:"nome"`
	Endereco string `json:"endereco"`

	// Percentual [0,100] acima do qual o empreendimento é classificado como
	// RUIM; nil usa LimiteRiscoPadrao
	LimiteRisco *int `json:"limiteRisco,omitempty"`

	Predios []predio.Predio `gorm:"foreignKey:EmpreendimentoID" json:"predios,omitempty"`
}
