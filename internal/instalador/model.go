package instalador

import (
	"time"

	"gorm.io/gorm"
)

// Instalador representa um prestador que instala itens e atende visitas técnicas
type Instalador struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	CPF      string `gorm:"uniqueIndex" json:"cpf"`
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
}
