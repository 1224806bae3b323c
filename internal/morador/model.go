package morador

import (
	"time"

	"gorm.io/gorm"
)

// Morador representa um residente de uma unidade entregue; é o dono dos
// feedbacks que abre e o destinatário das notificações de mudança de status.
type Morador struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome      string `json:"nome"`
	Email     string `gorm:"uniqueIndex" json:"email"`
	Telefone  string `json:"telefone"`
	UnidadeID *uint  `json:"unidadeId,omitempty"`
}
