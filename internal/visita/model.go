package visita

import (
	"time"

	"github.com/MoradaViva/api-posvenda/internal/instalador"
)

// Visita é a inspeção técnica agendada para um feedback. A relação é 1:1 e o
// uniqueIndex em FeedbackID é o que garante no banco que um feedback nunca
// acumula duas visitas, mesmo sob requisições concorrentes.
type Visita struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	FeedbackID     uint      `gorm:"uniqueIndex" json:"feedbackId"`
	Data           time.Time `json:"data"`
	DuracaoMinutos int       `json:"duracaoMinutos"`
	Confirmada     bool      `json:"confirmada"`

	// Encarregados escalados para a visita
	Instaladores []instalador.Instalador `gorm:"many2many:visita_instaladores" json:"instaladores"`
}
