package feedback

import (
	"strings"
	"time"

	"github.com/MoradaViva/api-posvenda/internal/instalador"
	"github.com/MoradaViva/api-posvenda/internal/morador"
	"github.com/MoradaViva/api-posvenda/internal/visita"
	"gorm.io/gorm"
)

// Status possíveis de um feedback. FECHADO é terminal no fluxo normal, mas a
// transição EM_ANALISE é permissiva e aceita reabrir um feedback fechado.
const (
	StatusAberto             = "ABERTO"
	StatusEmAnalise          = "EM_ANALISE"
	StatusVisitaAgendada     = "VISITA_AGENDADA"
	StatusAguardandoFeedback = "AGUARDANDO_FEEDBACK"
	StatusFechado            = "FECHADO"
)

// tamanho máximo do campo Problema após normalização
const tamanhoMaxProblema = 20

// Feedback representa uma reclamação de defeito aberta por um morador contra
// um item instalado na sua unidade.
type Feedback struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Problema  string `gorm:"size:20" json:"problema"`
	Descricao string `json:"descricao"`
	Status    string `gorm:"default:ABERTO" json:"status"`

	MoradorID uint            `json:"moradorId"`
	Morador   morador.Morador `gorm:"foreignKey:MoradorID" json:"morador"`
	ItemID    uint            `json:"itemId"`

	CustoReparo  *float64               `json:"custoReparo,omitempty"`
	InstaladorID *uint                  `json:"instaladorId,omitempty"`
	Instalador   *instalador.Instalador `gorm:"foreignKey:InstaladorID" json:"instalador,omitempty"`

	// Relação 1-1 com Visita
	Visita *visita.Visita `gorm:"foreignKey:FeedbackID" json:"visita,omitempty"`

	// Preenchidos no fechamento
	AvaliacaoPositiva *bool      `json:"avaliacaoPositiva,omitempty"`
	ComentarioMorador *string    `json:"comentarioMorador,omitempty"`
	DataConclusao     *time.Time `json:"dataConclusao,omitempty"`
}

// NormalizarProblema padroniza a categoria do problema: maiúsculas, sem
// espaços nas pontas, truncada em 20 caracteres.
func NormalizarProblema(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	runes := []rune(s)
	if len(runes) > tamanhoMaxProblema {
		return string(runes[:tamanhoMaxProblema])
	}
	return s
}
