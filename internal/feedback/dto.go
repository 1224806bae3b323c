package feedback

import (
	"encoding/json"
	"fmt"
	"time"
)

// AtualizarStatusRequest é a requisição de transição de status. O payload em
// Data varia conforme o StatusFlag e só é decodificado no ramo correspondente,
// de modo que cada transição valida exatamente os campos que exige.
type AtualizarStatusRequest struct {
	StatusFlag string          `json:"statusFlag"`
	Data       json.RawMessage `json:"data,omitempty"`
}

// DadosVisitaAgendada é o payload exigido pela transição VISITA_AGENDADA.
type DadosVisitaAgendada struct {
	Data           time.Time `json:"date"`
	DuracaoMinutos int       `json:"duration"`
	EncarregadosID []uint    `json:"foremen_id"`
	CustoReparo    *float64  `json:"repairCost,omitempty"`
	InstaladorID   *uint     `json:"id_installer,omitempty"`
}

func (d *DadosVisitaAgendada) Validar() error {
	if d.Data.IsZero() {
		return fmt.Errorf("%w: o campo 'date' é obrigatório", ErrDadosInvalidos)
	}
	if d.DuracaoMinutos <= 0 {
		return fmt.Errorf("%w: a duração da visita deve ser positiva", ErrDadosInvalidos)
	}
	if len(d.EncarregadosID) == 0 {
		return fmt.Errorf("%w: a visita exige ao menos um encarregado", ErrDadosInvalidos)
	}
	if d.CustoReparo != nil && *d.CustoReparo < 0 {
		return fmt.Errorf("%w: o custo de reparo não pode ser negativo", ErrDadosInvalidos)
	}
	return nil
}

// DadosAguardandoFeedback é o payload da transição AGUARDANDO_FEEDBACK.
type DadosAguardandoFeedback struct {
	ConfirmarVisita bool `json:"confirm_visit"`
}

// DadosFechado é o payload da transição FECHADO.
type DadosFechado struct {
	Gostou     bool    `json:"liked"`
	Comentario *string `json:"comment,omitempty"`
}

// decodificarDados desserializa o payload do ramo; payload ausente é erro nos
// ramos que exigem dados.
func decodificarDados(raw json.RawMessage, destino interface{}) error {
	if len(raw) == 0 {
		return fmt.Errorf("%w: o campo 'data' é obrigatório para esta transição", ErrDadosInvalidos)
	}
	if err := json.Unmarshal(raw, destino); err != nil {
		return fmt.Errorf("%w: %v", ErrDadosInvalidos, err)
	}
	return nil
}
