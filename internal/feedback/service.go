package feedback

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/MoradaViva/api-posvenda/internal/instalador"
	"github.com/MoradaViva/api-posvenda/internal/notificacao"
	"github.com/MoradaViva/api-posvenda/internal/visita"
	"gorm.io/gorm"
)

// Service é o motor de transições de status de um feedback. Cada transição
// valida o payload do ramo, aplica as escritas (em transação quando há mais de
// uma) e dispara a notificação ao morador depois do commit.
type Service struct {
	DB           *gorm.DB
	Feedbacks    Repository
	Visitas      visita.Repository
	Instaladores instalador.Repository
	Notificador  notificacao.Notificador
}

func NewService(db *gorm.DB, n notificacao.Notificador) *Service {
	return &Service{
		DB:           db,
		Feedbacks:    NewRepository(),
		Visitas:      visita.NewRepository(),
		Instaladores: instalador.NewRepository(),
		Notificador:  n,
	}
}

// AtualizarStatus aplica uma transição ao feedback indicado e devolve a
// mensagem de confirmação do ramo executado.
func (s *Service) AtualizarStatus(feedbackID uint, req AtualizarStatusRequest) (string, error) {
	fb, err := s.Feedbacks.BuscarComMorador(s.DB, feedbackID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrResponsavelNaoEncontrado
		}
		return "", err
	}
	if fb.Morador.ID == 0 {
		return "", ErrResponsavelNaoEncontrado
	}

	switch req.StatusFlag {
	case StatusEmAnalise:
		return s.aplicarEmAnalise(fb)

	case StatusVisitaAgendada:
		var dados DadosVisitaAgendada
		if err := decodificarDados(req.Data, &dados); err != nil {
			return "", err
		}
		if err := dados.Validar(); err != nil {
			return "", err
		}
		return s.aplicarVisitaAgendada(fb, dados)

	case StatusAguardandoFeedback:
		var dados DadosAguardandoFeedback
		if err := decodificarDados(req.Data, &dados); err != nil {
			return "", err
		}
		return s.aplicarAguardandoFeedback(fb, dados)

	case StatusFechado:
		var dados DadosFechado
		if err := decodificarDados(req.Data, &dados); err != nil {
			return "", err
		}
		return s.aplicarFechado(fb, dados)

	default:
		return "", ErrStatusInvalido
	}
}

// aplicarEmAnalise não impõe precondição de estado: qualquer feedback pode
// voltar para análise, inclusive um já fechado. Ao reabrir, DataConclusao é
// limpa para manter o invariante "conclusão preenchida somente em FECHADO".
func (s *Service) aplicarEmAnalise(fb *Feedback) (string, error) {
	campos := map[string]interface{}{"status": StatusEmAnalise}
	if fb.DataConclusao != nil {
		campos["data_conclusao"] = nil
		campos["avaliacao_positiva"] = nil
		campos["comentario_morador"] = nil
	}
	if err := s.Feedbacks.AtualizarCampos(s.DB, fb.ID, campos); err != nil {
		return "", err
	}

	s.notificar(fb, StatusEmAnalise, "")
	return "Feedback em análise.", nil
}

func (s *Service) aplicarVisitaAgendada(fb *Feedback, dados DadosVisitaAgendada) (string, error) {
	if dados.InstaladorID != nil {
		existe, err := s.Instaladores.Existe(s.DB, *dados.InstaladorID)
		if err != nil {
			return "", err
		}
		if !existe {
			return "", ErrInstaladorNaoEncontrado
		}
	}

	encarregados, err := s.Instaladores.BuscarPorIDs(s.DB, dados.EncarregadosID)
	if err != nil {
		return "", err
	}
	if len(encarregados) != len(dados.EncarregadosID) {
		return "", ErrInstaladorNaoEncontrado
	}

	// Visita e atualização do feedback precisam persistir juntas
	tx := s.DB.Begin()
	if tx.Error != nil {
		return "", tx.Error
	}

	jaExiste, err := s.Visitas.ExistePorFeedback(tx, fb.ID)
	if err != nil {
		tx.Rollback()
		return "", err
	}
	if jaExiste {
		tx.Rollback()
		return "", ErrVisitaJaAgendada
	}

	v := visita.Visita{
		FeedbackID:     fb.ID,
		Data:           dados.Data,
		DuracaoMinutos: dados.DuracaoMinutos,
		Instaladores:   encarregados,
	}
	if err := s.Visitas.Criar(tx, &v); err != nil {
		tx.Rollback()
		// duas agendas concorrentes: a segunda cai no índice único
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", ErrVisitaJaAgendada
		}
		return "", err
	}

	campos := map[string]interface{}{"status": StatusVisitaAgendada}
	if dados.CustoReparo != nil {
		campos["custo_reparo"] = *dados.CustoReparo
	}
	if dados.InstaladorID != nil {
		campos["instalador_id"] = *dados.InstaladorID
	}
	if err := s.Feedbacks.AtualizarCampos(tx, fb.ID, campos); err != nil {
		tx.Rollback()
		return "", err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return "", err
	}

	info := fmt.Sprintf("Visita agendada para %s, duração de %d minutos",
		dados.Data.Format("02/01/2006 15:04"), dados.DuracaoMinutos)
	s.notificar(fb, StatusVisitaAgendada, info)
	return "Visita técnica agendada para o feedback.", nil
}

func (s *Service) aplicarAguardandoFeedback(fb *Feedback, dados DadosAguardandoFeedback) (string, error) {
	v, err := s.Visitas.BuscarPorFeedback(s.DB, fb.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrVisitaNaoEncontrada
		}
		return "", err
	}

	tx := s.DB.Begin()
	if tx.Error != nil {
		return "", tx.Error
	}

	if err := s.Visitas.AtualizarConfirmacao(tx, v.ID, dados.ConfirmarVisita); err != nil {
		tx.Rollback()
		return "", err
	}
	if err := s.Feedbacks.AtualizarCampos(tx, fb.ID, map[string]interface{}{
		"status": StatusAguardandoFeedback,
	}); err != nil {
		tx.Rollback()
		return "", err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return "", err
	}

	s.notificar(fb, StatusAguardandoFeedback, "")
	return "Feedback aguardando retorno do morador.", nil
}

// aplicarFechado é a única transição que carimba DataConclusao.
func (s *Service) aplicarFechado(fb *Feedback, dados DadosFechado) (string, error) {
	agora := time.Now()
	campos := map[string]interface{}{
		"status":             StatusFechado,
		"avaliacao_positiva": dados.Gostou,
		"comentario_morador": dados.Comentario,
		"data_conclusao":     agora,
	}
	if err := s.Feedbacks.AtualizarCampos(s.DB, fb.ID, campos); err != nil {
		return "", err
	}

	var info string
	if dados.Comentario != nil {
		info = *dados.Comentario
	}
	s.notificar(fb, StatusFechado, info)
	return "Feedback fechado.", nil
}

func (s *Service) notificar(fb *Feedback, status, info string) {
	if ok := s.Notificador.Enviar(fb.Morador.Nome, fb.Morador.Email, status, fb.ID, info); !ok {
		log.Printf("Falha ao notificar %s sobre o feedback %d (status %s)", fb.Morador.Email, fb.ID, status)
	}
}
