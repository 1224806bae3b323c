package feedback

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula o DB, o Repository e o motor de transições
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Service    *Service
}

func NewHandler(db *gorm.DB, service *Service) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Service:    service,
	}
}

type criarFeedbackRequest struct {
	Problema  string `json:"problema"`
	Descricao string `json:"descricao"`
	MoradorID uint   `json:"moradorId"`
	ItemID    uint   `json:"itemId"`
}

// CriarFeedback trata POST /feedbacks — ponto de entrada do fluxo, sempre em ABERTO
func (h *Handler) CriarFeedback(w http.ResponseWriter, r *http.Request) {
	var req criarFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Problema == "" || req.MoradorID == 0 || req.ItemID == 0 {
		http.Error(w, "os campos 'problema', 'moradorId' e 'itemId' são obrigatórios", http.StatusBadRequest)
		return
	}

	f := Feedback{
		Problema:  NormalizarProblema(req.Problema),
		Descricao: req.Descricao,
		Status:    StatusAberto,
		MoradorID: req.MoradorID,
		ItemID:    req.ItemID,
	}
	if err := h.Repository.Salvar(h.DB, &f); err != nil {
		http.Error(w, "erro ao criar feedback", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(f)
}

// BuscarPorID trata GET /feedbacks/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	f, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "feedback não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(f)
}

// ListarPorItem trata GET /itens/{id}/feedbacks
func (h *Handler) ListarPorItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de item inválido", http.StatusBadRequest)
		return
	}

	list, err := h.Repository.ListarPorItem(h.DB, uint(id))
	if err != nil {
		http.Error(w, "erro ao listar feedbacks", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// AtualizarStatus trata PATCH /feedbacks/{id}/status
func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var req AtualizarStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	mensagem, err := h.Service.AtualizarStatus(uint(id), req)
	if err != nil {
		http.Error(w, err.Error(), statusHTTPPara(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"mensagem": mensagem})
}

func statusHTTPPara(err error) int {
	switch {
	case errors.Is(err, ErrResponsavelNaoEncontrado),
		errors.Is(err, ErrInstaladorNaoEncontrado),
		errors.Is(err, ErrVisitaNaoEncontrada):
		return http.StatusNotFound
	case errors.Is(err, ErrStatusInvalido),
		errors.Is(err, ErrDadosInvalidos):
		return http.StatusBadRequest
	case errors.Is(err, ErrVisitaJaAgendada):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
