package empreendimento

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

type criarEmpreendimentoRequest struct {
	Nome        string `json:"nome"`
	Endereco    string `json:"endereco"`
	LimiteRisco *int   `json:"limiteRisco,omitempty"`
}

// CriarEmpreendimento trata POST /empreendimentos
func (h *Handler) CriarEmpreendimento(w http.ResponseWriter, r *http.Request) {
	var req criarEmpreendimentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Nome == "" {
		http.Error(w, "o campo 'nome' é obrigatório", http.StatusBadRequest)
		return
	}
	if req.LimiteRisco != nil && (*req.LimiteRisco < 0 || *req.LimiteRisco > 100) {
		http.Error(w, "limiteRisco deve estar entre 0 e 100", http.StatusBadRequest)
		return
	}

	e := Empreendimento{
		Nome:        req.Nome,
		Endereco:    req.Endereco,
		LimiteRisco: req.LimiteRisco,
	}
	if err := h.Repository.Salvar(h.DB, &e); err != nil {
		http.Error(w, "erro ao criar empreendimento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(e)
}

// ListarEmpreendimentos trata GET /empreendimentos
func (h *Handler) ListarEmpreendimentos(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.Listar(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar empreendimentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /empreendimentos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	e, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "empreendimento não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(e)
}

type atualizarLimiteRiscoRequest struct {
	LimiteRisco int `json:"limiteRisco"`
}

// AtualizarLimiteRisco trata PUT /empreendimentos/{id}/limite-risco
func (h *Handler) AtualizarLimiteRisco(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req atualizarLimiteRiscoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.LimiteRisco < 0 || req.LimiteRisco > 100 {
		http.Error(w, "limiteRisco deve estar entre 0 e 100", http.StatusBadRequest)
		return
	}

	if err := h.Repository.AtualizarLimiteRisco(h.DB, uint(id), req.LimiteRisco); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "empreendimento não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao atualizar limite de risco", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Limite de risco atualizado com sucesso"))
}
