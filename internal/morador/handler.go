package morador

import (
	"encoding/json"
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

type criarMoradorRequest struct {
	Nome      string `json:"nome"`
	Email     string `json:"email"`
	Telefone  string `json:"telefone"`
	UnidadeID *uint  `json:"unidadeId,omitempty"`
}

// CriarMorador trata POST /moradores
func (h *Handler) CriarMorador(w http.ResponseWriter, r *http.Request) {
	var req criarMoradorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Nome == "" || req.Email == "" {
		http.Error(w, "os campos 'nome' e 'email' são obrigatórios", http.StatusBadRequest)
		return
	}

	m := Morador{
		Nome:      req.Nome,
		Email:     req.Email,
		Telefone:  req.Telefone,
		UnidadeID: req.UnidadeID,
	}
	if err := h.Repository.Salvar(h.DB, &m); err != nil {
		http.Error(w, "erro ao criar morador", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(m)
}

// ListarMoradores trata GET /moradores
func (h *Handler) ListarMoradores(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.Listar(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar moradores", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /moradores/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	m, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "morador não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m)
}
