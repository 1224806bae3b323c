package item

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

type criarItemRequest struct {
	Nome      string `json:"nome"`
	Categoria string `json:"categoria"`
}

// CriarItem trata POST /unidades/{id}/itens
func (h *Handler) CriarItem(w http.ResponseWriter, r *http.Request) {
	unidadeID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de unidade inválido", http.StatusBadRequest)
		return
	}

	var req criarItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Nome == "" {
		http.Error(w, "o campo 'nome' é obrigatório", http.StatusBadRequest)
		return
	}

	i := Item{
		Nome:      req.Nome,
		Categoria: req.Categoria,
		UnidadeID: uint(unidadeID),
	}
	if err := h.Repository.Salvar(h.DB, &i); err != nil {
		http.Error(w, "erro ao criar item", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(i)
}

// ListarPorUnidade trata GET /unidades/{id}/itens
func (h *Handler) ListarPorUnidade(w http.ResponseWriter, r *http.Request) {
	unidadeID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de unidade inválido", http.StatusBadRequest)
		return
	}

	list, err := h.Repository.ListarPorUnidade(h.DB, uint(unidadeID))
	if err != nil {
		http.Error(w, "erro ao listar itens", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}
