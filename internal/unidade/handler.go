package unidade

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

type criarUnidadeRequest struct {
	Identificador string `json:"identificador"`
}

// CriarUnidade trata POST /predios/{id}/unidades
func (h *Handler) CriarUnidade(w http.ResponseWriter, r *http.Request) {
	predioID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de prédio inválido", http.StatusBadRequest)
		return
	}

	var req criarUnidadeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Identificador == "" {
		http.Error(w, "o campo 'identificador' é obrigatório", http.StatusBadRequest)
		return
	}

	u := Unidade{
		Identificador: req.Identificador,
		PredioID:      uint(predioID),
	}
	if err := h.Repository.Salvar(h.DB, &u); err != nil {
		http.Error(w, "erro ao criar unidade", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(u)
}

// ListarPorPredio trata GET /predios/{id}/unidades
func (h *Handler) ListarPorPredio(w http.ResponseWriter, r *http.Request) {
	predioID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de prédio inválido", http.StatusBadRequest)
		return
	}

	list, err := h.Repository.ListarPorPredio(h.DB, uint(predioID))
	if err != nil {
		http.Error(w, "erro ao listar unidades", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}
