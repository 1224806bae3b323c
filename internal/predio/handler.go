package predio

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

type criarPredioRequest struct {
	Nome string `json:"nome"`
}

// CriarPredio trata POST /empreendimentos/{id}/predios
func (h *Handler) CriarPredio(w http.ResponseWriter, r *http.Request) {
	empID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de empreendimento inválido", http.StatusBadRequest)
		return
	}

	var req criarPredioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Nome == "" {
		http.Error(w, "o campo 'nome' é obrigatório", http.StatusBadRequest)
		return
	}

	p := Predio{
		Nome:             req.Nome,
		EmpreendimentoID: uint(empID),
	}
	if err := h.Repository.Salvar(h.DB, &p); err != nil {
		http.Error(w, "erro ao criar prédio", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

// ListarPorEmpreendimento trata GET /empreendimentos/{id}/predios
func (h *Handler) ListarPorEmpreendimento(w http.ResponseWriter, r *http.Request) {
	empID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de empreendimento inválido", http.StatusBadRequest)
		return
	}

	list, err := h.Repository.ListarPorEmpreendimento(h.DB, uint(empID))
	if err != nil {
		http.Error(w, "erro ao listar prédios", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}
