package saude

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type Handler struct {
	Calculator *Calculator
	Cache      *Cache
}

func NewHandler(calc *Calculator, cache *Cache) *Handler {
	return &Handler{Calculator: calc, Cache: cache}
}

// BuscarSaude trata GET /empreendimentos/{id}/saude
func (h *Handler) BuscarSaude(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if s, ok := h.Cache.Buscar(r.Context(), uint(id)); ok {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(s)
		return
	}

	s, err := h.Calculator.CalcularSaude(uint(id))
	if err != nil {
		if errors.Is(err, ErrEmpreendimentoNaoEncontrado) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao calcular saúde do empreendimento", http.StatusInternalServerError)
		return
	}
	h.Cache.Guardar(r.Context(), s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s)
}
