package instalador

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula o DB e o Repository
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

type criarInstaladorRequest struct {
	CPF      string `json:"cpf"`
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
}

// CriarInstalador trata POST /instaladores
func (h *Handler) CriarInstalador(w http.ResponseWriter, r *http.Request) {
	var req criarInstaladorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.CPF == "" || req.Nome == "" {
		http.Error(w, "os campos 'cpf' e 'nome' são obrigatórios", http.StatusBadRequest)
		return
	}

	i := Instalador{
		CPF:      req.CPF,
		Nome:     req.Nome,
		Telefone: req.Telefone,
	}
	if err := h.Repository.Salvar(h.DB, &i); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			http.Error(w, "já existe instalador com esse CPF", http.StatusConflict)
			return
		}
		http.Error(w, "erro ao criar instalador", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(i)
}

// ListarInstaladores trata GET /instaladores
func (h *Handler) ListarInstaladores(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.Listar(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar instaladores", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /instaladores/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	i, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "instalador não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(i)
}

// DeletarInstalador trata DELETE /instaladores/{id}
func (h *Handler) DeletarInstalador(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao remover instalador", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Instalador removido com sucesso"))
}
