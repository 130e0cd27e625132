// internal/entidade/handler.go
package entidade

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// Handler gerencia rotas do diretório de entidades.
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// Criar trata POST /entidades
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var e Entidade
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Criar(&e); err != nil {
		http.Error(w, "Erro ao salvar entidade", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(e)
}

// Listar trata GET /entidades
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	entidades, err := h.Repo.ListarTodas()
	if err != nil {
		http.Error(w, "Erro ao buscar entidades", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entidades)
}

// BuscarPorID trata GET /entidades/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	e, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Entidade não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(e)
}
