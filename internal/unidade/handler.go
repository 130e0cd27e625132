// internal/unidade/handler.go
package unidade

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var u Unidade
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Criar(&u); err != nil {
		http.Error(w, "erro ao salvar unidade", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(u)
}

func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	u, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "unidade não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao buscar unidade", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(u)
}

// ListarPorTabela lista as unidades de uma tabela de preços.
func (h *Handler) ListarPorTabela(w http.ResponseWriter, r *http.Request) {
	tabelaID, _ := strconv.Atoi(mux.Vars(r)["id"])
	unidades, err := h.Repo.ListarPorTabela(uint(tabelaID))
	if err != nil {
		http.Error(w, "erro ao listar unidades", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(unidades)
}
