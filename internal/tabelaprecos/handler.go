// internal/tabelaprecos/handler.go
package tabelaprecos

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// Handler gerencia rotas de tabelas de preço e fluxo padrão.
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// Criar trata POST /tabelas-precos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var t TabelaPrecos
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := ValidarItens(t.Itens); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if err := h.Repo.Criar(&t); err != nil {
		http.Error(w, "Erro ao salvar tabela de preços", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(t)
}

// Listar trata GET /tabelas-precos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	tabelas, err := h.Repo.ListarTodas()
	if err != nil {
		http.Error(w, "Erro ao buscar tabelas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tabelas)
}

// BuscarPorID trata GET /tabelas-precos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	t, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Tabela não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(t)
}

// AtualizarItens trata PUT /tabelas-precos/{id}/itens
func (h *Handler) AtualizarItens(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var itens []ItemFluxo
	if err := json.NewDecoder(r.Body).Decode(&itens); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := ValidarItens(itens); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if err := h.Repo.SubstituirItens(uint(id), itens); err != nil {
		http.Error(w, "Erro ao atualizar itens", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// FluxoPadrao trata GET /tabelas-precos/{id}/fluxo?preco=200000
// Expande o template sobre o preço de tabela informado.
func (h *Handler) FluxoPadrao(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	preco, err := strconv.ParseFloat(r.URL.Query().Get("preco"), 64)
	if err != nil {
		http.Error(w, "Parâmetro 'preco' inválido", http.StatusBadRequest)
		return
	}
	t, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Tabela não encontrada", http.StatusNotFound)
		return
	}
	if err := ValidarItens(t.Itens); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(GerarFluxoPadrao(preco, t.Itens))
}
