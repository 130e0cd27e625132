package usuario

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"

	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/auth"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/utils"
)

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type criarUsuarioRequest struct {
	Nome    string `json:"nome"`
	Email   string `json:"email"`
	Senha   string `json:"senha"`
	IsAdmin bool   `json:"isAdmin"`
}

type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// Login gera um JWT para credenciais válidas.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	u, err := h.Repo.BuscarPorEmail(req.Email)
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}
	if !utils.CheckSenha(u.Senha, req.Senha) {
		http.Error(w, "senha incorreta", http.StatusUnauthorized)
		return
	}

	token, err := auth.GerarToken(u.ID, u.IsAdmin)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// Criar cadastra um novo usuário. Rota restrita a administradores.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	senha := req.Senha
	if senha == "" {
		var err error
		if senha, err = utils.GerarSenhaTemporaria(); err != nil {
			http.Error(w, "erro ao gerar senha", http.StatusInternalServerError)
			return
		}
	}
	hash, err := utils.HashSenha(senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	u := Usuario{
		Nome:    req.Nome,
		Email:   req.Email,
		Senha:   hash,
		IsAdmin: req.IsAdmin,
	}
	if err := h.Repo.Salvar(&u); err != nil {
		http.Error(w, "erro ao salvar usuário", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(u)
}

// Listar retorna todos os usuários (admin) ou só o próprio registro.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.CtxUsuarioID).(uint)
	isAdmin, _ := r.Context().Value(auth.CtxIsAdmin).(bool)

	w.Header().Set("Content-Type", "application/json")
	if isAdmin {
		usuarios, err := h.Repo.ListarTodos()
		if err != nil {
			http.Error(w, "erro ao listar usuários", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(usuarios)
		return
	}

	u, err := h.Repo.BuscarPorID(userID)
	if err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode([]Usuario{*u})
}
