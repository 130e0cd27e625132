// internal/proposta/handler.go
package proposta

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/auth"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/condicao"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/documentos"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/financeiro"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/parcela"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/rateio"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/tabelaprecos"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/unidade"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/vpl"
)

// Handler gerencia as rotas de propostas: criação, salvamentos
// financeiros, comparativo de VPL e o ciclo de vida.
type Handler struct {
	Repo     *Repository
	Unidades *unidade.Repository
	Tabelas  *tabelaprecos.Repository
	Docs     documentos.Gerador
}

// NewHandler cria um novo Handler.
func NewHandler(repo *Repository, unidades *unidade.Repository, tabelas *tabelaprecos.Repository, docs documentos.Gerador) *Handler {
	return &Handler{Repo: repo, Unidades: unidades, Tabelas: tabelas, Docs: docs}
}

func usuarioDoContexto(r *http.Request) uint {
	id, _ := r.Context().Value(auth.CtxUsuarioID).(uint)
	return id
}

func propostaID(r *http.Request) (uint, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id < 1 {
		return 0, false
	}
	return uint(id), true
}

// responderErro mapeia os erros do motor para códigos HTTP, mantendo o
// desvio numérico exato na mensagem: é ele que guia o negociador.
func responderErro(w http.ResponseWriter, err error) {
	var naoFechado *financeiro.ErrNaoFechado
	var somaInvalida *rateio.ErrSomaInvalida
	var bloqueada *ErrEdicaoBloqueada
	var transicao *ErrTransicaoInvalida

	switch {
	case errors.As(err, &naoFechado), errors.As(err, &somaInvalida),
		errors.Is(err, rateio.ErrSemResponsavel):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.As(err, &bloqueada), errors.As(err, &transicao),
		errors.Is(err, documentos.ErrSemArtefato):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrMotivoInvalido), errors.Is(err, ErrDecisorObrigatorio):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, gorm.ErrRecordNotFound):
		http.Error(w, "Proposta não encontrada", http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func responderJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

/* ============================ Criação e consulta ============================ */

// Criar trata POST /propostas. A proposta nasce em RASCUNHO com o
// quadro de condições copiado do fluxo padrão da unidade, já fechado,
// e reserva a unidade na mesma transação.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dto criarPropostaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	u, err := h.Unidades.BuscarPorID(dto.UnidadeID)
	if err != nil {
		http.Error(w, "Unidade não encontrada", http.StatusNotFound)
		return
	}
	t, err := h.Tabelas.BuscarPorID(u.TabelaPrecosID)
	if err != nil {
		http.Error(w, "Tabela de preços não encontrada", http.StatusNotFound)
		return
	}
	if err := tabelaprecos.ValidarItens(t.Itens); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	preco := u.PrecoTabela(t.ValorMetroQuadrado)
	quadro := condicao.NovoQuadro(preco)
	quadro.RestaurarPadrao(preco, t.Itens)
	for i := range quadro.Condicoes {
		quadro.Condicoes[i].ID = 0
	}

	p := Proposta{
		UnidadeID:           u.ID,
		Status:              StatusRascunho,
		ValorProposta:       preco,
		ValorTabelaOriginal: preco,
		ValorComissao:       dto.ValorComissao,
		Condicoes:           quadro.Condicoes,
		Parcelas:            parcela.ExpandirDeCondicoes(quadro.Condicoes),
	}

	tx := h.Repo.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "Não foi possível iniciar transação", http.StatusInternalServerError)
		return
	}
	if err := h.Repo.Criar(tx, &p); err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao criar proposta", http.StatusInternalServerError)
		return
	}
	if err := unidade.NewRepository(tx).Reservar(u.ID); err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao reservar unidade", http.StatusInternalServerError)
		return
	}
	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao confirmar transação", http.StatusInternalServerError)
		return
	}

	responderJSON(w, http.StatusCreated, p)
}

// BuscarPorID trata GET /propostas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, ok := propostaID(r)
	if !ok {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.BuscarPorID(id)
	if err != nil {
		responderErro(w, err)
		return
	}
	responderJSON(w, http.StatusOK, p)
}

// Listar trata GET /propostas, cada linha com os KPIs de VPL frente ao
// fluxo padrão da tabela.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	propostas, err := h.Repo.ListarTodas()
	if err != nil {
		http.Error(w, "Erro ao buscar propostas", http.StatusInternalServerError)
		return
	}

	hoje := time.Now()
	resumos := make([]propostaResumoDTO, 0, len(propostas))
	for i := range propostas {
		resumo := propostaResumoDTO{Proposta: propostas[i]}
		if c, err := h.comparativo(&propostas[i], hoje); err == nil {
			resumo.Comparativo = c
		} else {
			slog.Warn("comparativo de VPL indisponível", "propostaId", propostas[i].ID, "err", err)
		}
		resumos = append(resumos, resumo)
	}
	responderJSON(w, http.StatusOK, resumos)
}

// Comparativo trata GET /propostas/{id}/comparativo
func (h *Handler) Comparativo(w http.ResponseWriter, r *http.Request) {
	id, ok := propostaID(r)
	if !ok {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.BuscarPorID(id)
	if err != nil {
		responderErro(w, err)
		return
	}
	c, err := h.comparativo(p, time.Now())
	if err != nil {
		responderErro(w, err)
		return
	}
	responderJSON(w, http.StatusOK, c)
}

// comparativo monta o fluxo padrão da tabela e o fluxo negociado das
// condições e entrega os KPIs de valor presente.
func (h *Handler) comparativo(p *Proposta, hoje time.Time) (*vpl.Comparativo, error) {
	u, err := h.Unidades.BuscarPorID(p.UnidadeID)
	if err != nil {
		return nil, err
	}
	t, err := h.Tabelas.BuscarPorID(u.TabelaPrecosID)
	if err != nil {
		return nil, err
	}

	var padrao []vpl.Item
	for _, f := range tabelaprecos.GerarFluxoPadrao(p.ValorTabelaOriginal, t.Itens) {
		padrao = append(padrao, vpl.Item{
			Valor:              f.ValorParcela,
			QtdParcelas:        f.QtdParcelas,
			PeriodicidadeMeses: f.PeriodicidadeMeses,
			PrimeiroVencimento: f.PrimeiroVencimento,
		})
	}

	var proposto []vpl.Item
	for _, c := range p.Condicoes {
		proposto = append(proposto, vpl.Item{
			Valor:              c.ValorParcela,
			QtdParcelas:        c.QtdParcelas,
			PeriodicidadeMeses: 1, // condições expandem mês a mês
			PrimeiroVencimento: c.Vencimento,
		})
	}

	c := vpl.Comparar(hoje, padrao, proposto)
	return &c, nil
}

/* ========================== Salvamentos financeiros ========================== */

// SalvarCondicoes trata PUT /propostas/{id}/condicoes
func (h *Handler) SalvarCondicoes(w http.ResponseWriter, r *http.Request) {
	id, ok := propostaID(r)
	if !ok {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var dto salvarCondicoesDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.SalvarCondicoes(id, usuarioDoContexto(r), dto.Desbloqueado, dto.ValorProposta, dto.Condicoes)
	if err != nil {
		responderErro(w, err)
		return
	}
	responderJSON(w, http.StatusOK, p)
}

// SalvarParcelas trata PUT /propostas/{id}/parcelas
func (h *Handler) SalvarParcelas(w http.ResponseWriter, r *http.Request) {
	id, ok := propostaID(r)
	if !ok {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var dto salvarParcelasDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.SalvarParcelas(id, usuarioDoContexto(r), dto.Desbloqueado, dto.Parcelas)
	if err != nil {
		responderErro(w, err)
		return
	}
	responderJSON(w, http.StatusOK, p)
}

// SalvarComissao trata PUT /propostas/{id}/comissao
func (h *Handler) SalvarComissao(w http.ResponseWriter, r *http.Request) {
	id, ok := propostaID(r)
	if !ok {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var dto salvarComissaoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.SalvarComissao(id, usuarioDoContexto(r), dto.Desbloqueado, dto.Linhas)
	if err != nil {
		responderErro(w, err)
		return
	}
	responderJSON(w, http.StatusOK, p)
}

// EsvaziarComissao trata DELETE /propostas/{id}/comissao, o caminho
// de "remover a última linha e persistir" do rateio.
func (h *Handler) EsvaziarComissao(w http.ResponseWriter, r *http.Request) {
	id, ok := propostaID(r)
	if !ok {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var dto esvaziarDTO
	_ = json.NewDecoder(r.Body).Decode(&dto)

	p, err := h.Repo.EsvaziarComissao(id, usuarioDoContexto(r), dto.Desbloqueado)
	if err != nil {
		responderErro(w, err)
		return
	}
	responderJSON(w, http.StatusOK, p)
}

// SalvarParticipantes trata PUT /propostas/{id}/participantes
func (h *Handler) SalvarParticipantes(w http.ResponseWriter, r *http.Request) {
	id, ok := propostaID(r)
	if !ok {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var dto salvarParticipantesDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.SalvarParticipantes(id, usuarioDoContexto(r), dto.Desbloqueado, dto.Linhas)
	if err != nil {
		responderErro(w, err)
		return
	}
	responderJSON(w, http.StatusOK, p)
}

// EsvaziarParticipantes trata DELETE /propostas/{id}/participantes
func (h *Handler) EsvaziarParticipantes(w http.ResponseWriter, r *http.Request) {
	id, ok := propostaID(r)
	if !ok {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var dto esvaziarDTO
	_ = json.NewDecoder(r.Body).Decode(&dto)

	p, err := h.Repo.EsvaziarParticipantes(id, usuarioDoContexto(r), dto.Desbloqueado)
	if err != nil {
		responderErro(w, err)
		return
	}
	responderJSON(w, http.StatusOK, p)
}

/* =============================== Ciclo de vida =============================== */

func (h *Handler) transicao(w http.ResponseWriter, r *http.Request, aplicar func(p *Proposta, usuarioID uint) error) {
	id, ok := propostaID(r)
	if !ok {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.BuscarPorID(id)
	if err != nil {
		responderErro(w, err)
		return
	}
	if err := aplicar(p, usuarioDoContexto(r)); err != nil {
		responderErro(w, err)
		return
	}
	if err := h.Repo.SalvarTransicao(p); err != nil {
		responderErro(w, err)
		return
	}
	responderJSON(w, http.StatusOK, p)
}

// Submeter trata POST /propostas/{id}/submeter
func (h *Handler) Submeter(w http.ResponseWriter, r *http.Request) {
	h.transicao(w, r, func(p *Proposta, usuarioID uint) error {
		return p.Submeter(usuarioID)
	})
}

// Decidir trata POST /propostas/{id}/decisao. Reprovação libera a
// unidade reservada depois da transação confirmada.
func (h *Handler) Decidir(w http.ResponseWriter, r *http.Request) {
	var dto decisaoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	id, ok := propostaID(r)
	if !ok {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.BuscarPorID(id)
	if err != nil {
		responderErro(w, err)
		return
	}
	if err := p.Decidir(dto.Aprovado, dto.Motivo, dto.Observacao, usuarioDoContexto(r), time.Now()); err != nil {
		responderErro(w, err)
		return
	}
	if err := h.Repo.SalvarTransicao(p); err != nil {
		responderErro(w, err)
		return
	}

	if !dto.Aprovado {
		if err := h.Unidades.Liberar(p.UnidadeID); err != nil {
			slog.Error("falha ao liberar unidade reservada", "unidadeId", p.UnidadeID, "err", err)
		}
	}
	responderJSON(w, http.StatusOK, p)
}

// Formalizar trata POST /propostas/{id}/formalizar: gera o Termo de
// Intenção e, no sucesso, aplica a transição.
func (h *Handler) Formalizar(w http.ResponseWriter, r *http.Request) {
	h.transicao(w, r, func(p *Proposta, usuarioID uint) error {
		if p.Status != StatusAprovado {
			return &ErrTransicaoInvalida{De: p.Status, Para: StatusFormalizada}
		}
		if err := h.Docs.GerarTermoIntencao(p.ID); err != nil {
			return err
		}
		return p.Formalizar(usuarioID)
	})
}

// GerarContrato trata POST /propostas/{id}/gerar-contrato: emite o contrato
// de compra e trava as abas financeiras em definitivo.
func (h *Handler) GerarContrato(w http.ResponseWriter, r *http.Request) {
	h.transicao(w, r, func(p *Proposta, usuarioID uint) error {
		if p.Status != StatusFormalizada {
			return &ErrTransicaoInvalida{De: p.Status, Para: StatusEmAssinatura}
		}
		if err := h.Docs.GerarContratoCompra(p.ID); err != nil {
			return err
		}
		return p.GerarContrato(usuarioID)
	})
}

// Assinar trata POST /propostas/{id}/assinar: exige o artefato
// assinado já enviado ao serviço de documentos.
func (h *Handler) Assinar(w http.ResponseWriter, r *http.Request) {
	h.transicao(w, r, func(p *Proposta, usuarioID uint) error {
		if p.Status != StatusEmAssinatura {
			return &ErrTransicaoInvalida{De: p.Status, Para: StatusAssinado}
		}
		ok, err := h.Docs.ArtefatoAssinado(p.ID)
		if err != nil {
			return err
		}
		if !ok {
			return documentos.ErrSemArtefato
		}
		return p.Assinar(usuarioID)
	})
}

// Cancelar trata POST /propostas/{id}/cancelar: via administrativa,
// fora da tabela de transições, restrita a administradores na rota.
func (h *Handler) Cancelar(w http.ResponseWriter, r *http.Request) {
	var dto cancelamentoDTO
	_ = json.NewDecoder(r.Body).Decode(&dto)

	h.transicao(w, r, func(p *Proposta, usuarioID uint) error {
		p.Cancelar(usuarioID, dto.Observacao)
		if err := h.Unidades.Liberar(p.UnidadeID); err != nil {
			slog.Error("falha ao liberar unidade reservada", "unidadeId", p.UnidadeID, "err", err)
		}
		return nil
	})
}

// ListarHistorico trata GET /propostas/{id}/historico
func (h *Handler) ListarHistorico(w http.ResponseWriter, r *http.Request) {
	id, ok := propostaID(r)
	if !ok {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	historico, err := h.Repo.ListarHistorico(id)
	if err != nil {
		http.Error(w, "Erro ao buscar histórico", http.StatusInternalServerError)
		return
	}
	responderJSON(w, http.StatusOK, historico)
}
