// internal/proposta/repository.go
package proposta

import (
	"gorm.io/gorm"

	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/comissao"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/condicao"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/parcela"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/participante"
)

// Repository é a fronteira de persistência das propostas. Todo
// salvamento financeiro grava as linhas, a eventual reversão de status
// e o histórico numa transação só: falha parcial nunca deixa as linhas
// inconsistentes com o status nem histórico órfão.
//
// Edições concorrentes da mesma proposta não são reconciliadas:
// a política aceita é last-write-wins na fronteira da transação.
type Repository struct {
	DB *gorm.DB

	condicoes     *condicao.Repository
	parcelas      *parcela.Repository
	comissoes     *comissao.Repository
	participantes *participante.Repository
}

// NewRepository cria um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		DB:            db,
		condicoes:     condicao.NewRepository(db),
		parcelas:      parcela.NewRepository(db),
		comissoes:     comissao.NewRepository(db),
		participantes: participante.NewRepository(db),
	}
}

// Criar insere a proposta com as coleções que já nascem com ela.
func (r *Repository) Criar(tx *gorm.DB, p *Proposta) error {
	if tx == nil {
		tx = r.DB
	}
	return tx.Create(p).Error
}

// BuscarPorID carrega a proposta com todas as coleções.
func (r *Repository) BuscarPorID(id uint) (*Proposta, error) {
	var p Proposta
	err := r.DB.
		Preload("Condicoes").
		Preload("Parcelas").
		Preload("Comissoes").
		Preload("Participantes").
		Preload("Historico").
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// buscarEnxuta carrega só a raiz, para os caminhos de salvamento.
func (r *Repository) buscarEnxuta(tx *gorm.DB, id uint) (*Proposta, error) {
	var p Proposta
	if err := tx.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListarTodas retorna as propostas com condições pré-carregadas, para
// a listagem com KPIs de VPL.
func (r *Repository) ListarTodas() ([]Proposta, error) {
	var propostas []Proposta
	err := r.DB.Preload("Condicoes").Order("id DESC").Find(&propostas).Error
	return propostas, err
}

// ListarHistorico retorna o histórico da proposta em ordem de registro.
func (r *Repository) ListarHistorico(propostaID uint) ([]Historico, error) {
	var historico []Historico
	err := r.DB.
		Where("proposta_id = ?", propostaID).
		Order("id ASC").
		Find(&historico).Error
	return historico, err
}

// SalvarCondicoes aplica o valor negociado, valida o fechamento exato
// do quadro contra ele, aplica o portão de edição e grava o conjunto
// inteiro, rederivando as parcelas.
func (r *Repository) SalvarCondicoes(propostaID, usuarioID uint, desbloqueado bool, valorProposta float64, condicoes []condicao.Condicao) (*Proposta, error) {
	var p *Proposta
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		if p, err = r.buscarEnxuta(tx, propostaID); err != nil {
			return err
		}

		p.AtualizarValorAlvo(valorProposta)
		quadro := condicao.CarregarQuadro(p.ValorProposta, condicoes)
		if err := quadro.ValidarFechamento(); err != nil {
			return err
		}
		if _, err := p.RegistrarEdicaoFinanceira("condicoes", usuarioID, desbloqueado); err != nil {
			return err
		}

		if err := r.condicoes.WithDB(tx).SubstituirPorProposta(p.ID, condicoes); err != nil {
			return err
		}
		if err := r.parcelas.WithDB(tx).SubstituirPorProposta(p.ID, parcela.ExpandirDeCondicoes(condicoes)); err != nil {
			return err
		}
		return r.persistirStatus(tx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// SalvarParcelas grava a grade fina do cronograma. As parcelas são a
// fonte da verdade: as condições da proposta são rederivadas delas na
// mesma transação.
func (r *Repository) SalvarParcelas(propostaID, usuarioID uint, desbloqueado bool, parcelas []parcela.Parcela) (*Proposta, error) {
	var p *Proposta
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		if p, err = r.buscarEnxuta(tx, propostaID); err != nil {
			return err
		}

		if err := parcela.ValidarFechamento(parcelas, p.ValorProposta); err != nil {
			return err
		}
		if _, err := p.RegistrarEdicaoFinanceira("parcelas", usuarioID, desbloqueado); err != nil {
			return err
		}

		if err := r.parcelas.WithDB(tx).SubstituirPorProposta(p.ID, parcelas); err != nil {
			return err
		}
		regeneradas := parcela.ReagruparCondicoes(parcelas)
		if err := r.condicoes.WithDB(tx).SubstituirPorProposta(p.ID, regeneradas); err != nil {
			return err
		}
		return r.persistirStatus(tx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// SalvarComissao valida e grava o rateio de comissão da proposta.
func (r *Repository) SalvarComissao(propostaID, usuarioID uint, desbloqueado bool, linhas []comissao.LinhaComissao) (*Proposta, error) {
	var p *Proposta
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		if p, err = r.buscarEnxuta(tx, propostaID); err != nil {
			return err
		}

		if err := comissao.CarregarRateio(p.ValorComissao, linhas).Validar(); err != nil {
			return err
		}
		if _, err := p.RegistrarEdicaoFinanceira("comissao", usuarioID, desbloqueado); err != nil {
			return err
		}

		if err := r.comissoes.WithDB(tx).SubstituirPorProposta(p.ID, linhas); err != nil {
			return err
		}
		return r.persistirStatus(tx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// SalvarParticipantes valida e grava os grupos econômicos da proposta.
func (r *Repository) SalvarParticipantes(propostaID, usuarioID uint, desbloqueado bool, linhas []participante.Participante) (*Proposta, error) {
	var p *Proposta
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		if p, err = r.buscarEnxuta(tx, propostaID); err != nil {
			return err
		}

		grupos := participante.CarregarGrupos(linhas)
		grupos.Compactar()
		grupos.Ordenar()
		if err := grupos.Validar(); err != nil {
			return err
		}
		if _, err := p.RegistrarEdicaoFinanceira("participantes", usuarioID, desbloqueado); err != nil {
			return err
		}

		if err := r.participantes.WithDB(tx).SubstituirPorProposta(p.ID, grupos.Linhas); err != nil {
			return err
		}
		return r.persistirStatus(tx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// EsvaziarComissao é o caminho de "remover a última linha": apaga o
// rateio e persiste o estado vazio imediatamente, com o mesmo portão
// de edição dos demais salvamentos.
func (r *Repository) EsvaziarComissao(propostaID, usuarioID uint, desbloqueado bool) (*Proposta, error) {
	var p *Proposta
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		if p, err = r.buscarEnxuta(tx, propostaID); err != nil {
			return err
		}
		if _, err := p.RegistrarEdicaoFinanceira("comissao", usuarioID, desbloqueado); err != nil {
			return err
		}
		if err := r.comissoes.WithDB(tx).RemoverUltimaEPersistir(p.ID); err != nil {
			return err
		}
		return r.persistirStatus(tx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// EsvaziarParticipantes remove o último participante restante e
// persiste o estado vazio na mesma transação.
func (r *Repository) EsvaziarParticipantes(propostaID, usuarioID uint, desbloqueado bool) (*Proposta, error) {
	var p *Proposta
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		if p, err = r.buscarEnxuta(tx, propostaID); err != nil {
			return err
		}
		if _, err := p.RegistrarEdicaoFinanceira("participantes", usuarioID, desbloqueado); err != nil {
			return err
		}
		if err := r.participantes.WithDB(tx).RemoverUltimoEPersistir(p.ID); err != nil {
			return err
		}
		return r.persistirStatus(tx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// SalvarTransicao persiste o status mudado pela máquina junto com o
// histórico gerado, atomicamente.
func (r *Repository) SalvarTransicao(p *Proposta) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return r.persistirStatus(tx, p)
	})
}

// persistirStatus grava a raiz da proposta e as entradas de histórico
// ainda não persistidas dentro da transação corrente.
func (r *Repository) persistirStatus(tx *gorm.DB, p *Proposta) error {
	updates := map[string]interface{}{
		"status":                p.Status,
		"valor_proposta":        p.ValorProposta,
		"data_decisao":          p.DataDecisao,
		"decisor_id":            p.DecisorID,
		"motivo_reprovacao":     p.MotivoReprovacao,
		"observacao_reprovacao": p.ObservacaoReprovacao,
	}
	if err := tx.Model(&Proposta{}).Where("id = ?", p.ID).Updates(updates).Error; err != nil {
		return err
	}
	for i := range p.Historico {
		if p.Historico[i].ID != 0 {
			continue
		}
		p.Historico[i].PropostaID = p.ID
		if err := tx.Create(&p.Historico[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
