// internal/participante/engine.go
package participante

import (
	"errors"
	"sort"

	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/financeiro"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/rateio"
)

// ErrLinhaInvalida é devolvido por edições fora do intervalo da lista.
var ErrLinhaInvalida = errors.New("participante inexistente")

// Grupos mantém os participantes de uma proposta organizados em grupos
// econômicos. O pool de participação é implícito: 100% da compra.
type Grupos struct {
	Linhas []Participante
}

// CarregarGrupos monta o motor a partir de linhas já persistidas.
func CarregarGrupos(linhas []Participante) *Grupos {
	return &Grupos{Linhas: linhas}
}

// Adicionar anexa um participante ao grupo informado. A primeira linha
// da lista assume 100% e a responsabilidade; a primeira linha de um
// grupo novo assume a responsabilidade do grupo.
func (g *Grupos) Adicionar(entidadeID uint, tipo string, grupo int) *Participante {
	if grupo < 1 {
		grupo = 1
	}
	p := Participante{EntidadeID: entidadeID, TipoParticipacao: tipo, Grupo: grupo}
	if len(g.Linhas) == 0 {
		p.Responsavel = true
		p.Percentual = 100
	} else if !g.grupoExiste(grupo) {
		p.Responsavel = true
	}
	g.Linhas = append(g.Linhas, p)
	g.Compactar()
	return &g.Linhas[len(g.Linhas)-1]
}

// EditarPercentual troca o percentual da linha i, sem rebalancear as
// demais.
func (g *Grupos) EditarPercentual(i int, percentual float64) error {
	if i < 0 || i >= len(g.Linhas) {
		return ErrLinhaInvalida
	}
	g.Linhas[i].Percentual = percentual
	return nil
}

// DefinirResponsavel marca a linha i como responsável do seu grupo
// econômico e desmarca as irmãs do mesmo grupo na mesma operação.
func (g *Grupos) DefinirResponsavel(i int) error {
	if i < 0 || i >= len(g.Linhas) {
		return ErrLinhaInvalida
	}
	grupo := g.Linhas[i].Grupo
	for j := range g.Linhas {
		if g.Linhas[j].Grupo == grupo {
			g.Linhas[j].Responsavel = j == i
		}
	}
	return nil
}

// Reagrupar move a linha i para outro grupo e compacta a numeração.
func (g *Grupos) Reagrupar(i int, novoGrupo int) error {
	if i < 0 || i >= len(g.Linhas) {
		return ErrLinhaInvalida
	}
	if novoGrupo < 1 {
		novoGrupo = 1
	}
	g.Linhas[i].Grupo = novoGrupo
	g.Compactar()
	return nil
}

// Remover tira a linha i e compacta os grupos restantes.
func (g *Grupos) Remover(i int) error {
	if i < 0 || i >= len(g.Linhas) {
		return ErrLinhaInvalida
	}
	g.Linhas = append(g.Linhas[:i], g.Linhas[i+1:]...)
	g.Compactar()
	return nil
}

// Compactar renumera os grupos para o intervalo contíguo 1..N,
// preservando a ordem relativa dos números originais.
func (g *Grupos) Compactar() {
	numeros := make([]int, 0, len(g.Linhas))
	visto := make(map[int]bool)
	for _, p := range g.Linhas {
		if !visto[p.Grupo] {
			visto[p.Grupo] = true
			numeros = append(numeros, p.Grupo)
		}
	}
	sort.Ints(numeros)

	novo := make(map[int]int, len(numeros))
	for i, n := range numeros {
		novo[n] = i + 1
	}
	for i := range g.Linhas {
		g.Linhas[i].Grupo = novo[g.Linhas[i].Grupo]
	}
}

// Ordenar arruma as linhas por grupo e, dentro do grupo, pela
// prioridade de exibição do tipo de participação.
func (g *Grupos) Ordenar() {
	sort.SliceStable(g.Linhas, func(i, j int) bool {
		a, b := g.Linhas[i], g.Linhas[j]
		if a.Grupo != b.Grupo {
			return a.Grupo < b.Grupo
		}
		return prioridade(a.TipoParticipacao) < prioridade(b.TipoParticipacao)
	})
}

func prioridade(tipo string) int {
	if p, ok := prioridadeTipo[tipo]; ok {
		return p
	}
	return len(prioridadeTipo) + 1
}

// SomaPercentual soma a participação de todas as linhas, de todos os
// grupos.
func (g *Grupos) SomaPercentual() float64 {
	var soma float64
	for i := range g.Linhas {
		soma += g.Linhas[i].Percentual
	}
	return soma
}

// Validar é o portão de salvamento: a participação soma 100% sobre a
// proposta inteira (tolerância monetária, não a de rateio) e existe ao
// menos um responsável em algum grupo.
func (g *Grupos) Validar() error {
	if len(g.Linhas) == 0 {
		return nil
	}
	if err := rateio.ConferirSoma("percentual", g.SomaPercentual(), 100, financeiro.ToleranciaValor); err != nil {
		return err
	}
	for i := range g.Linhas {
		if g.Linhas[i].Responsavel {
			return nil
		}
	}
	return rateio.ErrSemResponsavel
}

func (g *Grupos) grupoExiste(grupo int) bool {
	for i := range g.Linhas {
		if g.Linhas[i].Grupo == grupo {
			return true
		}
	}
	return false
}
