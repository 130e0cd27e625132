// internal/documentos/gerador.go
package documentos

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
)

// Gerador abstrai o colaborador de geração de documentos e assinatura
// eletrônica. O contrato do motor com ele é só: chamar e, no sucesso,
// aplicar a transição de status correspondente.
type Gerador interface {
	// GerarTermoIntencao emite o Termo de Intenção na formalização.
	GerarTermoIntencao(propostaID uint) error
	// GerarContratoCompra emite o contrato de compra e venda.
	GerarContratoCompra(propostaID uint) error
	// ArtefatoAssinado verifica se o documento assinado foi enviado.
	ArtefatoAssinado(propostaID uint) (bool, error)
}

// ErrSemArtefato bloqueia a assinatura sem o documento enviado.
var ErrSemArtefato = errors.New("artefato assinado ainda não foi enviado")

// GeradorHTTP fala com o serviço de documentos via webhooks JSON.
type GeradorHTTP struct {
	BaseURL string
	Cliente *http.Client
}

// NewGeradorHTTP monta o cliente a partir de DOCUMENTOS_URL.
func NewGeradorHTTP() *GeradorHTTP {
	return &GeradorHTTP{
		BaseURL: os.Getenv("DOCUMENTOS_URL"),
		Cliente: http.DefaultClient,
	}
}

func (g *GeradorHTTP) postar(rota string, propostaID uint) error {
	payload := map[string]uint{"propostaId": propostaID}
	body, _ := json.Marshal(payload)

	resp, err := g.Cliente.Post(g.BaseURL+rota, "application/json", bytes.NewBuffer(body))
	if err != nil {
		slog.Error("falha no serviço de documentos", "rota", rota, "propostaId", propostaID, "err", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("serviço de documentos respondeu %d em %s", resp.StatusCode, rota)
	}
	return nil
}

// GerarTermoIntencao emite o termo na formalização da proposta.
func (g *GeradorHTTP) GerarTermoIntencao(propostaID uint) error {
	return g.postar("/termo-intencao", propostaID)
}

// GerarContratoCompra emite o contrato de compra e venda.
func (g *GeradorHTTP) GerarContratoCompra(propostaID uint) error {
	return g.postar("/contrato-compra", propostaID)
}

// ArtefatoAssinado consulta se o documento assinado já foi enviado.
func (g *GeradorHTTP) ArtefatoAssinado(propostaID uint) (bool, error) {
	resp, err := g.Cliente.Get(fmt.Sprintf("%s/assinatura/%d", g.BaseURL, propostaID))
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode >= 300 {
		return false, fmt.Errorf("serviço de assinatura respondeu %d", resp.StatusCode)
	}

	var out struct {
		Assinado bool `json:"assinado"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, err
	}
	return out.Assinado, nil
}
