package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"gorm.io/gorm"

	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/auth"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/comissao"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/condicao"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/documentos"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/entidade"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/logger"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/parcela"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/participante"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/proposta"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/tabelaprecos"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/unidade"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/usuario"
	"github.com/VictorTrevilato/erp-construtoras-sub000/internal/utils/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("arquivo .env não encontrado, usando variáveis do ambiente")
	}
	logger.InitLogger(os.Getenv("LOG_LEVEL"))

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	migracoes := []func(*gorm.DB) error{
		tabelaprecos.Migrate,
		unidade.Migrate,
		entidade.Migrate,
		usuario.Migrate,
		proposta.Migrate,
		condicao.Migrate,
		parcela.Migrate,
		comissao.Migrate,
		participante.Migrate,
	}
	for _, migrar := range migracoes {
		if err := migrar(database); err != nil {
			log.Fatal("Erro no AutoMigrate:", err)
		}
	}

	// Repositories e handlers
	unidadeRepo := unidade.NewRepository(database)
	tabelaRepo := tabelaprecos.NewRepository(database)
	entidadeRepo := entidade.NewRepository(database)
	propostaRepo := proposta.NewRepository(database)

	usuarioHandler := usuario.NewHandler(database)
	tabelaHandler := tabelaprecos.NewHandler(tabelaRepo)
	unidadeHandler := unidade.NewHandler(unidadeRepo)
	entidadeHandler := entidade.NewHandler(entidadeRepo)
	propostaHandler := proposta.NewHandler(propostaRepo, unidadeRepo, tabelaRepo, documentos.NewGeradorHTTP())

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")

	// Rotas autenticadas
	api := r.PathPrefix("/").Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	api.HandleFunc("/usuarios", usuarioHandler.Listar).Methods("GET")

	// Rotas de tabelas de preços
	api.HandleFunc("/tabelas-precos", tabelaHandler.Criar).Methods("POST")
	api.HandleFunc("/tabelas-precos", tabelaHandler.Listar).Methods("GET")
	api.HandleFunc("/tabelas-precos/{id}", tabelaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/tabelas-precos/{id}/itens", tabelaHandler.AtualizarItens).Methods("PUT")
	api.HandleFunc("/tabelas-precos/{id}/fluxo-padrao", tabelaHandler.FluxoPadrao).Methods("GET")
	api.HandleFunc("/tabelas-precos/{id}/unidades", unidadeHandler.ListarPorTabela).Methods("GET")

	// Rotas de unidades
	api.HandleFunc("/unidades", unidadeHandler.Criar).Methods("POST")
	api.HandleFunc("/unidades/{id}", unidadeHandler.BuscarPorID).Methods("GET")

	// Rotas de entidades (compradores, corretores, imobiliárias)
	api.HandleFunc("/entidades", entidadeHandler.Criar).Methods("POST")
	api.HandleFunc("/entidades", entidadeHandler.Listar).Methods("GET")
	api.HandleFunc("/entidades/{id}", entidadeHandler.BuscarPorID).Methods("GET")

	// Rotas de propostas
	api.HandleFunc("/propostas", propostaHandler.Criar).Methods("POST")
	api.HandleFunc("/propostas", propostaHandler.Listar).Methods("GET")
	api.HandleFunc("/propostas/{id}", propostaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/propostas/{id}/comparativo", propostaHandler.Comparativo).Methods("GET")
	api.HandleFunc("/propostas/{id}/historico", propostaHandler.ListarHistorico).Methods("GET")

	// Abas financeiras (substituição completa por salvamento)
	api.HandleFunc("/propostas/{id}/condicoes", propostaHandler.SalvarCondicoes).Methods("PUT")
	api.HandleFunc("/propostas/{id}/parcelas", propostaHandler.SalvarParcelas).Methods("PUT")
	api.HandleFunc("/propostas/{id}/comissao", propostaHandler.SalvarComissao).Methods("PUT")
	api.HandleFunc("/propostas/{id}/comissao", propostaHandler.EsvaziarComissao).Methods("DELETE")
	api.HandleFunc("/propostas/{id}/participantes", propostaHandler.SalvarParticipantes).Methods("PUT")
	api.HandleFunc("/propostas/{id}/participantes", propostaHandler.EsvaziarParticipantes).Methods("DELETE")

	// Ciclo de vida
	api.HandleFunc("/propostas/{id}/submeter", propostaHandler.Submeter).Methods("POST")
	api.HandleFunc("/propostas/{id}/decisao", propostaHandler.Decidir).Methods("POST")
	api.HandleFunc("/propostas/{id}/formalizar", propostaHandler.Formalizar).Methods("POST")
	api.HandleFunc("/propostas/{id}/gerar-contrato", propostaHandler.GerarContrato).Methods("POST")
	api.HandleFunc("/propostas/{id}/assinar", propostaHandler.Assinar).Methods("POST")

	// Rotas administrativas
	admin := api.PathPrefix("/").Subrouter()
	admin.Use(auth.RequireAdmin)
	admin.HandleFunc("/usuarios", usuarioHandler.Criar).Methods("POST")
	admin.HandleFunc("/propostas/{id}/cancelar", propostaHandler.Cancelar).Methods("POST")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	slog.Info("servidor no ar", "porta", porta)
	log.Fatal(http.ListenAndServe(":"+porta, c.Handler(r)))
}
