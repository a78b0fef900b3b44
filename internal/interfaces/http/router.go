package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rafaelmp/gestao-loja-api/internal/application/auth"
	"github.com/rafaelmp/gestao-loja-api/internal/application/estoque"
	"github.com/rafaelmp/gestao-loja-api/internal/application/relatorios"
	"github.com/rafaelmp/gestao-loja-api/internal/application/usecase"
	"github.com/rafaelmp/gestao-loja-api/internal/application/vendas"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ProdutoUC   *usecase.ProdutoUseCase
	DespesaUC   *usecase.DespesaUseCase
	EstoqueUC   *estoque.MovimentacaoUseCase
	VendaUC     *vendas.VendaUseCase
	RelatorioUC *relatorios.RelatorioUseCase
	DashboardUC *relatorios.DashboardUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Produtos
	produtos := protected.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	produtos.Post("/", produtoHandler.Create)
	produtos.Get("/", produtoHandler.List)
	produtos.Get("/:id", produtoHandler.GetByID)
	produtos.Put("/:id", produtoHandler.Update)
	produtos.Delete("/:id", produtoHandler.Delete)

	// Movimentações de estoque
	estoqueGroup := protected.Group("/estoque")
	estoqueHandler := NewEstoqueHandler(deps.EstoqueUC)
	estoqueGroup.Post("/movimentacoes", estoqueHandler.Register)
	estoqueGroup.Get("/movimentacoes", estoqueHandler.List)
	estoqueGroup.Put("/movimentacoes/:id", estoqueHandler.Update)
	estoqueGroup.Delete("/movimentacoes/:id", estoqueHandler.Delete)

	// Vendas
	vendasGroup := protected.Group("/vendas")
	vendaHandler := NewVendaHandler(deps.VendaUC)
	vendasGroup.Post("/", vendaHandler.Create)
	vendasGroup.Get("/", vendaHandler.List)
	vendasGroup.Get("/:id", vendaHandler.GetByID)
	vendasGroup.Delete("/:id", vendaHandler.Delete)

	// Despesas
	despesas := protected.Group("/despesas")
	despesaHandler := NewDespesaHandler(deps.DespesaUC)
	despesas.Post("/", despesaHandler.Create)
	despesas.Get("/", despesaHandler.List)
	despesas.Get("/:id", despesaHandler.GetByID)
	despesas.Put("/:id", despesaHandler.Update)
	despesas.Delete("/:id", despesaHandler.Delete)

	// Relatórios e dashboard
	relatoriosGroup := protected.Group("/relatorios")
	relatorioHandler := NewRelatorioHandler(deps.RelatorioUC)
	relatoriosGroup.Get("/mensal", relatorioHandler.GetMensal)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.GetSummary)
}
