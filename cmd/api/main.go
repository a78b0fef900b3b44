package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rafaelmp/gestao-loja-api/internal/application/auth"
	"github.com/rafaelmp/gestao-loja-api/internal/application/estoque"
	"github.com/rafaelmp/gestao-loja-api/internal/application/relatorios"
	"github.com/rafaelmp/gestao-loja-api/internal/application/usecase"
	"github.com/rafaelmp/gestao-loja-api/internal/application/vendas"
	"github.com/rafaelmp/gestao-loja-api/internal/infrastructure/postgres"
	httpRouter "github.com/rafaelmp/gestao-loja-api/internal/interfaces/http"
	"github.com/rafaelmp/gestao-loja-api/pkg/config"
	"github.com/rafaelmp/gestao-loja-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	produtoRepo := postgres.NewProdutoRepository(pool)
	movRepo := postgres.NewMovimentacaoRepository(pool)
	vendaRepo := postgres.NewVendaRepository(pool)
	despesaRepo := postgres.NewDespesaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	relatorioRepo := postgres.NewRelatorioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	produtoUC := usecase.NewProdutoUseCase(produtoRepo, movRepo, vendaRepo)
	despesaUC := usecase.NewDespesaUseCase(despesaRepo)
	estoqueUC := estoque.NewMovimentacaoUseCase(txRunner, produtoRepo, movRepo)
	vendaUC := vendas.NewVendaUseCase(txRunner, produtoRepo, vendaRepo)
	relatorioUC := relatorios.NewRelatorioUseCase(relatorioRepo)
	dashboardUC := relatorios.NewDashboardUseCase(relatorioUC, produtoRepo, movRepo)
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestão Loja API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProdutoUC:   produtoUC,
		DespesaUC:   despesaUC,
		EstoqueUC:   estoqueUC,
		VendaUC:     vendaUC,
		RelatorioUC: relatorioUC,
		DashboardUC: dashboardUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação finalizada")
}
