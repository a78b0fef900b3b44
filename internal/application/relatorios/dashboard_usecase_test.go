package relatorios_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelmp/gestao-loja-api/internal/application/apptest"
	"github.com/rafaelmp/gestao-loja-api/internal/application/relatorios"
	"github.com/rafaelmp/gestao-loja-api/internal/domain/entity"
	"github.com/rafaelmp/gestao-loja-api/internal/domain/repository"
)

// relatorioRepoStub devolve linhas fixas para as três consultas do ano.
type relatorioRepoStub struct {
	vendas   []repository.VendaResumoRow
	itens    []repository.ItemCustoRow
	despesas []repository.DespesaResumoRow
}

func (s *relatorioRepoStub) ListVendasResumo(ctx context.Context, ano int) ([]repository.VendaResumoRow, error) {
	return s.vendas, nil
}

func (s *relatorioRepoStub) ListItensCusto(ctx context.Context, ano int) ([]repository.ItemCustoRow, error) {
	return s.itens, nil
}

func (s *relatorioRepoStub) ListDespesasResumo(ctx context.Context, ano int) ([]repository.DespesaResumoRow, error) {
	return s.despesas, nil
}

func TestGerarRelatorioAnual_MontaDozeMesesETotais(t *testing.T) {
	stub := &relatorioRepoStub{
		vendas: []repository.VendaResumoRow{
			{DataVenda: dia(2025, time.June, 10), ValorTotal: dec("300.00")},
		},
		itens: []repository.ItemCustoRow{
			{DataVenda: dia(2025, time.June, 10), Quantidade: 10, PrecoCusto: dec("12.00")},
		},
		despesas: []repository.DespesaResumoRow{
			{DataDespesa: dia(2025, time.June, 20), Valor: dec("80.00")},
		},
	}
	uc := relatorios.NewRelatorioUseCase(stub)

	out, err := uc.GerarRelatorioAnual(context.Background(), 2025)
	require.NoError(t, err)

	assert.Equal(t, 2025, out.Ano)
	require.Len(t, out.Meses, 12)
	junho := out.Meses[5]
	assert.True(t, junho.Vendas.Equal(dec("300.00")))
	assert.True(t, junho.Custos.Equal(dec("120.00")))
	assert.True(t, junho.Despesas.Equal(dec("80.00")))
	assert.True(t, junho.Lucro.Equal(dec("100.00")))
	assert.True(t, out.Totais.Lucro.Equal(dec("100.00")))
}

func TestDashboardGetSummary(t *testing.T) {
	produtoRepo := apptest.NewProdutoRepo()
	movRepo := apptest.NewMovRepo(produtoRepo)
	produtoRepo.Produtos["p1"] = &entity.Produto{
		ID: "p1", Nome: "Caneca", Categoria: "Cozinha", QuantidadeEstoque: 12,
		PrecoCusto: decimal.Zero, PrecoVenda: decimal.Zero,
	}
	produtoRepo.Produtos["p2"] = &entity.Produto{
		ID: "p2", Nome: "Moletom", QuantidadeEstoque: 3,
		PrecoCusto: decimal.Zero, PrecoVenda: decimal.Zero,
	}
	for i := 0; i < 7; i++ {
		require.NoError(t, movRepo.Create(&entity.MovimentacaoEstoque{
			ID: string(rune('a' + i)), ProdutoID: "p1",
			Tipo: entity.MovimentacaoEntrada, Quantidade: 1,
		}))
	}

	relUC := relatorios.NewRelatorioUseCase(&relatorioRepoStub{})
	uc := relatorios.NewDashboardUseCase(relUC, produtoRepo, movRepo)

	out, err := uc.GetSummary(context.Background(), 2025)
	require.NoError(t, err)

	assert.Equal(t, 2025, out.Ano)
	assert.Equal(t, 15, out.TotalProdutosEstoque, "soma do estoque de todos os produtos")
	assert.Len(t, out.UltimasMovimentacoes, 5, "o dashboard mostra no máximo 5 movimentações")
	assert.Equal(t, "Caneca", out.UltimasMovimentacoes[0].ProdutoNome)
	assert.False(t, out.GeradoEm.IsZero())
}
