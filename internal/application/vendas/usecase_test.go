package vendas_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelmp/gestao-loja-api/internal/application/apptest"
	"github.com/rafaelmp/gestao-loja-api/internal/application/dto"
	"github.com/rafaelmp/gestao-loja-api/internal/application/vendas"
	"github.com/rafaelmp/gestao-loja-api/internal/domain"
	"github.com/rafaelmp/gestao-loja-api/internal/domain/entity"
)

const (
	produtoA = "00000000-0000-0000-0000-0000000000a1"
	produtoB = "00000000-0000-0000-0000-0000000000b2"
)

type ambiente struct {
	uc          *vendas.VendaUseCase
	produtoRepo *apptest.ProdutoRepo
	movRepo     *apptest.MovRepo
	vendaRepo   *apptest.VendaRepo
}

func novoAmbiente() *ambiente {
	produtoRepo := apptest.NewProdutoRepo()
	movRepo := apptest.NewMovRepo(produtoRepo)
	vendaRepo := apptest.NewVendaRepo()
	produtoRepo.Produtos[produtoA] = &entity.Produto{
		ID:                produtoA,
		Nome:              "Caneca",
		PrecoCusto:        decimal.RequireFromString("4.00"),
		PrecoVenda:        decimal.RequireFromString("10.00"),
		QuantidadeEstoque: 10,
	}
	produtoRepo.Produtos[produtoB] = &entity.Produto{
		ID:                produtoB,
		Nome:              "Moletom",
		PrecoCusto:        decimal.RequireFromString("18.00"),
		PrecoVenda:        decimal.RequireFromString("30.00"),
		QuantidadeEstoque: 5,
	}
	runner := &apptest.TxRunner{Mov: movRepo, Produto: produtoRepo, Venda: vendaRepo}
	return &ambiente{
		uc:          vendas.NewVendaUseCase(runner, produtoRepo, vendaRepo),
		produtoRepo: produtoRepo,
		movRepo:     movRepo,
		vendaRepo:   vendaRepo,
	}
}

func TestCriarVenda_TotalSomaDosSubtotais(t *testing.T) {
	amb := novoAmbiente()

	out, err := amb.uc.CriarVenda(context.Background(), dto.CreateVendaRequest{
		FormaPagamento: "PIX",
		Itens: []dto.ItemVendaRequest{
			{ProdutoID: produtoA, Quantidade: 2},
			{ProdutoID: produtoB, Quantidade: 1},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	// 2 × 10.00 + 1 × 30.00 = 50.00
	assert.True(t, out.ValorTotal.Equal(decimal.RequireFromString("50.00")),
		"valor total deve ser a soma dos subtotais, obtido: %s", out.ValorTotal)
	require.Len(t, out.Itens, 2)
	assert.True(t, out.Itens[0].Subtotal.Equal(decimal.RequireFromString("20.00")))
	assert.True(t, out.Itens[1].Subtotal.Equal(decimal.RequireFromString("30.00")))

	assert.Equal(t, 8, amb.produtoRepo.Produtos[produtoA].QuantidadeEstoque)
	assert.Equal(t, 4, amb.produtoRepo.Produtos[produtoB].QuantidadeEstoque)
	assert.Len(t, amb.movRepo.Movs, 2, "cada item deve gerar uma saída no ledger")
	assert.Len(t, amb.vendaRepo.Vendas, 1)
}

func TestCriarVenda_PrecoZeroUsaPrecoDoProduto(t *testing.T) {
	amb := novoAmbiente()

	out, err := amb.uc.CriarVenda(context.Background(), dto.CreateVendaRequest{
		FormaPagamento: "Dinheiro",
		Itens: []dto.ItemVendaRequest{
			{ProdutoID: produtoA, Quantidade: 3}, // sem preço informado
		},
	})
	require.NoError(t, err)

	assert.True(t, out.Itens[0].PrecoUnitario.Equal(decimal.RequireFromString("10.00")))
	assert.True(t, out.ValorTotal.Equal(decimal.RequireFromString("30.00")))
}

func TestCriarVenda_PrecoInformadoPrevalece(t *testing.T) {
	amb := novoAmbiente()

	out, err := amb.uc.CriarVenda(context.Background(), dto.CreateVendaRequest{
		FormaPagamento: "Cartão de Crédito",
		Itens: []dto.ItemVendaRequest{
			{ProdutoID: produtoA, Quantidade: 2, PrecoUnitario: decimal.RequireFromString("8.50")},
		},
	})
	require.NoError(t, err)

	assert.True(t, out.ValorTotal.Equal(decimal.RequireFromString("17.00")))
}

func TestCriarVenda_EstoqueInsuficienteRejeitaAVendaInteira(t *testing.T) {
	amb := novoAmbiente()

	_, err := amb.uc.CriarVenda(context.Background(), dto.CreateVendaRequest{
		FormaPagamento: "PIX",
		Itens: []dto.ItemVendaRequest{
			{ProdutoID: produtoA, Quantidade: 11}, // estoque é 10
		},
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 10, amb.produtoRepo.Produtos[produtoA].QuantidadeEstoque,
		"o estoque não deve mudar quando a venda é rejeitada")
	assert.Empty(t, amb.movRepo.Movs)
	assert.Empty(t, amb.vendaRepo.Vendas, "nenhuma venda deve ser persistida")
}

func TestCriarVenda_ProdutoRepetidoAcumulaBaixa(t *testing.T) {
	amb := novoAmbiente()

	out, err := amb.uc.CriarVenda(context.Background(), dto.CreateVendaRequest{
		FormaPagamento: "PIX",
		Itens: []dto.ItemVendaRequest{
			{ProdutoID: produtoA, Quantidade: 3},
			{ProdutoID: produtoA, Quantidade: 4},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, amb.produtoRepo.Produtos[produtoA].QuantidadeEstoque,
		"duas linhas do mesmo produto devem baixar 7 unidades no total")
	assert.True(t, out.ValorTotal.Equal(decimal.RequireFromString("70.00")))
}

func TestCriarVenda_ProdutoRepetidoSemEstoqueTotalRejeitada(t *testing.T) {
	amb := novoAmbiente()

	// 6 + 6 = 12 > 10: a segunda linha deve falhar mesmo que a primeira caiba.
	_, err := amb.uc.CriarVenda(context.Background(), dto.CreateVendaRequest{
		FormaPagamento: "PIX",
		Itens: []dto.ItemVendaRequest{
			{ProdutoID: produtoA, Quantidade: 6},
			{ProdutoID: produtoA, Quantidade: 6},
		},
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestCriarVenda_Validacoes(t *testing.T) {
	amb := novoAmbiente()
	ctx := context.Background()

	_, err := amb.uc.CriarVenda(ctx, dto.CreateVendaRequest{FormaPagamento: "PIX"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "venda sem itens deve ser rejeitada")

	_, err = amb.uc.CriarVenda(ctx, dto.CreateVendaRequest{
		FormaPagamento: "Cheque",
		Itens:          []dto.ItemVendaRequest{{ProdutoID: produtoA, Quantidade: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "forma de pagamento desconhecida deve ser rejeitada")

	_, err = amb.uc.CriarVenda(ctx, dto.CreateVendaRequest{
		FormaPagamento: "PIX",
		Itens:          []dto.ItemVendaRequest{{ProdutoID: produtoA, Quantidade: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantidade zero deve ser rejeitada")

	_, err = amb.uc.CriarVenda(ctx, dto.CreateVendaRequest{
		FormaPagamento: "PIX",
		Itens:          []dto.ItemVendaRequest{{ProdutoID: "inexistente", Quantidade: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCancelarVenda_DevolveEstoqueEExcluiAVenda(t *testing.T) {
	amb := novoAmbiente()

	out, err := amb.uc.CriarVenda(context.Background(), dto.CreateVendaRequest{
		FormaPagamento: "PIX",
		Itens: []dto.ItemVendaRequest{
			{ProdutoID: produtoA, Quantidade: 2},
			{ProdutoID: produtoB, Quantidade: 1},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 8, amb.produtoRepo.Produtos[produtoA].QuantidadeEstoque)

	require.NoError(t, amb.uc.CancelarVenda(context.Background(), out.ID))

	assert.Equal(t, 10, amb.produtoRepo.Produtos[produtoA].QuantidadeEstoque,
		"cancelar a venda deve devolver o estoque original")
	assert.Equal(t, 5, amb.produtoRepo.Produtos[produtoB].QuantidadeEstoque)
	assert.Empty(t, amb.vendaRepo.Vendas)
	// 2 saídas da venda + 2 entradas do cancelamento
	assert.Len(t, amb.movRepo.Movs, 4, "o cancelamento deve ficar registrado como entradas no ledger")
}

func TestCancelarVenda_NaoEncontrada(t *testing.T) {
	amb := novoAmbiente()

	err := amb.uc.CancelarVenda(context.Background(), "inexistente")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestObterVenda_ComItens(t *testing.T) {
	amb := novoAmbiente()

	criada, err := amb.uc.CriarVenda(context.Background(), dto.CreateVendaRequest{
		FormaPagamento: "Transferência",
		Itens:          []dto.ItemVendaRequest{{ProdutoID: produtoB, Quantidade: 2}},
	})
	require.NoError(t, err)

	out, err := amb.uc.ObterVenda(criada.ID)
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "Transferência", out.FormaPagamento)
	require.Len(t, out.Itens, 1)
	assert.Equal(t, 2, out.Itens[0].Quantidade)
}
